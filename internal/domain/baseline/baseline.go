// Package baseline holds per-surgery recovery expectations: the normal pain
// band, expected and critical symptoms, and the typical recovery window.
package baseline

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Baseline describes normal recovery for one surgery type.
type Baseline struct {
	Name             string   `json:"name"`
	NormalPainMin    int      `json:"normal_pain_min"`
	NormalPainMax    int      `json:"normal_pain_max"`
	ExpectedSymptoms []string `json:"expected_symptoms"`
	CriticalSymptoms []string `json:"critical_symptoms"`
	RecoveryDays     int      `json:"recovery_days"`
}

var baselines = map[string]Baseline{
	"Appendectomy": {
		Name:             "Appendectomy",
		NormalPainMin:    1,
		NormalPainMax:    4,
		ExpectedSymptoms: []string{"mild pain", "fatigue", "nausea"},
		CriticalSymptoms: []string{"fever", "severe pain", "vomiting", "bleeding"},
		RecoveryDays:     7,
	},
	"Knee Replacement": {
		Name:             "Knee Replacement",
		NormalPainMin:    3,
		NormalPainMax:    6,
		ExpectedSymptoms: []string{"swelling", "stiffness", "bruising", "pain"},
		CriticalSymptoms: []string{"severe swelling", "fever", "bleeding", "inability to move"},
		RecoveryDays:     90,
	},
	"Cesarean Section": {
		Name:             "Cesarean Section",
		NormalPainMin:    2,
		NormalPainMax:    5,
		ExpectedSymptoms: []string{"cramping", "bleeding", "fatigue", "incision pain"},
		CriticalSymptoms: []string{"heavy bleeding", "fever", "foul discharge", "severe pain"},
		RecoveryDays:     42,
	},
}

// SupportedSurgeries lists the surgery types with baselines, in a fixed order.
var SupportedSurgeries = []string{"Appendectomy", "Knee Replacement", "Cesarean Section"}

// Lookup returns the baseline for a surgery type.
func Lookup(surgery string) (Baseline, bool) {
	b, ok := baselines[surgery]
	return b, ok
}

// PainAbnormal reports whether a pain score falls outside the surgery's
// normal band. Unknown surgery types are never abnormal.
func PainAbnormal(surgery string, painScore int) bool {
	b, ok := baselines[surgery]
	if !ok {
		return false
	}
	return painScore < b.NormalPainMin || painScore > b.NormalPainMax
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/baselines", h.List)
	api.GET("/baselines/:surgery", h.Get)
}

func (h *Handler) List(c echo.Context) error {
	out := make([]Baseline, 0, len(SupportedSurgeries))
	for _, name := range SupportedSurgeries {
		out = append(out, baselines[name])
	}
	return c.JSON(http.StatusOK, echo.Map{"total": len(out), "results": out})
}

func (h *Handler) Get(c echo.Context) error {
	b, ok := Lookup(c.Param("surgery"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "no baseline for surgery type")
	}
	return c.JSON(http.StatusOK, b)
}
