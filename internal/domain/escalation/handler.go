package escalation

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/postop/engine/internal/domain/profile"
	"github.com/postop/engine/internal/domain/signal"
)

type Handler struct {
	coordinator *Coordinator
	profiles    *profile.Service
}

func NewHandler(coordinator *Coordinator, profiles *profile.Service) *Handler {
	return &Handler{coordinator: coordinator, profiles: profiles}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/evaluations", h.Evaluate)
	api.POST("/patients/:id/evaluations", h.EvaluatePatient)
}

type profileRequest struct {
	Age               int      `json:"age"`
	BMI               *float64 `json:"bmi"`
	SmokingStatus     string   `json:"smoking_status"`
	Diabetes          bool     `json:"diabetes"`
	HeartDisease      bool     `json:"heart_disease"`
	Immunocompromised bool     `json:"immunocompromised"`
	SurgeryType       string   `json:"surgery_type"`
}

type evaluateRequest struct {
	Signal  signal.RawSignal `json:"signal"`
	Profile *profileRequest  `json:"profile"`
}

// evaluationResponse stamps identity and time around the verdict. The
// verdict itself stays deterministic for identical inputs.
type evaluationResponse struct {
	ID          uuid.UUID  `json:"id"`
	PatientID   *uuid.UUID `json:"patient_id,omitempty"`
	EvaluatedAt time.Time  `json:"evaluated_at"`
	Verdict     Verdict    `json:"verdict"`
}

// Evaluate handles POST /evaluations with an inline risk profile.
func (h *Handler) Evaluate(c echo.Context) error {
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Profile == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "profile is required")
	}
	if req.Profile.Age < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "profile age must not be negative")
	}

	prof := profile.Profile{
		Age:               req.Profile.Age,
		BMI:               req.Profile.BMI,
		SmokingStatus:     profile.ParseSmokingStatus(req.Profile.SmokingStatus),
		Diabetes:          req.Profile.Diabetes,
		HeartDisease:      req.Profile.HeartDisease,
		Immunocompromised: req.Profile.Immunocompromised,
		SurgeryType:       req.Profile.SurgeryType,
	}

	verdict := h.coordinator.Evaluate(signal.Parse(req.Signal), prof)
	return c.JSON(http.StatusOK, evaluationResponse{
		ID:          uuid.New(),
		EvaluatedAt: time.Now().UTC(),
		Verdict:     verdict,
	})
}

// EvaluatePatient handles POST /patients/:id/evaluations, reading the risk
// profile from the record store.
func (h *Handler) EvaluatePatient(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid patient id")
	}
	var req evaluateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prof, err := h.profiles.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "patient profile not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	verdict := h.coordinator.Evaluate(signal.Parse(req.Signal), *prof)
	return c.JSON(http.StatusOK, evaluationResponse{
		ID:          uuid.New(),
		PatientID:   &id,
		EvaluatedAt: time.Now().UTC(),
		Verdict:     verdict,
	})
}
