// Package tracking computes recovery trends from daily patient check-in
// metrics.
package tracking

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Trend is the direction a patient's recovery is heading.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// DayMetrics is one day's self-reported scores. Mobility runs 0-10 where 0
// is bedridden and 10 is normal activity.
type DayMetrics struct {
	Date          string  `json:"date"`
	PainScore     float64 `json:"pain_score"`
	MobilityScore float64 `json:"mobility_score"`
	SleepQuality  float64 `json:"sleep_quality"`
}

// CalculateTrend compares the average pain and mobility of the last three
// days against the three days before them. A swing of more than one point in
// either metric tips the verdict; pain falling or mobility rising counts as
// improvement. Fewer than four days of history is always stable.
func CalculateTrend(days []DayMetrics) Trend {
	if len(days) < 2 {
		return TrendStable
	}

	recent := tail(days, 3)
	older := window(days, 6, 3)
	if len(older) == 0 {
		return TrendStable
	}

	painImprovement := avgPain(older) - avgPain(recent)
	mobilityImprovement := avgMobility(recent) - avgMobility(older)

	if painImprovement > 1 || mobilityImprovement > 1 {
		return TrendImproving
	}
	if painImprovement < -1 || mobilityImprovement < -1 {
		return TrendDeclining
	}
	return TrendStable
}

// RecoveryPhase names the expected recovery stage for a day count after
// surgery.
func RecoveryPhase(daysSinceSurgery int) string {
	switch {
	case daysSinceSurgery <= 7:
		return "Acute Recovery (Week 1)"
	case daysSinceSurgery <= 14:
		return "Early Recovery (Week 2)"
	case daysSinceSurgery <= 30:
		return "Active Recovery (Weeks 3-4)"
	case daysSinceSurgery <= 90:
		return "Continued Recovery (Months 2-3)"
	default:
		return "Late Recovery"
	}
}

func tail(days []DayMetrics, n int) []DayMetrics {
	if len(days) <= n {
		return days
	}
	return days[len(days)-n:]
}

// window returns days[len-from : len-to], clipped to the slice.
func window(days []DayMetrics, from, to int) []DayMetrics {
	start := len(days) - from
	if start < 0 {
		start = 0
	}
	end := len(days) - to
	if end < start {
		return nil
	}
	return days[start:end]
}

func avgPain(days []DayMetrics) float64 {
	sum := 0.0
	for _, d := range days {
		sum += d.PainScore
	}
	return sum / float64(len(days))
}

func avgMobility(days []DayMetrics) float64 {
	sum := 0.0
	for _, d := range days {
		sum += d.MobilityScore
	}
	return sum / float64(len(days))
}

type trendRequest struct {
	DaysSinceSurgery int          `json:"days_since_surgery"`
	History          []DayMetrics `json:"history"`
}

type trendResponse struct {
	Trend         Trend  `json:"trend"`
	RecoveryPhase string `json:"recovery_phase"`
}

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/tracking/trend", h.Trend)
}

func (h *Handler) Trend(c echo.Context) error {
	var req trendRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.DaysSinceSurgery < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "days_since_surgery must not be negative")
	}
	return c.JSON(http.StatusOK, trendResponse{
		Trend:         CalculateTrend(req.History),
		RecoveryPhase: RecoveryPhase(req.DaysSinceSurgery),
	})
}
