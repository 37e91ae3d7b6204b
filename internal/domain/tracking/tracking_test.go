package tracking

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func days(pain ...float64) []DayMetrics {
	out := make([]DayMetrics, len(pain))
	for i, p := range pain {
		out[i] = DayMetrics{PainScore: p, MobilityScore: 5}
	}
	return out
}

func TestCalculateTrendShortHistoryIsStable(t *testing.T) {
	if got := CalculateTrend(nil); got != TrendStable {
		t.Errorf("empty history = %q", got)
	}
	if got := CalculateTrend(days(8)); got != TrendStable {
		t.Errorf("one day = %q", got)
	}
	if got := CalculateTrend(days(8, 7, 6)); got != TrendStable {
		t.Errorf("three days = %q", got)
	}
}

func TestCalculateTrendImprovingPain(t *testing.T) {
	// Older average pain 7, recent average 4.
	history := days(7, 7, 7, 4, 4, 4)
	if got := CalculateTrend(history); got != TrendImproving {
		t.Errorf("trend = %q, want improving", got)
	}
}

func TestCalculateTrendDecliningPain(t *testing.T) {
	history := days(3, 3, 3, 6, 6, 6)
	if got := CalculateTrend(history); got != TrendDeclining {
		t.Errorf("trend = %q, want declining", got)
	}
}

func TestCalculateTrendMobilityDrivesVerdict(t *testing.T) {
	history := []DayMetrics{
		{PainScore: 5, MobilityScore: 2},
		{PainScore: 5, MobilityScore: 2},
		{PainScore: 5, MobilityScore: 2},
		{PainScore: 5, MobilityScore: 5},
		{PainScore: 5, MobilityScore: 5},
		{PainScore: 5, MobilityScore: 5},
	}
	if got := CalculateTrend(history); got != TrendImproving {
		t.Errorf("trend = %q, want improving on mobility gain", got)
	}
}

func TestCalculateTrendSmallSwingIsStable(t *testing.T) {
	// One-point pain drop does not cross the threshold.
	history := days(5, 5, 5, 4, 4, 4)
	if got := CalculateTrend(history); got != TrendStable {
		t.Errorf("trend = %q, want stable", got)
	}
}

func TestCalculateTrendUsesLastSixDaysOnly(t *testing.T) {
	// Ancient high-pain days must not influence the comparison.
	history := days(10, 10, 10, 5, 5, 5, 5, 5, 5)
	if got := CalculateTrend(history); got != TrendStable {
		t.Errorf("trend = %q, want stable", got)
	}
}

func TestRecoveryPhase(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "Acute Recovery (Week 1)"},
		{7, "Acute Recovery (Week 1)"},
		{8, "Early Recovery (Week 2)"},
		{14, "Early Recovery (Week 2)"},
		{30, "Active Recovery (Weeks 3-4)"},
		{90, "Continued Recovery (Months 2-3)"},
		{91, "Late Recovery"},
	}
	for _, tt := range tests {
		if got := RecoveryPhase(tt.days); got != tt.want {
			t.Errorf("RecoveryPhase(%d) = %q, want %q", tt.days, got, tt.want)
		}
	}
}

func TestHandlerTrend(t *testing.T) {
	e := echo.New()
	payload := `{"days_since_surgery":10,"history":[
		{"pain_score":7,"mobility_score":3},
		{"pain_score":7,"mobility_score":3},
		{"pain_score":7,"mobility_score":3},
		{"pain_score":4,"mobility_score":6},
		{"pain_score":4,"mobility_score":6},
		{"pain_score":4,"mobility_score":6}]}`
	req := httptest.NewRequest(http.MethodPost, "/tracking/trend", strings.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewHandler().Trend(c); err != nil {
		t.Fatalf("Trend() error = %v", err)
	}
	var body trendResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Trend != TrendImproving {
		t.Errorf("trend = %q, want improving", body.Trend)
	}
	if body.RecoveryPhase != "Early Recovery (Week 2)" {
		t.Errorf("phase = %q", body.RecoveryPhase)
	}
}

func TestHandlerTrendRejectsNegativeDays(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/tracking/trend", strings.NewReader(`{"days_since_surgery":-1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := NewHandler().Trend(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400", err)
	}
}
