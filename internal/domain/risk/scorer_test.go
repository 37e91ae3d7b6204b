package risk

import (
	"testing"

	"github.com/postop/engine/internal/domain/alert"
	"github.com/postop/engine/internal/domain/profile"
)

func bmiPtr(v float64) *float64 { return &v }

func baseline() profile.Profile {
	return profile.Profile{Age: 40, SmokingStatus: profile.SmokingNever}
}

func TestScoreBaselineIsLow(t *testing.T) {
	res := Score(baseline(), 0, false, false)
	if res.Overall != 0 {
		t.Errorf("Overall = %d, want 0", res.Overall)
	}
	if res.Level != alert.Low {
		t.Errorf("Level = %v, want LOW", res.Level)
	}
	if len(res.Recommendations) != 1 || res.Recommendations[0] != "Low risk - routine follow-up appropriate" {
		t.Errorf("Recommendations = %v", res.Recommendations)
	}
}

func TestScoreAgeBands(t *testing.T) {
	tests := []struct {
		age  int
		want int
	}{
		{80, 20},
		{70, 15},
		{60, 10},
		{40, 0},
		{25, 5},
	}
	for _, tt := range tests {
		p := baseline()
		p.Age = tt.age
		if got := Score(p, 0, false, false).Overall; got != tt.want {
			t.Errorf("age %d: Overall = %d, want %d", tt.age, got, tt.want)
		}
	}
}

func TestScoreBMIBands(t *testing.T) {
	tests := []struct {
		bmi  *float64
		want int
	}{
		{bmiPtr(45), 15},
		{bmiPtr(35), 10},
		{bmiPtr(24), 0},
		{bmiPtr(17), 8},
		{nil, 0},
	}
	for _, tt := range tests {
		p := baseline()
		p.BMI = tt.bmi
		if got := Score(p, 0, false, false).Overall; got != tt.want {
			t.Errorf("bmi %v: Overall = %d, want %d", tt.bmi, got, tt.want)
		}
	}
}

func TestScoreLevelBoundaries(t *testing.T) {
	// Exercise sums just under and at the 25/50/75 thresholds. Age 40 and
	// never-smoker contribute nothing; sums are built from the other weights.
	tests := []struct {
		name    string
		mutate  func(*profile.Profile)
		pain    int
		hasInf  bool
		hasDVT  bool
		overall int
		level   alert.RiskLevel
	}{
		{
			name:    "just under moderate",
			mutate:  func(p *profile.Profile) { p.Age = 25; p.BMI = bmiPtr(17); p.HeartDisease = true },
			pain:    1,
			overall: 23,
			level:   alert.Low,
		},
		{
			name:    "moderate floor",
			mutate:  func(p *profile.Profile) { p.Diabetes = true },
			pain:    6,
			overall: 25,
			level:   alert.Moderate,
		},
		{
			name:    "just under high",
			mutate:  func(p *profile.Profile) { p.Age = 70; p.Diabetes = true; p.SmokingStatus = profile.SmokingCurrent },
			overall: 45,
			level:   alert.Moderate,
		},
		{
			name:    "high floor",
			mutate:  func(p *profile.Profile) { p.Immunocompromised = true },
			hasDVT:  true,
			overall: 50,
			level:   alert.High,
		},
		{
			name:    "just under critical",
			mutate: func(p *profile.Profile) {
				p.Age = 80
				p.Diabetes = true
				p.HeartDisease = true
				p.SmokingStatus = profile.SmokingCurrent
			},
			pain:    6,
			overall: 70,
			level:   alert.High,
		},
		{
			name:    "critical floor",
			mutate:  func(p *profile.Profile) { p.Age = 80; p.Diabetes = true; p.SmokingStatus = profile.SmokingCurrent },
			hasInf:  true,
			overall: 75,
			level:   alert.Critical,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseline()
			tt.mutate(&p)
			res := Score(p, tt.pain, tt.hasInf, tt.hasDVT)
			if res.Overall != tt.overall {
				t.Fatalf("Overall = %d, want %d", res.Overall, tt.overall)
			}
			if res.Level != tt.level {
				t.Errorf("Level = %v, want %v", res.Level, tt.level)
			}
		})
	}
}

func TestScoreClampedAt100(t *testing.T) {
	p := profile.Profile{
		Age:               80,
		BMI:               bmiPtr(45),
		SmokingStatus:     profile.SmokingCurrent,
		Diabetes:          true,
		HeartDisease:      true,
		Immunocompromised: true,
	}
	res := Score(p, 9, true, true)
	if res.Overall != 100 {
		t.Errorf("Overall = %d, want 100", res.Overall)
	}
	if res.Level != alert.Critical {
		t.Errorf("Level = %v, want CRITICAL", res.Level)
	}
}

func TestDVTRiskIndependentOfOverall(t *testing.T) {
	res := Score(baseline(), 0, false, true)
	if res.DVTRisk < 60 {
		t.Errorf("DVTRisk = %d, want >= 60 on DVT signs alone", res.DVTRisk)
	}
	// Overall gets only the +30 DVT weight, well under the moderate band.
	if res.Overall != 30 {
		t.Errorf("Overall = %d, want 30", res.Overall)
	}
}

func TestInfectionRiskFormula(t *testing.T) {
	p := baseline()
	p.Diabetes = true
	p.SmokingStatus = profile.SmokingCurrent
	res := Score(p, 0, true, false)
	// 10 baseline + 25 diabetes + 20 current smoker + 50 infection signs.
	if res.InfectionRisk != 100 {
		t.Errorf("InfectionRisk = %d, want 100", res.InfectionRisk)
	}
}

func TestReadmissionRiskUsesRawSum(t *testing.T) {
	p := baseline()
	p.Diabetes = true
	res := Score(p, 7, false, false)
	// Raw sum 25 (diabetes 15 + pain>=6 10): 25/2 + 20 pain + 15 comorbidity.
	if res.ReadmissionRisk != 47 {
		t.Errorf("ReadmissionRisk = %d, want 47", res.ReadmissionRisk)
	}
}

func TestRecommendationsFollowEvaluationOrder(t *testing.T) {
	p := baseline()
	p.Age = 80
	p.Diabetes = true
	res := Score(p, 0, false, true)
	want := []string{
		"Advanced age requires closer monitoring",
		"Diabetes increases infection risk - monitor glucose levels",
		"DVT symptoms detected - immediate medical evaluation needed",
		"High risk - enhanced monitoring protocol",
	}
	if len(res.Recommendations) != len(want) {
		t.Fatalf("Recommendations = %v", res.Recommendations)
	}
	for i := range want {
		if res.Recommendations[i] != want[i] {
			t.Errorf("Recommendations[%d] = %q, want %q", i, res.Recommendations[i], want[i])
		}
	}
}
