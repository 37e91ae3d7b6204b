// Package risk computes the composite 0-100 post-surgical risk score from
// static patient factors and the current check-in signals.
package risk

import (
	"github.com/postop/engine/internal/domain/alert"
	"github.com/postop/engine/internal/domain/profile"
)

// Result is one risk assessment. The three named sub-scores are computed by
// independent formulas over the raw factors, not derived from Overall, so a
// patient with clot symptoms but an otherwise clean profile still shows a
// high DVTRisk.
type Result struct {
	Overall         int             `json:"overall"`
	Level           alert.RiskLevel `json:"level"`
	InfectionRisk   int             `json:"infection_risk"`
	DVTRisk         int             `json:"dvt_risk"`
	ReadmissionRisk int             `json:"readmission_risk"`
	Recommendations []string        `json:"recommendations"`
}

// Score accumulates points across independent weighted factors. Each
// triggered factor appends its recommendation in evaluation order. Overall is
// clamped to 100 after summing; there are no per-factor caps. Pure function.
func Score(p profile.Profile, currentPain int, hasInfectionSigns, hasDVTSigns bool) Result {
	score := 0
	var recs []string

	switch {
	case p.Age > 75:
		score += 20
		recs = append(recs, "Advanced age requires closer monitoring")
	case p.Age > 65:
		score += 15
	case p.Age > 50:
		score += 10
	case p.Age < 30:
		// Young age can also be a factor in some surgeries.
		score += 5
	}

	if p.BMI != nil {
		switch bmi := *p.BMI; {
		case bmi > 40:
			score += 15
			recs = append(recs, "Obesity increases infection and healing complications")
		case bmi > 30:
			score += 10
		case bmi < 18.5:
			score += 8
			recs = append(recs, "Low BMI may affect healing")
		}
	}

	switch p.SmokingStatus {
	case profile.SmokingCurrent:
		score += 15
		recs = append(recs, "Smoking significantly impairs wound healing - consider cessation")
	case profile.SmokingFormer:
		score += 5
	}

	if p.Diabetes {
		score += 15
		recs = append(recs, "Diabetes increases infection risk - monitor glucose levels")
	}
	if p.HeartDisease {
		score += 10
		recs = append(recs, "Cardiovascular disease requires cardiac monitoring")
	}
	if p.Immunocompromised {
		score += 20
		recs = append(recs, "Immunocompromised status requires prophylactic measures")
	}

	if hasDVTSigns {
		score += 30
		recs = append(recs, "DVT symptoms detected - immediate medical evaluation needed")
	}
	if hasInfectionSigns {
		score += 25
		recs = append(recs, "Infection signs present - surgeon notification required")
	}
	if currentPain >= 8 {
		score += 15
		recs = append(recs, "Severe pain requires pain management review")
	} else if currentPain >= 6 {
		score += 10
	}

	var level alert.RiskLevel
	switch {
	case score >= 75:
		level = alert.Critical
		recs = append(recs, "Critical risk level - daily monitoring required")
	case score >= 50:
		level = alert.High
		recs = append(recs, "High risk - enhanced monitoring protocol")
	case score >= 25:
		level = alert.Moderate
		recs = append(recs, "Moderate risk - standard post-op care")
	default:
		level = alert.Low
		recs = append(recs, "Low risk - routine follow-up appropriate")
	}

	return Result{
		Overall:         clamp100(score),
		Level:           level,
		InfectionRisk:   infectionRisk(p, hasInfectionSigns),
		DVTRisk:         dvtRisk(p, hasDVTSigns),
		ReadmissionRisk: readmissionRisk(p, currentPain, score),
		Recommendations: recs,
	}
}

func infectionRisk(p profile.Profile, hasInfectionSigns bool) int {
	risk := 10
	if p.Diabetes {
		risk += 25
	}
	if p.SmokingStatus == profile.SmokingCurrent {
		risk += 20
	}
	if p.Immunocompromised {
		risk += 30
	}
	if p.BMI != nil && *p.BMI > 30 {
		risk += 15
	}
	if hasInfectionSigns {
		risk += 50
	}
	return clamp100(risk)
}

func dvtRisk(p profile.Profile, hasDVTSigns bool) int {
	risk := 5
	if p.Age > 60 {
		risk += 15
	}
	if p.BMI != nil && *p.BMI > 30 {
		risk += 20
	}
	if p.SmokingStatus == profile.SmokingCurrent {
		risk += 15
	}
	if p.HeartDisease {
		risk += 20
	}
	if hasDVTSigns {
		risk += 60
	}
	return clamp100(risk)
}

// readmissionRisk bases on the raw factor sum before the 0-100 clamp.
func readmissionRisk(p profile.Profile, currentPain, rawScore int) int {
	risk := rawScore / 2
	if currentPain >= 7 {
		risk += 20
	}
	if p.Diabetes || p.HeartDisease {
		risk += 15
	}
	return clamp100(risk)
}

func clamp100(v int) int {
	if v > 100 {
		return 100
	}
	return v
}
