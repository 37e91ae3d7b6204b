// Package profile holds the semi-static patient risk profile read from the
// patient record store. The engine only reads profiles; writes belong to the
// surrounding system.
package profile

import (
	"strings"

	"github.com/google/uuid"
)

// SmokingStatus is the patient's smoking history.
type SmokingStatus string

const (
	SmokingNever   SmokingStatus = "never"
	SmokingFormer  SmokingStatus = "former"
	SmokingCurrent SmokingStatus = "current"
)

// ParseSmokingStatus maps free-form record values onto the closed set.
// Unrecognized values default to never, which carries no extra risk.
func ParseSmokingStatus(raw string) SmokingStatus {
	switch SmokingStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case SmokingFormer:
		return SmokingFormer
	case SmokingCurrent:
		return SmokingCurrent
	default:
		return SmokingNever
	}
}

// Profile is one patient's static risk factors. BMI is a pointer because
// many records genuinely lack it; a missing BMI contributes no risk.
type Profile struct {
	ID                uuid.UUID     `json:"id"`
	Age               int           `json:"age"`
	BMI               *float64      `json:"bmi,omitempty"`
	SmokingStatus     SmokingStatus `json:"smoking_status"`
	Diabetes          bool          `json:"diabetes"`
	HeartDisease      bool          `json:"heart_disease"`
	Immunocompromised bool          `json:"immunocompromised"`
	SurgeryType       string        `json:"surgery_type"`
}
