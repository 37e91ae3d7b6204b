// Package redflag scans patient-reported symptom text and pain scores
// against a tiered rule table of concerning post-surgical findings.
package redflag

import (
	"fmt"
	"strings"

	"github.com/postop/engine/internal/domain/alert"
)

// Flag is one concerning finding with its assigned severity tier.
type Flag struct {
	Symptom  string           `json:"symptom"`
	Level    alert.AlertLevel `json:"level"`
	Action   string           `json:"action"`
	Category Category         `json:"category"`
}

// Result is the outcome of one detection pass.
type Result struct {
	HasRedFlags  bool             `json:"has_red_flags"`
	Level        alert.AlertLevel `json:"level"`
	Flags        []Flag           `json:"flags"`
	UrgentAction string           `json:"urgent_action"`
	Summary      string           `json:"summary"`
}

// Detect scans the lower-cased symptom text and the optional pain score
// against the three pattern tiers in strict priority order. A critical
// match, whether from text or a pain score of 9 or above, suppresses the
// urgent and monitor tiers; an urgent match suppresses the monitor tier.
// Pure function over the static rule table.
func Detect(text string, painScore *int) Result {
	lower := strings.ToLower(text)
	var flags []Flag
	highest := alert.Green

	if painScore != nil && *painScore >= 9 {
		flags = append(flags, Flag{
			Symptom:  fmt.Sprintf("Severe pain reported (%d/10)", *painScore),
			Level:    alert.Red,
			Action:   "GO TO ER - Pain this severe requires immediate evaluation",
			Category: CategoryPain,
		})
		highest = alert.Red
	} else if painScore != nil && *painScore >= 7 {
		flags = append(flags, Flag{
			Symptom:  fmt.Sprintf("High pain level (%d/10)", *painScore),
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON - Pain should be manageable with prescribed medication",
			Category: CategoryPain,
		})
		highest = alert.Orange
	}

	for _, p := range criticalPatterns {
		if matches(lower, p) {
			flags = append(flags, flagFrom(p))
			highest = alert.Red
		}
	}

	if highest != alert.Red {
		for _, p := range urgentPatterns {
			if matches(lower, p) {
				flags = append(flags, flagFrom(p))
				highest = alert.Orange
			}
		}
	}

	if highest != alert.Red && highest != alert.Orange {
		for _, p := range monitorPatterns {
			if matches(lower, p) {
				flags = append(flags, flagFrom(p))
				highest = alert.Yellow
			}
		}
	}

	action, summary := Guidance(highest)
	return Result{
		HasRedFlags:  len(flags) > 0,
		Level:        highest,
		Flags:        flags,
		UrgentAction: action,
		Summary:      summary,
	}
}

// Guidance returns the fixed patient-facing action and summary for a level.
// The wording is part of the output contract and is never synthesized from
// individual flags.
func Guidance(level alert.AlertLevel) (action, summary string) {
	switch level {
	case alert.Red:
		return "SEEK EMERGENCY CARE IMMEDIATELY",
			"Critical symptoms detected that require immediate medical attention."
	case alert.Orange:
		return "CONTACT YOUR SURGEON WITHIN 2 HOURS",
			"Urgent symptoms detected that need prompt medical evaluation."
	case alert.Yellow:
		return "CALL SURGEON'S OFFICE DURING BUSINESS HOURS",
			"Symptoms that should be monitored and discussed with your surgeon."
	default:
		return "Continue normal recovery",
			"No concerning symptoms detected. Continue following your recovery plan."
	}
}

// HasCategory reports whether any detected flag carries the given category.
func (r Result) HasCategory(cat Category) bool {
	for _, f := range r.Flags {
		if f.Category == cat {
			return true
		}
	}
	return false
}

func matches(lowerText string, p Pattern) bool {
	for _, kw := range p.Keywords {
		if strings.Contains(lowerText, kw) {
			return true
		}
	}
	return false
}

func flagFrom(p Pattern) Flag {
	return Flag{Symptom: p.Symptom, Level: p.Level, Action: p.Action, Category: p.Category}
}
