// Package alert defines the ordered severity enumerations shared by the
// escalation engine. AlertLevel is the patient-facing alert ladder
// (GREEN < YELLOW < ORANGE < RED); RiskLevel is the composite-risk ladder
// (LOW < MODERATE < HIGH < CRITICAL). Both serialize as closed string sets
// that downstream callers branch on, so the names are part of the wire
// contract and must not change.
package alert

import (
	"encoding/json"
	"fmt"
)

// AlertLevel is the overall severity verdict driving user-facing urgency.
type AlertLevel int

const (
	Green AlertLevel = iota
	Yellow
	Orange
	Red
)

var alertLevelNames = map[AlertLevel]string{
	Green:  "GREEN",
	Yellow: "YELLOW",
	Orange: "ORANGE",
	Red:    "RED",
}

func (l AlertLevel) String() string {
	if name, ok := alertLevelNames[l]; ok {
		return name
	}
	return "GREEN"
}

// Max returns the higher of the two levels. Escalation only ever moves up
// when combining sources, never down.
func Max(a, b AlertLevel) AlertLevel {
	if a > b {
		return a
	}
	return b
}

// AtLeast reports whether l is at or above the given level.
func (l AlertLevel) AtLeast(min AlertLevel) bool {
	return l >= min
}

// ParseAlertLevel parses the wire form of an alert level. Unknown values
// return an error rather than defaulting, since silently downgrading a
// severity string would violate the monotonic-escalation contract.
func ParseAlertLevel(s string) (AlertLevel, error) {
	for l, name := range alertLevelNames {
		if name == s {
			return l, nil
		}
	}
	return Green, fmt.Errorf("unknown alert level: %q", s)
}

func (l AlertLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *AlertLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseAlertLevel(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// RiskLevel is the band a composite 0-100 risk score falls into.
type RiskLevel int

const (
	Low RiskLevel = iota
	Moderate
	High
	Critical
)

var riskLevelNames = map[RiskLevel]string{
	Low:      "LOW",
	Moderate: "MODERATE",
	High:     "HIGH",
	Critical: "CRITICAL",
}

func (l RiskLevel) String() string {
	if name, ok := riskLevelNames[l]; ok {
		return name
	}
	return "LOW"
}

// AlertLevel maps a risk band onto the alert ladder: a severe composite
// score alone can escalate the final alert even with zero textual flags.
func (l RiskLevel) AlertLevel() AlertLevel {
	switch l {
	case Critical:
		return Red
	case High:
		return Orange
	case Moderate:
		return Yellow
	default:
		return Green
	}
}

func (l RiskLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

func (l *RiskLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for rl, name := range riskLevelNames {
		if name == s {
			*l = rl
			return nil
		}
	}
	return fmt.Errorf("unknown risk level: %q", s)
}
