// Package signal defines the validated check-in record handed to the
// escalation engine. The upstream structured extractor is an LLM call and is
// treated as untrusted: parsing never fails, it degrades field by field so
// that a malformed pain score can never suppress red-flag text scanning.
package signal

import "strings"

// Emotion is the detected emotional state of the patient.
type Emotion string

const (
	EmotionCalm       Emotion = "calm"
	EmotionAnxious    Emotion = "anxious"
	EmotionDistressed Emotion = "distressed"
	EmotionPanicked   Emotion = "panicked"
	EmotionUnknown    Emotion = "unknown"
)

// Language is the detected language of the patient's report.
type Language string

const (
	LanguageEN Language = "en"
	LanguageFR Language = "fr"
)

// RawSignal is the wire shape produced by the structured extractor.
// Pointer fields distinguish "absent" from zero values.
type RawSignal struct {
	PainScore   *float64 `json:"painScore"`
	SymptomText string   `json:"symptomText"`
	Symptoms    []string `json:"symptoms"`
	Emotion     string   `json:"emotion"`
	Language    string   `json:"language"`
}

// Signal is a validated check-in. Consumed once per evaluation; not mutated.
type Signal struct {
	PainScore    int      `json:"pain_score"`
	PainReported bool     `json:"pain_reported"`
	SymptomText  string   `json:"symptom_text"`
	Symptoms     []string `json:"symptoms"`
	Emotion      Emotion  `json:"emotion"`
	Language     Language `json:"language"`
}

// Parse validates a raw extractor record. It never returns an error: an
// unparseable pain score is marked unreported, out-of-range scores are
// clamped to [0,10], unrecognized emotions collapse to unknown, and a nil
// symptoms array becomes empty.
func Parse(raw RawSignal) Signal {
	s := Signal{
		SymptomText: strings.TrimSpace(raw.SymptomText),
		Symptoms:    make([]string, 0, len(raw.Symptoms)),
		Emotion:     parseEmotion(raw.Emotion),
		Language:    parseLanguage(raw.Language),
	}

	if raw.PainScore != nil {
		score := *raw.PainScore
		// NaN compares false to everything; treat it as unreported.
		if score == score {
			s.PainReported = true
			s.PainScore = clampPain(int(score))
		}
	}

	for _, sym := range raw.Symptoms {
		sym = strings.TrimSpace(sym)
		if sym != "" {
			s.Symptoms = append(s.Symptoms, sym)
		}
	}

	return s
}

// ScanText returns the lower-cased text the red-flag detector scans: the
// free-text description joined with the extracted symptom labels, so a
// symptom the extractor labeled but the patient phrased oddly still matches.
func (s Signal) ScanText() string {
	if len(s.Symptoms) == 0 {
		return strings.ToLower(s.SymptomText)
	}
	parts := make([]string, 0, len(s.Symptoms)+1)
	if s.SymptomText != "" {
		parts = append(parts, s.SymptomText)
	}
	parts = append(parts, s.Symptoms...)
	return strings.ToLower(strings.Join(parts, " "))
}

// Pain returns the reported pain score, or nil when no parseable score was
// extracted.
func (s Signal) Pain() *int {
	if !s.PainReported {
		return nil
	}
	score := s.PainScore
	return &score
}

func clampPain(score int) int {
	if score < 0 {
		return 0
	}
	if score > 10 {
		return 10
	}
	return score
}

func parseEmotion(raw string) Emotion {
	switch Emotion(strings.ToLower(strings.TrimSpace(raw))) {
	case EmotionCalm:
		return EmotionCalm
	case EmotionAnxious:
		return EmotionAnxious
	case EmotionDistressed:
		return EmotionDistressed
	case EmotionPanicked:
		return EmotionPanicked
	default:
		return EmotionUnknown
	}
}

func parseLanguage(raw string) Language {
	if Language(strings.ToLower(strings.TrimSpace(raw))) == LanguageFR {
		return LanguageFR
	}
	return LanguageEN
}
