// Package escalation reconciles the red-flag detector, the risk scorer, and
// the guideline ranker into one alert verdict. This is the engine's public
// entry point.
package escalation

import (
	"fmt"

	"github.com/postop/engine/internal/domain/alert"
	"github.com/postop/engine/internal/domain/baseline"
	"github.com/postop/engine/internal/domain/guideline"
	"github.com/postop/engine/internal/domain/profile"
	"github.com/postop/engine/internal/domain/redflag"
	"github.com/postop/engine/internal/domain/risk"
	"github.com/postop/engine/internal/domain/signal"
)

// VerdictGuidelineLimit caps the supporting guidance attached to a verdict.
const VerdictGuidelineLimit = 2

// Verdict is the engine's sole output. Level and flag categories are a
// closed enumeration; dashboard and notification clients branch on the exact
// values.
type Verdict struct {
	HasConcerns  bool              `json:"has_concerns"`
	Level        alert.AlertLevel  `json:"level"`
	Flags        []redflag.Flag    `json:"flags"`
	UrgentAction string            `json:"urgent_action"`
	Summary      string            `json:"summary"`
	Risk         risk.Result       `json:"risk"`
	Guidelines   []guideline.Match `json:"guidelines,omitempty"`
}

// Coordinator orchestrates the pure sub-components. Stateless and safe for
// concurrent use.
type Coordinator struct {
	corpus         *guideline.Corpus
	guidelineLimit int
}

func NewCoordinator(corpus *guideline.Corpus, guidelineLimit int) *Coordinator {
	if guidelineLimit <= 0 {
		guidelineLimit = VerdictGuidelineLimit
	}
	return &Coordinator{corpus: corpus, guidelineLimit: guidelineLimit}
}

// Evaluate runs one check-in through the engine. The detector and scorer run
// independently; the scorer's infection and clot inputs come from the
// detector's category tags. The final level is the maximum of the two
// verdicts and never moves down when sources are combined.
func (co *Coordinator) Evaluate(sig signal.Signal, prof profile.Profile) Verdict {
	detection := redflag.Detect(sig.ScanText(), sig.Pain())

	flags := detection.Flags
	level := detection.Level

	// Emotional distress escalates to urgent attention but never outranks a
	// critical finding and never lowers one.
	if distressed(sig.Emotion) && !level.AtLeast(alert.Red) {
		flags = append(flags, redflag.Flag{
			Symptom:  "Emotional distress",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON - Patient reports significant distress",
			Category: redflag.CategoryOther,
		})
		level = alert.Max(level, alert.Orange)
	}

	riskResult := risk.Score(prof, sig.PainScore,
		detection.HasCategory(redflag.CategoryInfection),
		detection.HasCategory(redflag.CategoryBloodClot))

	level = alert.Max(level, riskResult.Level.AlertLevel())
	action, summary := redflag.Guidance(level)

	// Informational only: an out-of-band pain score for this surgery type is
	// noted but never changes the level.
	if sig.PainReported && baseline.PainAbnormal(prof.SurgeryType, sig.PainScore) {
		summary = fmt.Sprintf("%s Pain level %d/10 is outside the typical range for %s recovery.",
			summary, sig.PainScore, prof.SurgeryType)
	}

	v := Verdict{
		HasConcerns:  len(flags) > 0,
		Level:        level,
		Flags:        flags,
		UrgentAction: action,
		Summary:      summary,
		Risk:         riskResult,
	}

	if level.AtLeast(alert.Yellow) && sig.ScanText() != "" {
		v.Guidelines = co.corpus.Search(sig.ScanText(), prof.SurgeryType, co.guidelineLimit)
	}

	return v
}

func distressed(e signal.Emotion) bool {
	return e == signal.EmotionDistressed || e == signal.EmotionPanicked
}
