package redflag

import "github.com/postop/engine/internal/domain/alert"

// Category classifies a red flag by the clinical system it implicates.
// Values are a closed set consumed verbatim by dashboard and notification
// clients.
type Category string

const (
	CategoryInfection   Category = "infection"
	CategoryBloodClot   Category = "bloodClot"
	CategoryWound       Category = "wound"
	CategoryCirculation Category = "circulation"
	CategoryPain        Category = "pain"
	CategoryOther       Category = "other"
)

// Pattern is one keyword rule. A pattern matches when any of its keywords
// appears as a substring of the lower-cased scan text.
type Pattern struct {
	Keywords []string
	Symptom  string
	Level    alert.AlertLevel
	Action   string
	Category Category
}

// The three tiers, in strict priority order. Critical patterns indicate
// life-threatening conditions and suppress scanning of the lower tiers.
var (
	criticalPatterns = []Pattern{
		{
			Keywords: []string{"chest pain", "difficulty breathing", "can't breathe", "shortness of breath", "severe chest"},
			Symptom:  "Severe chest pain or difficulty breathing",
			Level:    alert.Red,
			Action:   "CALL 911 IMMEDIATELY - Possible pulmonary embolism (blood clot in lung)",
			Category: CategoryBloodClot,
		},
		{
			Keywords: []string{"severe bleeding", "heavy bleeding", "won't stop bleeding", "blood soaking"},
			Symptom:  "Severe uncontrolled bleeding",
			Level:    alert.Red,
			Action:   "CALL 911 IMMEDIATELY - Apply pressure and seek emergency care",
			Category: CategoryWound,
		},
		{
			Keywords: []string{"unconscious", "passed out", "fainted", "can't wake"},
			Symptom:  "Loss of consciousness",
			Level:    alert.Red,
			Action:   "CALL 911 IMMEDIATELY - Medical emergency",
			Category: CategoryOther,
		},
		{
			Keywords: []string{"severe pain", "unbearable pain", "pain 9", "pain 10", "worst pain"},
			Symptom:  "Severe uncontrolled pain (9-10/10)",
			Level:    alert.Red,
			Action:   "GO TO ER - Pain this severe requires immediate evaluation",
			Category: CategoryPain,
		},
	}

	urgentPatterns = []Pattern{
		{
			Keywords: []string{"fever", "temperature", "hot", "chills", "sweating", "38", "100.4", "101"},
			Symptom:  "Fever above 38°C (100.4°F)",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Possible infection",
			Category: CategoryInfection,
		},
		{
			Keywords: []string{"pus", "yellow discharge", "green discharge", "foul smell", "smells bad"},
			Symptom:  "Wound drainage with pus or foul odor",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Possible wound infection",
			Category: CategoryInfection,
		},
		{
			Keywords: []string{"calf pain", "leg swelling", "leg warm", "one leg bigger", "deep pain leg"},
			Symptom:  "Calf pain, swelling, or warmth (one leg)",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Possible deep vein thrombosis (DVT)",
			Category: CategoryBloodClot,
		},
		{
			Keywords: []string{"wound opening", "wound separated", "edges apart", "gap in incision"},
			Symptom:  "Wound dehiscence (wound opening up)",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Wound needs evaluation",
			Category: CategoryWound,
		},
		{
			Keywords: []string{"can't urinate", "can't pee", "no urine", "unable to urinate"},
			Symptom:  "Urinary retention (unable to urinate)",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Urinary retention requires attention",
			Category: CategoryOther,
		},
		{
			Keywords: []string{"cold leg", "numb leg", "blue leg", "pale leg", "no pulse"},
			Symptom:  "Cold, numb, or discolored extremity",
			Level:    alert.Orange,
			Action:   "CONTACT SURGEON WITHIN 2 HOURS - Possible circulation problem",
			Category: CategoryCirculation,
		},
	}

	monitorPatterns = []Pattern{
		{
			Keywords: []string{"redness spreading", "red streaks", "expanding redness"},
			Symptom:  "Increasing redness around wound",
			Level:    alert.Yellow,
			Action:   "CALL SURGEON'S OFFICE - Monitor closely, may indicate infection",
			Category: CategoryInfection,
		},
		{
			Keywords: []string{"more swelling", "increased swelling", "swelling worse"},
			Symptom:  "Increasing swelling",
			Level:    alert.Yellow,
			Action:   "CALL SURGEON'S OFFICE - Swelling should decrease over time",
			Category: CategoryWound,
		},
		{
			Keywords: []string{"pain getting worse", "pain increasing", "more pain", "pain not better"},
			Symptom:  "Pain worsening instead of improving",
			Level:    alert.Yellow,
			Action:   "CALL SURGEON'S OFFICE - Pain should gradually improve",
			Category: CategoryPain,
		},
		{
			Keywords: []string{"nausea", "vomiting", "throwing up", "can't keep down"},
			Symptom:  "Persistent nausea or vomiting",
			Level:    alert.Yellow,
			Action:   "CALL SURGEON'S OFFICE - May need anti-nausea medication",
			Category: CategoryOther,
		},
	}
)

// Patterns returns the rule table for a tier. Callers must not mutate the
// returned slice.
func Patterns(level alert.AlertLevel) []Pattern {
	switch level {
	case alert.Red:
		return criticalPatterns
	case alert.Orange:
		return urgentPatterns
	case alert.Yellow:
		return monitorPatterns
	default:
		return nil
	}
}
