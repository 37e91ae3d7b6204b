// Package guideline holds the static post-surgery care guidance corpus and
// the lexical ranker used to match documents against patient queries.
package guideline

// Severity classifies how urgent a document's guidance is.
type Severity string

const (
	SeverityNormal   Severity = "normal"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// SurgeryGeneral marks documents that apply to every surgery type.
const SurgeryGeneral = "General"

// Document is one corpus entry. Immutable after load; Content and Source are
// presented verbatim to patients and to the conversational assistant.
type Document struct {
	ID          string   `json:"id"`
	SurgeryType string   `json:"surgery_type"`
	Category    string   `json:"category"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Keywords    []string `json:"keywords"`
	Severity    Severity `json:"severity"`
	Source      string   `json:"source,omitempty"`
	SourceURL   string   `json:"source_url,omitempty"`
}

// Match pairs a document with the relevance score it earned for a query.
type Match struct {
	Document
	Relevance int `json:"relevance"`
}
