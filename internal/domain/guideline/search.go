package guideline

import (
	"sort"
	"strings"
)

// DefaultSearchLimit bounds result sets when callers pass no limit.
const DefaultSearchLimit = 3

// Search ranks corpus documents against a free-text query. The corpus is
// first filtered to documents whose surgery type is General or equals the
// requested type. Scoring is additive: +10 per document keyword found inside
// the lower-cased query, +5 per query word that contains or is contained by
// a keyword, +15 for a title substring match, +3 for a content substring
// match, +5 when the document's surgery type exactly equals the requested
// one. Zero-scoring documents are discarded. Ties keep corpus load order.
//
// The weights are a deliberate lexical heuristic, not information retrieval;
// callers depend on title matches dominating keyword hits.
func (c *Corpus) Search(query, surgeryType string, limit int) []Match {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	queryLower := strings.ToLower(query)
	words := strings.Fields(queryLower)

	var matches []Match
	for _, doc := range c.docs {
		if surgeryType != "" && doc.SurgeryType != SurgeryGeneral && doc.SurgeryType != surgeryType {
			continue
		}

		score := 0
		for _, kw := range doc.Keywords {
			if strings.Contains(queryLower, kw) {
				score += 10
			}
		}
		for _, word := range words {
			for _, kw := range doc.Keywords {
				if strings.Contains(kw, word) || strings.Contains(word, kw) {
					score += 5
					break
				}
			}
		}
		if strings.Contains(strings.ToLower(doc.Title), queryLower) {
			score += 15
		}
		if strings.Contains(strings.ToLower(doc.Content), queryLower) {
			score += 3
		}
		if surgeryType != "" && doc.SurgeryType == surgeryType {
			score += 5
		}

		if score > 0 {
			matches = append(matches, Match{Document: doc, Relevance: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Relevance > matches[j].Relevance
	})
	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// BySurgery returns every document for the surgery type plus the General
// fallbacks, in load order.
func (c *Corpus) BySurgery(surgeryType string) []Document {
	var out []Document
	for _, doc := range c.docs {
		if doc.SurgeryType == surgeryType || doc.SurgeryType == SurgeryGeneral {
			out = append(out, doc)
		}
	}
	return out
}

// Critical returns the critical-severity documents, optionally narrowed to a
// surgery type plus the General fallbacks.
func (c *Corpus) Critical(surgeryType string) []Document {
	var out []Document
	for _, doc := range c.docs {
		if doc.Severity != SeverityCritical {
			continue
		}
		if surgeryType != "" && doc.SurgeryType != surgeryType && doc.SurgeryType != SurgeryGeneral {
			continue
		}
		out = append(out, doc)
	}
	return out
}
