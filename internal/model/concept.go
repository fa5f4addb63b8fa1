package model

// Memory is one corpus record offered to the concept suggester:
// a stable id, the record's text, and optionally the event frames
// already extracted from it.
type Memory struct {
	ID     string       `json:"id"`
	Text   string       `json:"text"`
	Frames []EventFrame `json:"frames,omitempty"`
}

// Concept is an existing vocabulary entry.
type Concept struct {
	Name string `json:"name"`
}

// ConceptNames flattens concept records to their names, for callers
// holding records rather than bare strings.
func ConceptNames(concepts []Concept) []string {
	names := make([]string, 0, len(concepts))
	for _, c := range concepts {
		names = append(names, c.Name)
	}
	return names
}

// ConceptSuggestion proposes a new named concept for the persistent
// vocabulary. Name is Title Case with normalized whitespace.
type ConceptSuggestion struct {
	Name           string `json:"name"`
	Rationale      string `json:"rationale"`
	SourceMemoryID string `json:"source_memory_id"`
}
