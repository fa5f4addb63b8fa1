package model

import "time"

// Report is the complete analysis output for one text record, ready
// for the external ingestion-commit layer. Given identical input text
// and backend annotations, every field except AnalyzedAt is
// byte-for-byte reproducible.
type Report struct {
	ID         string    `json:"id,omitempty" yaml:"id,omitempty"`
	AnalyzedAt time.Time `json:"analyzed_at" yaml:"analyzed_at"`

	TokenCount     int                      `json:"token_count" yaml:"token_count"`
	Predicates     []PredicateFrame         `json:"predicates" yaml:"predicates"`
	Frames         []EventFrame             `json:"frames" yaml:"frames"`
	Contradictions []ContradictionCandidate `json:"contradictions,omitempty" yaml:"contradictions,omitempty"`
}
