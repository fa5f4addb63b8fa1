package model

// ContradictionCandidate pairs two claims that share a subject and
// verb but disagree in polarity or numeric value. EvidenceIDs is
// filled by the ingestion layer; the detector always emits it empty
// but non-nil.
type ContradictionCandidate struct {
	SubjectEntityID string   `json:"subject_entity_id,omitempty"`
	SubjectText     string   `json:"subject_text"`
	ClaimA          string   `json:"claim_a"`
	ClaimB          string   `json:"claim_b"`
	EvidenceIDs     []string `json:"evidence_ids"`
}
