package model

// FrameType is the coarse classification of an event frame.
type FrameType string

const (
	FrameTransfer    FrameType = "transfer"    // Something moves between participants
	FrameCausation   FrameType = "causation"   // One thing brings about another
	FrameMeasurement FrameType = "measurement" // Numeric or comparative assertion
	FrameClaim       FrameType = "claim"       // Reported or default assertion
)

// Roles are the five typed semantic roles of an event frame.
// An empty string means the role is unset.
type Roles struct {
	Agent      string `json:"agent,omitempty"`
	Patient    string `json:"patient,omitempty"`
	Instrument string `json:"instrument,omitempty"`
	Location   string `json:"location,omitempty"`
	Time       string `json:"time,omitempty"`
}

// EventFrame groups one or more predicates from a sentence under a
// shared dominant entity. FrameID is "frame-N" with N monotonically
// increasing within one build call.
type EventFrame struct {
	FrameID    string           `json:"frame_id"`
	Type       FrameType        `json:"type"`
	Roles      Roles            `json:"roles"`
	Predicates []PredicateFrame `json:"predicates"`
}
