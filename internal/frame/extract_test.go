package frame

import (
	"iter"
	"testing"

	"github.com/glossa-dev/glossa/internal/model"
)

// sentenceBackend serves canned parses keyed by sentence text.
type sentenceBackend struct {
	parses map[string][]model.Token
}

func (s sentenceBackend) Tokens(text string) iter.Seq[model.Token] {
	return func(yield func(model.Token) bool) {
		for _, tk := range s.parses[text] {
			if !yield(tk) {
				return
			}
		}
	}
}

func mk(text, lemma, pos, dep string, head int) model.Token {
	return model.Token{Text: text, Lemma: lemma, Pos: pos, Dep: dep, Head: head}
}

func TestExtractEventFrames_PerSentence(t *testing.T) {
	backend := sentenceBackend{parses: map[string][]model.Token{
		"Alice runs": {
			mk("Alice", "alice", "NOUN", "nsubj", 1),
			mk("runs", "run", "VERB", "ROOT", 1),
		},
		"Bob sleeps": {
			mk("Bob", "bob", "NOUN", "nsubj", 1),
			mk("sleeps", "sleep", "VERB", "ROOT", 1),
		},
	}}

	frames := ExtractEventFrames("Alice runs. Bob sleeps.", backend, 0)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frames))
	}
	if frames[0].Roles.Agent != "alice" || frames[1].Roles.Agent != "bob" {
		t.Errorf("unexpected agents: %q, %q", frames[0].Roles.Agent, frames[1].Roles.Agent)
	}
	if frames[0].FrameID != "frame-1" || frames[1].FrameID != "frame-2" {
		t.Errorf("unexpected ids: %s, %s", frames[0].FrameID, frames[1].FrameID)
	}
}

func TestExtractEventFrames_SkipsSentencesWithoutPredicates(t *testing.T) {
	backend := sentenceBackend{parses: map[string][]model.Token{
		"Hello": {
			mk("Hello", "hello", "INTJ", "ROOT", 0),
		},
		"Alice runs": {
			mk("Alice", "alice", "NOUN", "nsubj", 1),
			mk("runs", "run", "VERB", "ROOT", 1),
		},
	}}

	frames := ExtractEventFrames("Hello. Alice runs.", backend, 0)
	if len(frames) != 1 {
		t.Fatalf("expected 1 frame, got %d", len(frames))
	}
	if frames[0].FrameID != "frame-1" {
		t.Errorf("expected numbering to skip the empty batch, got %s", frames[0].FrameID)
	}
}

func TestExtractEventFrames_MaxFramesCapsBatches(t *testing.T) {
	backend := sentenceBackend{parses: map[string][]model.Token{
		"Alice runs and Bob sleeps": {
			mk("Alice", "alice", "NOUN", "nsubj", 1),
			mk("runs", "run", "VERB", "ROOT", 1),
			mk("and", "and", "CCONJ", "cc", 1),
			mk("Bob", "bob", "NOUN", "nsubj", 4),
			mk("sleeps", "sleep", "VERB", "conj", 4),
		},
		"Carol eats": {
			mk("Carol", "carol", "NOUN", "nsubj", 1),
			mk("eats", "eat", "VERB", "ROOT", 1),
		},
	}}

	// The cap bounds gathered sentence batches; the first batch has
	// two dominant entities and still expands into two frames.
	frames := ExtractEventFrames("Alice runs and Bob sleeps. Carol eats.", backend, 1)
	if len(frames) != 2 {
		t.Fatalf("expected 2 frames from the single capped batch, got %d", len(frames))
	}
	if frames[0].Roles.Agent != "alice" || frames[1].Roles.Agent != "bob" {
		t.Errorf("unexpected agents: %q, %q", frames[0].Roles.Agent, frames[1].Roles.Agent)
	}
	for _, frame := range frames {
		if frame.Roles.Agent == "carol" {
			t.Error("second sentence should not be gathered under the cap")
		}
	}
}
