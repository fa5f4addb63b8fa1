package token

import (
	"reflect"
	"testing"
)

func TestRuleBackend_SplitAndTag(t *testing.T) {
	backend := NewRuleBackend()

	tokens := Collect(backend, "The fox, 42!")
	texts := []string{"The", "fox", ",", "42", "!"}
	if len(tokens) != len(texts) {
		t.Fatalf("expected %d tokens, got %d", len(texts), len(tokens))
	}
	for i, want := range texts {
		if tokens[i].Text != want {
			t.Errorf("token %d: expected text %q, got %q", i, want, tokens[i].Text)
		}
	}

	if tokens[0].Pos != "DET" || tokens[0].Dep != "det" {
		t.Errorf("expected The to tag DET/det, got %s/%s", tokens[0].Pos, tokens[0].Dep)
	}
	if tokens[0].Lemma != "the" {
		t.Errorf("expected lowercased lemma, got %q", tokens[0].Lemma)
	}
	if tokens[1].Pos != "X" || tokens[1].Dep != "dep" {
		t.Errorf("expected unknown word to tag X/dep, got %s/%s", tokens[1].Pos, tokens[1].Dep)
	}
	if tokens[2].Pos != "PUNCT" || tokens[2].Dep != "punct" {
		t.Errorf("expected punctuation tag, got %s/%s", tokens[2].Pos, tokens[2].Dep)
	}
	if tokens[3].Pos != "NUM" || tokens[3].Dep != "nummod" {
		t.Errorf("expected numeric tag, got %s/%s", tokens[3].Pos, tokens[3].Dep)
	}
}

func TestRuleBackend_HeadChain(t *testing.T) {
	backend := NewRuleBackend()

	tokens := Collect(backend, "one two three")
	if tokens[0].Head != 0 {
		t.Errorf("expected first token to head itself, got %d", tokens[0].Head)
	}
	for i := 1; i < len(tokens); i++ {
		if tokens[i].Head != i-1 {
			t.Errorf("token %d: expected head %d, got %d", i, i-1, tokens[i].Head)
		}
	}
}

func TestRuleBackend_NegationAndComparators(t *testing.T) {
	backend := NewRuleBackend()

	tokens := Collect(backend, "not >= never")
	if tokens[0].Dep != "neg" {
		t.Errorf("expected not to tag neg, got %s", tokens[0].Dep)
	}
	if tokens[1].Text != ">" && tokens[1].Text != ">=" {
		// The splitter emits single punctuation marks, so ">=" arrives
		// as two tokens.
		t.Errorf("unexpected comparator token %q", tokens[1].Text)
	}
	last := tokens[len(tokens)-1]
	if last.Dep != "neg" {
		t.Errorf("expected never to tag neg, got %s", last.Dep)
	}
}

func TestRuleBackend_Deterministic(t *testing.T) {
	backend := NewRuleBackend()
	text := "The quick brown fox jumps over the lazy dog, twice!"

	first := Collect(backend, text)
	for i := 0; i < 5; i++ {
		if next := Collect(backend, text); !reflect.DeepEqual(first, next) {
			t.Fatalf("run %d differs from first run", i)
		}
	}
}
