package token

import (
	"fmt"
	"iter"
	"testing"
	"time"

	"github.com/glossa-dev/glossa/internal/model"
)

// stubBackend yields a fixed number of tokens.
type stubBackend struct {
	count int
}

func (b *stubBackend) Tokens(text string) iter.Seq[model.Token] {
	return func(yield func(model.Token) bool) {
		for i := 0; i < b.count; i++ {
			tok := model.Token{Text: fmt.Sprintf("w%d", i), Lemma: fmt.Sprintf("w%d", i), Pos: "X", Dep: "dep"}
			if !yield(tok) {
				return
			}
		}
	}
}

// steppedClock advances a fixed amount per reading.
func steppedClock(step time.Duration) Clock {
	now := time.Unix(0, 0)
	return func() time.Time {
		current := now
		now = now.Add(step)
		return current
	}
}

func TestTokenizer_ZeroBudgetReturnsEmpty(t *testing.T) {
	tokenizer := NewTokenizer(NewBackendResolver(&stubBackend{count: 10}))

	tokens, err := tokenizer.TokenizeWithin("anything", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for zero budget, got %d", len(tokens))
	}

	tokens, err = tokenizer.TokenizeWithin("anything", -5*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens for negative budget, got %d", len(tokens))
	}
}

func TestTokenizer_BudgetTruncates(t *testing.T) {
	// The clock advances 30ms per reading: one at the start, one
	// after each token. A 100ms budget admits four tokens.
	tokenizer := NewTokenizer(NewBackendResolver(&stubBackend{count: 10})).
		WithClock(steppedClock(30 * time.Millisecond))

	tokens, err := tokenizer.TokenizeWithin("anything", 100*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 4 {
		t.Errorf("expected 4 tokens under budget, got %d", len(tokens))
	}
}

func TestTokenizer_BudgetMonotonic(t *testing.T) {
	run := func(budget time.Duration) int {
		tokenizer := NewTokenizer(NewBackendResolver(&stubBackend{count: 10})).
			WithClock(steppedClock(30 * time.Millisecond))
		tokens, err := tokenizer.TokenizeWithin("anything", budget)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return len(tokens)
	}

	small := run(50 * time.Millisecond)
	large := run(200 * time.Millisecond)
	if small > large {
		t.Errorf("budget monotonicity violated: %d tokens for small budget, %d for large", small, large)
	}
}

func TestTokenizer_NoBudgetConsumesAll(t *testing.T) {
	tokenizer := NewTokenizer(NewBackendResolver(&stubBackend{count: 7}))

	tokens, err := tokenizer.Tokenize("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 7 {
		t.Errorf("expected all 7 tokens, got %d", len(tokens))
	}
}
