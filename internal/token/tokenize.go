package token

import (
	"time"

	"github.com/glossa-dev/glossa/internal/model"
)

// Clock reports the current time. The default is time.Now, whose
// readings carry a monotonic component; tests inject fakes.
type Clock func() time.Time

// Tokenizer runs the resolved backend over text chunks, optionally
// under a wall-clock budget.
type Tokenizer struct {
	resolver *Resolver
	clock    Clock
}

// NewTokenizer creates a tokenizer over the given resolver.
func NewTokenizer(resolver *Resolver) *Tokenizer {
	return &Tokenizer{resolver: resolver, clock: time.Now}
}

// WithClock overrides the clock used for budget checks.
func (t *Tokenizer) WithClock(clock Clock) *Tokenizer {
	t.clock = clock
	return t
}

// Tokenize consumes the backend's entire sequence for text.
func (t *Tokenizer) Tokenize(text string) ([]model.Token, error) {
	backend, err := t.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	return Collect(backend, text), nil
}

// TokenizeWithin consumes tokens until the wall-clock budget elapses.
// The budget is checked after each emitted token, so the token that
// crosses the line is kept. A budget <= 0 yields no tokens without
// touching the backend.
func (t *Tokenizer) TokenizeWithin(text string, budget time.Duration) ([]model.Token, error) {
	if budget <= 0 {
		return nil, nil
	}

	backend, err := t.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	start := t.clock()
	var tokens []model.Token
	for tok := range backend.Tokens(text) {
		tokens = append(tokens, tok)
		if t.clock().Sub(start) >= budget {
			break
		}
	}
	return tokens, nil
}
