package token

import (
	"errors"
	"iter"
	"sync"

	"github.com/glossa-dev/glossa/internal/model"
)

// ErrNoBackend indicates that backend resolution produced nothing.
// This only happens when a resolver is built with neither a rich
// constructor nor a fallback; masking it would hide a genuine
// dependency outage, so it propagates to the caller.
var ErrNoBackend = errors.New("no tokenization backend available")

// Backend produces a lazy token sequence for a chunk of text.
// Consumers may stop early; a backend must tolerate abandoned
// iteration.
type Backend interface {
	Tokens(text string) iter.Seq[model.Token]
}

// Collect drains a backend's sequence into a slice.
func Collect(backend Backend, text string) []model.Token {
	var tokens []model.Token
	for tok := range backend.Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Resolver owns the default-backend decision: try the rich parser
// adapter once, and on any construction failure fall back to the
// deterministic rule backend for the resolver's lifetime. The cached
// decision is the only shared mutable state in the core. Build one
// resolver at startup and thread it through calls.
type Resolver struct {
	rich     func() (Backend, error)
	fallback func() Backend

	once    sync.Once
	backend Backend
	err     error
}

// NewResolver creates a resolver that prefers the rich parser backend
// configured by cfg and falls back to the rule backend.
func NewResolver(cfg model.ParserConfig, cacheCfg model.CacheConfig) *Resolver {
	return &Resolver{
		rich:     func() (Backend, error) { return NewParserBackend(cfg, cacheCfg) },
		fallback: func() Backend { return NewRuleBackend() },
	}
}

// NewRuleResolver creates a resolver pinned to the deterministic rule
// backend.
func NewRuleResolver() *Resolver {
	return &Resolver{fallback: func() Backend { return NewRuleBackend() }}
}

// NewBackendResolver pins the resolver to an explicitly injected
// backend.
func NewBackendResolver(backend Backend) *Resolver {
	return &Resolver{fallback: func() Backend { return backend }}
}

// Resolve returns the cached backend decision, making it on first
// use. The rich constructor is never retried.
func (r *Resolver) Resolve() (Backend, error) {
	r.once.Do(func() {
		if r.rich != nil {
			if backend, err := r.rich(); err == nil {
				r.backend = backend
				return
			}
		}
		if r.fallback != nil {
			r.backend = r.fallback()
			return
		}
		r.err = ErrNoBackend
	})
	return r.backend, r.err
}
