package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/glossa-dev/glossa/internal/contradict"
	"github.com/glossa-dev/glossa/internal/extract"
	"github.com/glossa-dev/glossa/internal/frame"
	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/token"
)

// Analyzer runs the full extraction pass over one text record:
// tokens, predicates, event frames, contradiction candidates. Every
// call is synchronous and CPU-bound; the only state the analyzer
// carries is the resolver's cached backend decision.
type Analyzer struct {
	resolver  *token.Resolver
	tokenizer *token.Tokenizer
	detector  *contradict.Detector
	config    *model.Config

	// Subject backfill for predicates without their own subject.
	Subject string
}

// NewAnalyzer creates an analyzer over the given resolver and limits.
func NewAnalyzer(resolver *token.Resolver, cfg *model.Config) *Analyzer {
	return &Analyzer{
		resolver:  resolver,
		tokenizer: token.NewTokenizer(resolver),
		detector:  contradict.NewDetector(),
		config:    cfg,
	}
}

// Analyze produces a complete report for one record. Absence of
// extractable structure yields empty slices, never an error; the only
// failure path is an unresolvable backend.
func (a *Analyzer) Analyze(ctx context.Context, id, text string) (*model.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	backend, err := a.resolver.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve backend: %w", err)
	}

	var tokens []model.Token
	if budget := a.config.Limits.MaxMillisPerChunk; budget > 0 {
		tokens, err = a.tokenizer.TokenizeWithin(text, time.Duration(budget)*time.Millisecond)
	} else {
		tokens, err = a.tokenizer.Tokenize(text)
	}
	if err != nil {
		return nil, fmt.Errorf("tokenize: %w", err)
	}

	extractor := extract.NewPredicateExtractor(backend)
	predicates := extractor.Extract(text, a.config.Limits.MaxVerbs)

	frames := frame.ExtractEventFrames(text, backend, a.config.Limits.MaxFrames)

	contradictions := a.detector.Detect(predicates, contradict.Options{
		SubjectText: a.Subject,
		Tolerance:   a.config.Limits.Tolerance,
	})

	return &model.Report{
		ID:             id,
		AnalyzedAt:     time.Now().UTC(),
		TokenCount:     len(tokens),
		Predicates:     predicates,
		Frames:         frames,
		Contradictions: contradictions,
	}, nil
}
