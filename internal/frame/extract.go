package frame

import (
	"github.com/glossa-dev/glossa/internal/extract"
	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/token"
)

// ExtractEventFrames splits text into sentences, extracts predicates
// per sentence, and feeds the non-empty batches to the builder.
//
// maxFrames caps the number of batches gathered, not the number of
// frames the builder emits: a single sentence batch can still expand
// into several frames when its predicates have different dominant
// entities.
func ExtractEventFrames(text string, backend token.Backend, maxFrames int) []model.EventFrame {
	extractor := extract.NewPredicateExtractor(backend)

	var batches []Batch
	for i, sentence := range extract.SplitSentences(text) {
		predicates := extractor.Extract(sentence, 0)
		if len(predicates) == 0 {
			continue
		}
		batches = append(batches, Batch{Sentence: i, Predicates: predicates})
		if maxFrames > 0 && len(batches) >= maxFrames {
			break
		}
	}

	return NewBuilder().Build(batches, 0)
}
