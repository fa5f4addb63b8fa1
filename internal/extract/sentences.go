package extract

import (
	"regexp"
	"strings"
)

// sentenceEnd matches a run of sentence terminators, so "Stop!!" and
// "Wait..." each end exactly one sentence.
var sentenceEnd = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on runs of sentence terminators. Any
// trailing unterminated text is kept as a final sentence. Empty
// segments are dropped.
func SplitSentences(text string) []string {
	parts := sentenceEnd.Split(text, -1)

	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			sentences = append(sentences, part)
		}
	}
	return sentences
}
