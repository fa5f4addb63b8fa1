package extract

import (
	"strconv"
	"strings"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/token"
)

// Dependency label sets used by the verb walk. spaCy label
// conventions, with the UD variants that differ.
var (
	subjectDeps = map[string]bool{"nsubj": true, "csubj": true, "expl": true}
	objectDeps  = map[string]bool{
		"dobj": true, "obj": true, "pobj": true,
		"attr": true, "oprd": true, "dative": true,
	}
	auxiliaryDeps = map[string]bool{"aux": true, "auxpass": true}
	numericDeps   = map[string]bool{"nummod": true, "num": true, "number": true, "quantmod": true}
	adverbDeps    = map[string]bool{"advmod": true, "npadvmod": true}

	negationWords = map[string]bool{
		"no": true, "not": true, "never": true, "none": true, "n't": true,
	}

	comparatorSymbols = map[string]bool{
		"<": true, ">": true, "=": true, "<=": true, ">=": true, "==": true, "!=": true,
	}
)

// IsComparator reports whether s is a comparison operator symbol.
func IsComparator(s string) bool {
	return comparatorSymbols[s]
}

// PredicateExtractor builds one PredicateFrame per verb occurrence by
// walking the dependency structure the backend annotated.
type PredicateExtractor struct {
	backend token.Backend
}

// NewPredicateExtractor creates an extractor over the given backend.
func NewPredicateExtractor(backend token.Backend) *PredicateExtractor {
	return &PredicateExtractor{backend: backend}
}

// Extract tokenizes text and emits one frame per verb-like token, in
// token order. maxVerbs caps the number of frames; 0 means no cap.
func (e *PredicateExtractor) Extract(text string, maxVerbs int) []model.PredicateFrame {
	return FromTokens(token.Collect(e.backend, text), maxVerbs)
}

// FromTokens runs the verb walk over a pre-tokenized sequence. Output
// is fully determined by the input sequence.
func FromTokens(tokens []model.Token, maxVerbs int) []model.PredicateFrame {
	var frames []model.PredicateFrame
	for i := range tokens {
		if !isVerbLike(tokens, i) {
			continue
		}
		frames = append(frames, buildPredicate(tokens, i))
		if maxVerbs > 0 && len(frames) >= maxVerbs {
			break
		}
	}
	return frames
}

// isVerbLike accepts VERB tokens, and AUX tokens only when they root
// the sentence ("The door was open" has no main verb under AUX
// analyses).
func isVerbLike(tokens []model.Token, idx int) bool {
	tok := tokens[idx]
	if tok.Pos == "VERB" {
		return true
	}
	return tok.Pos == "AUX" && (tok.Head == idx || tok.Dep == "ROOT")
}

// childrenOf returns the indices whose head is the given token, in
// token order.
func childrenOf(tokens []model.Token, head int) []int {
	var children []int
	for i := range tokens {
		if tokens[i].Head == head && i != head {
			children = append(children, i)
		}
	}
	return children
}

func buildPredicate(tokens []model.Token, verb int) model.PredicateFrame {
	frame := model.PredicateFrame{
		VerbLemma: lemmaOf(tokens[verb]),
		Polarity:  model.PolarityPositive,
	}

	children := childrenOf(tokens, verb)

	// Subject: nominal subject first, passive agent second.
	for _, c := range children {
		if subjectDeps[tokens[c].Dep] {
			frame.SubjectEntity = lemmaOf(tokens[c])
			break
		}
	}
	if frame.SubjectEntity == "" {
		for _, c := range children {
			if tokens[c].Dep == "agent" {
				frame.SubjectEntity = lemmaOf(tokens[c])
				break
			}
		}
	}

	// Object: a passive subject is the logical object.
	for _, c := range children {
		if tokens[c].Dep == "nsubjpass" {
			frame.ObjectEntity = lemmaOf(tokens[c])
			break
		}
	}
	if frame.ObjectEntity == "" {
		for _, c := range children {
			if objectDeps[tokens[c].Dep] {
				frame.ObjectEntity = lemmaOf(tokens[c])
				break
			}
		}
	}

	if negated(tokens, children) {
		frame.Polarity = model.PolarityNegative
	}

	for _, c := range children {
		child := tokens[c]

		switch {
		case isComparatorToken(child):
			frame.Modifiers = append(frame.Modifiers, child.Text)
			for _, g := range childrenOf(tokens, c) {
				if value, ok := parseNumber(tokens[g].Text); ok {
					frame.NumericArgs = frame.NumericArgs.Add(child.Text, value)
				}
			}
		case adverbDeps[child.Dep]:
			frame.Modifiers = append(frame.Modifiers, lemmaOf(child))
		}

		if numericDeps[child.Dep] || child.Pos == "NUM" {
			if value, ok := parseNumber(child.Text); ok {
				key := child.Dep
				if key == "" {
					key = child.Text
				}
				frame.NumericArgs = frame.NumericArgs.Add(key, value)
			}
		}
	}

	return frame
}

// negated checks the verb's direct children for a negation marker,
// then looks one level deeper under auxiliary children. This covers
// "does not jump" and passive "was not jumped".
func negated(tokens []model.Token, children []int) bool {
	for _, c := range children {
		if isNegation(tokens[c]) {
			return true
		}
	}
	for _, c := range children {
		if !auxiliaryDeps[tokens[c].Dep] {
			continue
		}
		for _, g := range childrenOf(tokens, c) {
			if isNegation(tokens[g]) {
				return true
			}
		}
	}
	return false
}

func isNegation(tok model.Token) bool {
	if tok.Dep == "neg" {
		return true
	}
	return negationWords[strings.ToLower(tok.Text)] || negationWords[strings.ToLower(tok.Lemma)]
}

func isComparatorToken(tok model.Token) bool {
	return comparatorSymbols[tok.Text] || comparatorSymbols[tok.Lemma]
}

func lemmaOf(tok model.Token) string {
	if tok.Lemma != "" {
		return tok.Lemma
	}
	return strings.ToLower(tok.Text)
}

func parseNumber(s string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
