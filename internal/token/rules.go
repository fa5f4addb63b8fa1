package token

import (
	"iter"
	"regexp"
	"strings"

	"github.com/glossa-dev/glossa/internal/model"
)

// wordPattern splits text into word runs (letters, digits,
// apostrophes) and single punctuation marks.
var wordPattern = regexp.MustCompile(`[A-Za-z0-9']+|[^\sA-Za-z0-9']`)

type tagEntry struct {
	pos string
	dep string
}

// tagTable is the closed annotation table of the rule backend. Words
// outside it tag as X/dep.
var tagTable = map[string]tagEntry{
	// determiners
	"the": {"DET", "det"}, "a": {"DET", "det"}, "an": {"DET", "det"},
	"this": {"DET", "det"}, "that": {"DET", "det"},
	// auxiliaries
	"is": {"AUX", "aux"}, "are": {"AUX", "aux"}, "was": {"AUX", "aux"},
	"were": {"AUX", "aux"}, "be": {"AUX", "aux"}, "been": {"AUX", "aux"},
	"do": {"AUX", "aux"}, "does": {"AUX", "aux"}, "did": {"AUX", "aux"},
	"has": {"AUX", "aux"}, "have": {"AUX", "aux"}, "had": {"AUX", "aux"},
	"will": {"AUX", "aux"}, "would": {"AUX", "aux"},
	// negation markers
	"not": {"PART", "neg"}, "no": {"DET", "neg"}, "never": {"ADV", "neg"},
	"none": {"PRON", "neg"}, "n't": {"PART", "neg"},
	// adpositions
	"in": {"ADP", "prep"}, "on": {"ADP", "prep"}, "at": {"ADP", "prep"},
	"of": {"ADP", "prep"}, "to": {"ADP", "prep"}, "by": {"ADP", "prep"},
	"for": {"ADP", "prep"}, "with": {"ADP", "prep"}, "from": {"ADP", "prep"},
	"over": {"ADP", "prep"}, "under": {"ADP", "prep"},
	// conjunctions
	"and": {"CCONJ", "cc"}, "or": {"CCONJ", "cc"}, "but": {"CCONJ", "cc"},
	// pronouns
	"i": {"PRON", "nsubj"}, "you": {"PRON", "nsubj"}, "he": {"PRON", "nsubj"},
	"she": {"PRON", "nsubj"}, "it": {"PRON", "nsubj"}, "we": {"PRON", "nsubj"},
	"they": {"PRON", "nsubj"},
	// comparators
	"<": {"SYM", "amod"}, ">": {"SYM", "amod"}, "=": {"SYM", "amod"},
	"<=": {"SYM", "amod"}, ">=": {"SYM", "amod"}, "==": {"SYM", "amod"},
	"!=": {"SYM", "amod"},
	// time adverbs
	"yesterday": {"ADV", "advmod"}, "today": {"ADV", "advmod"},
	"tomorrow": {"ADV", "advmod"},
}

// RuleBackend is the deterministic fallback backend: a regex word and
// punctuation splitter with lowercased lemmas and the closed tag
// table above. Heads form a simple chain: every token points at its
// predecessor and the first token at itself.
type RuleBackend struct{}

// NewRuleBackend creates the deterministic backend. Construction
// cannot fail.
func NewRuleBackend() *RuleBackend {
	return &RuleBackend{}
}

// Tokens yields the token sequence for text lazily.
func (b *RuleBackend) Tokens(text string) iter.Seq[model.Token] {
	words := wordPattern.FindAllString(text, -1)

	return func(yield func(model.Token) bool) {
		for i, word := range words {
			head := i - 1
			if i == 0 {
				head = 0
			}
			if !yield(annotate(word, head)) {
				return
			}
		}
	}
}

func annotate(word string, head int) model.Token {
	lemma := strings.ToLower(word)

	tok := model.Token{
		Text:  word,
		Lemma: lemma,
		Pos:   "X",
		Dep:   "dep",
		Head:  head,
	}

	switch {
	case isNumeric(word):
		tok.Pos = "NUM"
		tok.Dep = "nummod"
	case isPunct(word):
		tok.Pos = "PUNCT"
		tok.Dep = "punct"
	default:
		if entry, ok := tagTable[lemma]; ok {
			tok.Pos = entry.pos
			tok.Dep = entry.dep
		}
	}

	return tok
}

func isNumeric(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

func isPunct(word string) bool {
	if _, tagged := tagTable[word]; tagged {
		return false
	}
	for _, r := range word {
		if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
			return false
		}
	}
	return word != ""
}
