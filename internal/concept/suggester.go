package concept

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/glossa-dev/glossa/internal/model"
	"github.com/glossa-dev/glossa/internal/token"
)

var nominalPos = map[string]bool{"NOUN": true, "PROPN": true, "ADJ": true}

// Suggester proposes new concept names from a memory corpus. Three
// passes run strictly in order over all memories: frame role values,
// unseen multiword spans, then TF-IDF ranked nouns. A normalized
// seen-set covers both the caller's existing vocabulary and every
// name already returned, so no pass can re-suggest a name.
type Suggester struct {
	backend token.Backend
}

// NewSuggester creates a suggester over the given backend.
func NewSuggester(backend token.Backend) *Suggester {
	return &Suggester{backend: backend}
}

// Suggest runs the three passes. maxConcepts caps the total output
// (0 = no cap); the instant the cap is reached the call returns, even
// mid-pass.
func (s *Suggester) Suggest(memories []model.Memory, existing []string, maxConcepts int) []model.ConceptSuggestion {
	seen := make(map[string]bool, len(existing))
	for _, name := range existing {
		seen[normalizeName(name)] = true
	}

	var out []model.ConceptSuggestion

	// emit reports (emitted, capped). Names without a letter or
	// already seen are silently skipped.
	emit := func(name, rationale, memoryID string) (bool, bool) {
		norm := normalizeName(name)
		if norm == "" || !containsLetter(norm) || seen[norm] {
			return false, false
		}
		seen[norm] = true
		out = append(out, model.ConceptSuggestion{
			Name:           titleCase(name),
			Rationale:      rationale,
			SourceMemoryID: memoryID,
		})
		return true, maxConcepts > 0 && len(out) >= maxConcepts
	}

	// Pass 1: frame role values, roles in fixed order.
	for _, memory := range memories {
		for _, fr := range memory.Frames {
			roles := [5]struct{ name, value string }{
				{"agent", fr.Roles.Agent},
				{"patient", fr.Roles.Patient},
				{"instrument", fr.Roles.Instrument},
				{"location", fr.Roles.Location},
				{"time", fr.Roles.Time},
			}
			for _, role := range roles {
				if role.value == "" {
					continue
				}
				rationale := fmt.Sprintf("Frame role %s in %s frame", role.name, fr.Type)
				if _, capped := emit(role.value, rationale, memory.ID); capped {
					return out
				}
			}
		}
	}

	// Passes 2 and 3 both work on the tokenized texts.
	tokenized := make([][]model.Token, len(memories))
	for i, memory := range memories {
		tokenized[i] = token.Collect(s.backend, memory.Text)
	}

	// Pass 2: maximal multiword nominal spans, up to 2 per memory.
	for i, memory := range memories {
		taken := 0
		for _, phrase := range nominalSpans(tokenized[i]) {
			if taken >= 2 {
				break
			}
			emitted, capped := emit(phrase, "Unseen multiword span", memory.ID)
			if emitted {
				taken++
			}
			if capped {
				return out
			}
		}
	}

	// Pass 3: TF-IDF ranked noun lemmas, up to 2 per memory.
	frequencies := documentFrequencies(tokenized)
	corpusSize := len(memories)

	for i, memory := range memories {
		taken := 0
		for _, ranked := range rankNouns(tokenized[i], frequencies, corpusSize) {
			if taken >= 2 {
				break
			}
			rationale := fmt.Sprintf("High TF-IDF noun (score %.3f)", ranked.score)
			emitted, capped := emit(ranked.lemma, rationale, memory.ID)
			if emitted {
				taken++
			}
			if capped {
				return out
			}
		}
	}

	return out
}

// nominalSpans returns the phrases of maximal runs (length >= 2) of
// contiguous NOUN/PROPN/ADJ tokens, ordered by first occurrence with
// longer phrases first on ties.
func nominalSpans(tokens []model.Token) []string {
	type span struct {
		start  int
		phrase string
	}

	var spans []span
	run := -1
	flush := func(end int) {
		if run >= 0 && end-run >= 2 {
			lemmas := make([]string, 0, end-run)
			for _, tok := range tokens[run:end] {
				lemmas = append(lemmas, lemmaOf(tok))
			}
			spans = append(spans, span{start: run, phrase: strings.Join(lemmas, " ")})
		}
		run = -1
	}

	for i, tok := range tokens {
		if nominalPos[tok.Pos] {
			if run < 0 {
				run = i
			}
			continue
		}
		flush(i)
	}
	flush(len(tokens))

	sort.SliceStable(spans, func(a, b int) bool {
		if spans[a].start != spans[b].start {
			return spans[a].start < spans[b].start
		}
		return len(spans[a].phrase) > len(spans[b].phrase)
	})

	phrases := make([]string, 0, len(spans))
	for _, sp := range spans {
		phrases = append(phrases, sp.phrase)
	}
	return phrases
}

type rankedNoun struct {
	lemma string
	score float64
}

// documentFrequencies counts, per noun lemma, the number of memories
// containing it at least once.
func documentFrequencies(tokenized [][]model.Token) map[string]int {
	frequencies := make(map[string]int)
	for _, tokens := range tokenized {
		inDoc := make(map[string]bool)
		for _, tok := range tokens {
			if tok.Pos == "NOUN" || tok.Pos == "PROPN" {
				inDoc[lemmaOf(tok)] = true
			}
		}
		for lemma := range inDoc {
			frequencies[lemma]++
		}
	}
	return frequencies
}

// rankNouns scores one memory's noun lemmas by tf*idf with
// idf = ln((N+1)/(df+1)) + 1, descending, ties alphabetical.
func rankNouns(tokens []model.Token, frequencies map[string]int, corpusSize int) []rankedNoun {
	counts := make(map[string]int)
	total := 0
	for _, tok := range tokens {
		if tok.Pos == "NOUN" || tok.Pos == "PROPN" {
			counts[lemmaOf(tok)]++
			total++
		}
	}
	if total == 0 {
		return nil
	}

	ranked := make([]rankedNoun, 0, len(counts))
	for lemma, count := range counts {
		tf := float64(count) / float64(total)
		idf := math.Log(float64(corpusSize+1)/float64(frequencies[lemma]+1)) + 1
		ranked = append(ranked, rankedNoun{lemma: lemma, score: tf * idf})
	}

	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].score != ranked[b].score {
			return ranked[a].score > ranked[b].score
		}
		return ranked[a].lemma < ranked[b].lemma
	})

	return ranked
}

func lemmaOf(tok model.Token) string {
	if tok.Lemma != "" {
		return strings.ToLower(tok.Lemma)
	}
	return strings.ToLower(tok.Text)
}

// normalizeName lowercases and collapses whitespace.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// titleCase renders a whitespace-normalized name in Title Case.
func titleCase(name string) string {
	return cases.Title(language.English).String(strings.Join(strings.Fields(name), " "))
}
