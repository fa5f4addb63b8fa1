package model

// Token is the smallest lexical unit: surface form, lemma, POS tag,
// dependency label, and the index of its syntactic head within the
// owning token sequence. Root tokens point at themselves.
// Tokens are never mutated after creation.
type Token struct {
	Text  string `json:"text"`
	Lemma string `json:"lemma"`
	Pos   string `json:"pos"`
	Dep   string `json:"dep"`
	Head  int    `json:"head"`
}

// Polarity marks whether a predicate is asserted or negated.
type Polarity string

const (
	PolarityPositive Polarity = "positive"
	PolarityNegative Polarity = "negative"
)

// NumericArg is one numeric argument slot of a predicate.
type NumericArg struct {
	Key    string    `json:"key"`
	Values []float64 `json:"values"`
}

// NumericArgs holds a predicate's numeric arguments as an ordered list
// of slots. Insertion order is preserved so "first value" lookups are
// reproducible across runs; a Go map would not give that guarantee.
type NumericArgs []NumericArg

// Add records value under key, creating the slot on first use.
func (n NumericArgs) Add(key string, value float64) NumericArgs {
	for i := range n {
		if n[i].Key == key {
			n[i].Values = append(n[i].Values, value)
			return n
		}
	}
	return append(n, NumericArg{Key: key, Values: []float64{value}})
}

// Get returns the ordered values recorded under key.
func (n NumericArgs) Get(key string) []float64 {
	for _, arg := range n {
		if arg.Key == key {
			return arg.Values
		}
	}
	return nil
}

// First returns the first recorded value in insertion order.
func (n NumericArgs) First() (float64, bool) {
	for _, arg := range n {
		if len(arg.Values) > 0 {
			return arg.Values[0], true
		}
	}
	return 0, false
}

// PredicateFrame is one verb occurrence with its resolved subject,
// object, modifiers, polarity, and numeric arguments. Polarity is
// negative iff a negation marker was attached to the verb or one of
// its auxiliaries.
type PredicateFrame struct {
	VerbLemma     string      `json:"verb_lemma"`
	SubjectEntity string      `json:"subject_entity,omitempty"`
	ObjectEntity  string      `json:"object_entity,omitempty"`
	Modifiers     []string    `json:"modifiers,omitempty"`
	Polarity      Polarity    `json:"polarity"`
	NumericArgs   NumericArgs `json:"numeric_args,omitempty"`
}
