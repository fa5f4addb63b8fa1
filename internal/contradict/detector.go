package contradict

import (
	"math"
	"strings"

	"github.com/glossa-dev/glossa/internal/model"
)

// DefaultTolerance is the fractional numeric deviation allowed before
// two claims are flagged.
const DefaultTolerance = 0.05

// Claim is one normalized assertion derived from a predicate.
type Claim struct {
	Subject   string
	Predicate string
	Polarity  model.Polarity
	Value     *float64
	Text      string
}

// Options tunes one detection call. SubjectText backfills predicates
// without their own subject; Tolerance <= 0 means DefaultTolerance.
type Options struct {
	SubjectEntityID string
	SubjectText     string
	Tolerance       float64
}

// Detector flags pairwise polarity and numeric disagreements between
// claims that share a subject and verb.
type Detector struct{}

// NewDetector creates a detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect builds one claim per predicate and compares every unordered
// pair. Pairs are gated on a case-insensitive subject match and an
// exact verb lemma match. A polarity mismatch is flagged without
// running the numeric check; otherwise two numeric values are flagged
// when their difference strictly exceeds tolerance * max(|a|, |b|,
// tolerance).
func (d *Detector) Detect(predicates []model.PredicateFrame, opts Options) []model.ContradictionCandidate {
	tolerance := opts.Tolerance
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	claims := BuildClaims(predicates, opts.SubjectText)

	var out []model.ContradictionCandidate
	for i := 0; i < len(claims); i++ {
		for j := i + 1; j < len(claims); j++ {
			a, b := claims[i], claims[j]
			if !strings.EqualFold(a.Subject, b.Subject) || a.Predicate != b.Predicate {
				continue
			}

			if a.Polarity != b.Polarity {
				out = append(out, candidate(opts.SubjectEntityID, a, b))
				continue
			}

			if a.Value == nil || b.Value == nil {
				continue
			}
			diff := math.Abs(*a.Value - *b.Value)
			base := math.Max(math.Abs(*a.Value), math.Max(math.Abs(*b.Value), tolerance))
			if diff > tolerance*base {
				out = append(out, candidate(opts.SubjectEntityID, a, b))
			}
		}
	}
	return out
}

// BuildClaims derives one claim per predicate. Predicates with no
// subject of their own and no caller-supplied fallback are skipped.
func BuildClaims(predicates []model.PredicateFrame, subjectText string) []Claim {
	claims := make([]Claim, 0, len(predicates))
	for _, pred := range predicates {
		subject := pred.SubjectEntity
		if subject == "" {
			subject = subjectText
		}
		if subject == "" {
			continue
		}

		claim := Claim{
			Subject:   subject,
			Predicate: pred.VerbLemma,
			Polarity:  pred.Polarity,
			Text:      renderClaim(subject, pred),
		}
		if value, ok := pred.NumericArgs.First(); ok {
			v := value
			claim.Value = &v
		}
		claims = append(claims, claim)
	}
	return claims
}

// renderClaim produces the normalized claim text:
// "{subject} [not ]{verb}[ {object}]", trimmed, trailing period
// stripped.
func renderClaim(subject string, pred model.PredicateFrame) string {
	var sb strings.Builder
	sb.WriteString(subject)
	sb.WriteString(" ")
	if pred.Polarity == model.PolarityNegative {
		sb.WriteString("not ")
	}
	sb.WriteString(pred.VerbLemma)
	if pred.ObjectEntity != "" {
		sb.WriteString(" ")
		sb.WriteString(pred.ObjectEntity)
	}
	return strings.TrimSuffix(strings.TrimSpace(sb.String()), ".")
}

func candidate(subjectEntityID string, a, b Claim) model.ContradictionCandidate {
	return model.ContradictionCandidate{
		SubjectEntityID: subjectEntityID,
		SubjectText:     a.Subject,
		ClaimA:          a.Text,
		ClaimB:          b.Text,
		EvidenceIDs:     []string{},
	}
}
