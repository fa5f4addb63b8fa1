package contradict

import (
	"strings"
	"testing"

	"github.com/glossa-dev/glossa/internal/model"
)

func claim(subject, verb string, polarity model.Polarity) model.PredicateFrame {
	return model.PredicateFrame{
		SubjectEntity: subject,
		VerbLemma:     verb,
		Polarity:      polarity,
	}
}

func numeric(subject, verb string, value float64) model.PredicateFrame {
	pred := claim(subject, verb, model.PolarityPositive)
	pred.NumericArgs = pred.NumericArgs.Add("nummod", value)
	return pred
}

func TestDetect_PolarityMismatch(t *testing.T) {
	predicates := []model.PredicateFrame{
		claim("plant", "operate", model.PolarityPositive),
		claim("plant", "operate", model.PolarityNegative),
	}

	out := NewDetector().Detect(predicates, Options{SubjectEntityID: "ent-1"})
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	if out[0].SubjectEntityID != "ent-1" || out[0].SubjectText != "plant" {
		t.Errorf("unexpected subject fields: %+v", out[0])
	}
	if out[0].ClaimA != "plant operate" {
		t.Errorf("unexpected claim_a %q", out[0].ClaimA)
	}
	if out[0].ClaimB != "plant not operate" {
		t.Errorf("unexpected claim_b %q", out[0].ClaimB)
	}
	if out[0].EvidenceIDs == nil || len(out[0].EvidenceIDs) != 0 {
		t.Errorf("expected empty evidence list, got %v", out[0].EvidenceIDs)
	}
}

func TestDetect_GatesOnSubjectAndVerb(t *testing.T) {
	predicates := []model.PredicateFrame{
		claim("plant", "operate", model.PolarityPositive),
		claim("factory", "operate", model.PolarityNegative),
		claim("plant", "run", model.PolarityNegative),
	}

	if out := NewDetector().Detect(predicates, Options{}); len(out) != 0 {
		t.Errorf("expected no candidates across subjects or verbs, got %d", len(out))
	}
}

func TestDetect_SubjectMatchIsCaseInsensitive(t *testing.T) {
	predicates := []model.PredicateFrame{
		claim("Plant", "operate", model.PolarityPositive),
		claim("plant", "operate", model.PolarityNegative),
	}

	if out := NewDetector().Detect(predicates, Options{}); len(out) != 1 {
		t.Errorf("expected case-insensitive subject match, got %d candidates", len(out))
	}
}

func TestDetect_NumericWithinTolerance(t *testing.T) {
	predicates := []model.PredicateFrame{
		numeric("plant", "produce", 100),
		numeric("plant", "produce", 103),
	}

	out := NewDetector().Detect(predicates, Options{Tolerance: 0.1})
	if len(out) != 0 {
		t.Errorf("expected 3%% deviation inside 10%% tolerance, got %d candidates", len(out))
	}
}

func TestDetect_NumericBeyondTolerance(t *testing.T) {
	predicates := []model.PredicateFrame{
		numeric("plant", "produce", 100),
		numeric("plant", "produce", 120),
	}

	out := NewDetector().Detect(predicates, Options{Tolerance: 0.1})
	if len(out) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(out))
	}
	if !strings.Contains(out[0].ClaimA, "plant produce") {
		t.Errorf("unexpected claim text %q", out[0].ClaimA)
	}
}

func TestDetect_NumericBoundaryNotFlagged(t *testing.T) {
	// diff is exactly tolerance * max(|a|, |b|); the comparison is
	// strict, so the pair passes.
	predicates := []model.PredicateFrame{
		numeric("plant", "produce", 100),
		numeric("plant", "produce", 90),
	}

	if out := NewDetector().Detect(predicates, Options{Tolerance: 0.1}); len(out) != 0 {
		t.Errorf("expected boundary deviation unflagged, got %d candidates", len(out))
	}
}

func TestDetect_DefaultTolerance(t *testing.T) {
	near := []model.PredicateFrame{
		numeric("plant", "produce", 100),
		numeric("plant", "produce", 104),
	}
	far := []model.PredicateFrame{
		numeric("plant", "produce", 100),
		numeric("plant", "produce", 110),
	}

	if out := NewDetector().Detect(near, Options{}); len(out) != 0 {
		t.Errorf("expected 4%% deviation inside the 5%% default, got %d candidates", len(out))
	}
	if out := NewDetector().Detect(far, Options{}); len(out) != 1 {
		t.Errorf("expected 10%% deviation flagged by default, got %d candidates", len(out))
	}
}

func TestDetect_PolarityMismatchSkipsNumericCheck(t *testing.T) {
	a := numeric("plant", "produce", 100)
	b := numeric("plant", "produce", 100)
	b.Polarity = model.PolarityNegative

	out := NewDetector().Detect([]model.PredicateFrame{a, b}, Options{})
	if len(out) != 1 {
		t.Errorf("expected equal values still flagged on polarity, got %d candidates", len(out))
	}
}

func TestDetect_IdenticalClaims(t *testing.T) {
	predicates := []model.PredicateFrame{
		claim("plant", "operate", model.PolarityPositive),
		claim("plant", "operate", model.PolarityPositive),
	}

	if out := NewDetector().Detect(predicates, Options{}); len(out) != 0 {
		t.Errorf("expected identical claims unflagged, got %d candidates", len(out))
	}
}

func TestBuildClaims_SubjectFallback(t *testing.T) {
	predicates := []model.PredicateFrame{
		{VerbLemma: "operate", Polarity: model.PolarityPositive},
		{VerbLemma: "close", Polarity: model.PolarityNegative, ObjectEntity: "gate."},
	}

	claims := BuildClaims(predicates, "the plant")
	if len(claims) != 2 {
		t.Fatalf("expected 2 claims, got %d", len(claims))
	}
	if claims[0].Text != "the plant operate" {
		t.Errorf("unexpected claim text %q", claims[0].Text)
	}
	if claims[1].Text != "the plant not close gate" {
		t.Errorf("expected trailing period stripped, got %q", claims[1].Text)
	}
}

func TestBuildClaims_SkipsSubjectlessPredicates(t *testing.T) {
	predicates := []model.PredicateFrame{
		{VerbLemma: "operate", Polarity: model.PolarityPositive},
	}

	if claims := BuildClaims(predicates, ""); len(claims) != 0 {
		t.Errorf("expected subjectless predicate skipped, got %d claims", len(claims))
	}
}
