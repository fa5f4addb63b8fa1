package frame

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/glossa-dev/glossa/internal/extract"
	"github.com/glossa-dev/glossa/internal/model"
)

// Closed verb vocabularies for frame classification.
var (
	measurementVerbs = map[string]bool{
		"measure": true, "weigh": true, "count": true, "total": true,
		"average": true, "equal": true, "cost": true,
	}
	causationVerbs = map[string]bool{
		"cause": true, "trigger": true, "lead": true, "result": true,
		"induce": true, "produce": true, "prevent": true,
	}
	transferVerbs = map[string]bool{
		"give": true, "send": true, "transfer": true, "deliver": true,
		"sell": true, "buy": true, "move": true, "pay": true, "receive": true,
	}
	claimVerbs = map[string]bool{
		"say": true, "claim": true, "state": true, "report": true,
		"argue": true, "believe": true, "suggest": true, "assert": true,
	}
)

// Un-prefixed modifier vocabularies for role filling.
var (
	timeWords = map[string]bool{
		"yesterday": true, "today": true, "tomorrow": true,
	}
	locationWords = map[string]bool{
		"office": true, "warehouse": true, "factory": true,
		"lab": true, "park": true,
	}
)

// Batch pairs a sentence index with the predicates extracted from
// that sentence.
type Batch struct {
	Sentence   int
	Predicates []model.PredicateFrame
}

// Builder groups predicates into typed event frames.
type Builder struct{}

// NewBuilder creates a builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build groups each batch's predicates by (sentence, dominant entity)
// in first-seen order and emits one typed frame per group. Frame ids
// run "frame-1", "frame-2", ... across the whole call. maxFrames caps
// the emitted frames (0 = no cap); once reached, remaining groups and
// batches are not processed.
func (b *Builder) Build(batches []Batch, maxFrames int) []model.EventFrame {
	var frames []model.EventFrame

	for _, batch := range batches {
		keys, groups := groupByDominant(batch)
		for _, key := range keys {
			if maxFrames > 0 && len(frames) >= maxFrames {
				return frames
			}
			frames = append(frames, buildFrame(len(frames)+1, groups[key]))
		}
	}

	return frames
}

func groupByDominant(batch Batch) ([]string, map[string][]model.PredicateFrame) {
	var keys []string
	groups := make(map[string][]model.PredicateFrame)

	for _, pred := range batch.Predicates {
		key := fmt.Sprintf("%d\x00%s", batch.Sentence, dominantEntity(pred))
		if _, seen := groups[key]; !seen {
			keys = append(keys, key)
		}
		groups[key] = append(groups[key], pred)
	}

	return keys, groups
}

// dominantEntity is the first non-empty of subject, object, verb
// lemma.
func dominantEntity(pred model.PredicateFrame) string {
	if pred.SubjectEntity != "" {
		return pred.SubjectEntity
	}
	if pred.ObjectEntity != "" {
		return pred.ObjectEntity
	}
	return pred.VerbLemma
}

func buildFrame(n int, group []model.PredicateFrame) model.EventFrame {
	return model.EventFrame{
		FrameID:    fmt.Sprintf("frame-%d", n),
		Type:       classify(group),
		Roles:      deriveRoles(group),
		Predicates: group,
	}
}

// deriveRoles fills the five roles from the group. Every assignment
// is first-wins: agent/patient from the predicates in input order,
// then modifier hints, then numeric-argument fallbacks.
func deriveRoles(group []model.PredicateFrame) model.Roles {
	var roles model.Roles

	for _, pred := range group {
		if roles.Agent == "" && pred.SubjectEntity != "" {
			roles.Agent = pred.SubjectEntity
		}
		if roles.Patient == "" && pred.ObjectEntity != "" {
			roles.Patient = pred.ObjectEntity
		}
	}

	for _, pred := range group {
		for _, modifier := range pred.Modifiers {
			applyRoleHint(&roles, modifier)
		}
	}

	for _, pred := range group {
		if roles.Instrument == "" {
			if values := pred.NumericArgs.Get("instrument"); len(values) > 0 {
				roles.Instrument = strconv.FormatFloat(values[0], 'g', -1, 64)
			}
		}
		if roles.Time == "" {
			if values := pred.NumericArgs.Get("time"); len(values) > 0 {
				roles.Time = strconv.FormatFloat(values[0], 'g', -1, 64)
			}
		}
	}

	return roles
}

func applyRoleHint(roles *model.Roles, modifier string) {
	if prefix, value, ok := strings.Cut(modifier, ":"); ok {
		value = strings.TrimSpace(value)
		if value == "" {
			return
		}
		switch strings.ToLower(strings.TrimSpace(prefix)) {
		case "time", "when":
			if roles.Time == "" {
				roles.Time = value
			}
		case "loc", "location", "where":
			if roles.Location == "" {
				roles.Location = value
			}
		case "with", "using", "via", "instrument":
			if roles.Instrument == "" {
				roles.Instrument = value
			}
		}
		return
	}

	word := strings.ToLower(strings.TrimSpace(modifier))
	switch {
	case timeWords[word]:
		if roles.Time == "" {
			roles.Time = strings.TrimSpace(modifier)
		}
	case locationWords[word]:
		if roles.Location == "" {
			roles.Location = strings.TrimSpace(modifier)
		}
	}
}

// classify tests the frame categories in fixed priority and returns
// the first match.
func classify(group []model.PredicateFrame) model.FrameType {
	agent, patient := false, false
	for _, pred := range group {
		if pred.SubjectEntity != "" {
			agent = true
		}
		if pred.ObjectEntity != "" {
			patient = true
		}
	}

	for _, pred := range group {
		if len(pred.NumericArgs) > 0 || measurementVerbs[pred.VerbLemma] {
			return model.FrameMeasurement
		}
		for _, modifier := range pred.Modifiers {
			if extract.IsComparator(modifier) {
				return model.FrameMeasurement
			}
		}
	}
	for _, pred := range group {
		if causationVerbs[pred.VerbLemma] {
			return model.FrameCausation
		}
	}
	if agent && patient {
		return model.FrameTransfer
	}
	for _, pred := range group {
		if transferVerbs[pred.VerbLemma] {
			return model.FrameTransfer
		}
	}
	for _, pred := range group {
		if claimVerbs[pred.VerbLemma] {
			return model.FrameClaim
		}
	}
	return model.FrameClaim
}
