package classify

import "github.com/abhisek/itemizer/internal/taxonomy"

// Rule is one step of a priority cascade: when Match holds, Decide builds
// the verdict and no later rule is consulted.
type Rule struct {
	Name   string
	Match  func(in *Input) bool
	Decide func(in *Input) Verdict
}

// RunRules evaluates rules in order and returns the first match.
// Returns (TypeMatch{}, false) if no rule applies.
func RunRules(rules []Rule, in *Input) (TypeMatch, bool) {
	for _, r := range rules {
		if !r.Match(in) {
			continue
		}
		v := r.Decide(in)
		return TypeMatch{
			ItemType:   v.ItemType,
			Category:   taxonomy.CategoryOf(v.ItemType),
			Confidence: v.Confidence,
			Reason:     v.Reason,
			Rule:       r.Name,
		}, true
	}
	return TypeMatch{}, false
}

// always matches; used as the last step of a cascade.
func always(*Input) bool { return true }

// fixed returns a Decide func with a constant verdict.
func fixed(t taxonomy.ItemType, c taxonomy.Confidence, reason string) func(*Input) Verdict {
	return func(*Input) Verdict {
		return Verdict{ItemType: t, Confidence: c, Reason: reason}
	}
}

// containsAny returns a Match func over the lower-cased content.
func containsAny(phrases ...string) func(*Input) bool {
	set := taxonomy.IndicatorSet(phrases)
	return func(in *Input) bool { return set.MatchIn(in.Lower) }
}

// TypeRules returns the type cascade for a skill in priority order.
func TypeRules(s taxonomy.Skill) []Rule {
	switch s {
	case taxonomy.SkillWriting:
		return writingRules
	case taxonomy.SkillSpeaking:
		return speakingRules
	case taxonomy.SkillListening:
		return listeningRules
	default:
		return readingRules
	}
}
