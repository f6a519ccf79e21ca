package classify

import "github.com/abhisek/itemizer/internal/taxonomy"

// skillRule selects a skill when any phrase of its indicator set occurs.
type skillRule struct {
	skill      taxonomy.Skill
	indicators taxonomy.IndicatorSet
}

// skillRules is the skill cascade. Writing comes first because writing
// prompts routinely contain speaking and listening vocabulary; Reading has
// no rule and is the fallback.
var skillRules = []skillRule{
	{taxonomy.SkillWriting, taxonomy.WritingIndicators},
	{taxonomy.SkillSpeaking, taxonomy.SpeakingIndicators},
	{taxonomy.SkillListening, taxonomy.ListeningIndicators},
}

// ClassifySkill decides the skill of content. The returned confidence is
// High when an indicator matched and Medium for the Reading fallback.
func ClassifySkill(content string) (taxonomy.Skill, taxonomy.Confidence) {
	return classifySkill(NewInput(content))
}

func classifySkill(in *Input) (taxonomy.Skill, taxonomy.Confidence) {
	for _, r := range skillRules {
		if r.indicators.MatchIn(in.Lower) {
			return r.skill, taxonomy.ConfidenceHigh
		}
	}
	return taxonomy.SkillReading, taxonomy.ConfidenceMedium
}
