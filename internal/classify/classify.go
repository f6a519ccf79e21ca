package classify

import (
	"strings"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

// Classify runs the skill, type and module classifiers over content and
// assembles the result. It is a pure function of content.
func Classify(content string) (*Result, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}

	in := NewInput(content)
	skill, skillConf := classifySkill(in)
	match := classifyType(in, skill)
	module := classifyModule(in, skill, match.ItemType)

	return &Result{
		Skill:           skill,
		Module:          module,
		ItemType:        match.ItemType,
		Category:        match.Category,
		Confidence:      match.Confidence,
		SkillConfidence: skillConf,
		Reason:          match.Reason,
		Rule:            match.Rule,
	}, nil
}

// ClassifyType picks the item type of content within an already chosen
// skill.
func ClassifyType(content string, skill taxonomy.Skill) TypeMatch {
	return classifyType(NewInput(content), skill)
}

func classifyType(in *Input, skill taxonomy.Skill) TypeMatch {
	// Every cascade ends in an always-matching rule.
	m, _ := RunRules(TypeRules(skill), in)
	return m
}

// ClassifyModule decides Academic vs General Training. For Writing the
// item type already carries the decision; Reading and Listening look for
// an explicit track marker.
func ClassifyModule(content string, skill taxonomy.Skill, itemType taxonomy.ItemType) taxonomy.Module {
	return classifyModule(NewInput(content), skill, itemType)
}

func classifyModule(in *Input, skill taxonomy.Skill, itemType taxonomy.ItemType) taxonomy.Module {
	switch skill {
	case taxonomy.SkillWriting:
		if itemType == taxonomy.Task1FormalLetter || itemType == taxonomy.Task1InformalLetter {
			return taxonomy.ModuleGeneralTraining
		}
		return taxonomy.ModuleAcademic
	case taxonomy.SkillReading, taxonomy.SkillListening:
		if taxonomy.GeneralTrainingMarkers.MatchIn(in.Lower) {
			return taxonomy.ModuleGeneralTraining
		}
	}
	return taxonomy.DefaultModule(skill)
}
