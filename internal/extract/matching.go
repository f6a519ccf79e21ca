package extract

import (
	"regexp"
	"strings"
)

var (
	letterChoiceRe = regexp.MustCompile(`^([A-Z])[.)]\s*(.+)`)
	romanChoiceRe  = regexp.MustCompile(`^(xii|xi|x|ix|viii|vii|vi|v|iv|iii|ii|i)[.)]\s+(.+)`)
)

// parseMatching splits matching content into numbered items and the list
// of choices they are matched against. Heading lists labelled with
// lower-case roman numerals are read as choices too.
func parseMatching(lines []string) ([]Question, []MatchingChoice) {
	items := []Question{}
	choices := []MatchingChoice{}

	for _, line := range lines {
		switch {
		case isNumbered(line):
			items = append(items, Question{
				Number: len(items) + 1,
				Kind:   KindMatchingItem,
				Text:   stripNumber(line),
			})
		case letterChoiceRe.MatchString(line):
			m := letterChoiceRe.FindStringSubmatch(line)
			choices = append(choices, MatchingChoice{Label: m[1], Text: strings.TrimSpace(m[2])})
		case romanChoiceRe.MatchString(line):
			m := romanChoiceRe.FindStringSubmatch(line)
			choices = append(choices, MatchingChoice{Label: m[1], Text: strings.TrimSpace(m[2])})
		}
	}
	return items, choices
}
