package extract

import (
	"regexp"
	"strings"
)

var mcqOptionRe = regexp.MustCompile(`^([A-D])[.)]\s*(.+)`)

// mcqState is the scanner state while reading multiple-choice items.
type mcqState int

const (
	noOpenQuestion mcqState = iota
	questionOpen
)

// parseMultipleChoice groups lettered options A-D under the numbered
// question that precedes them. Options seen before any question are
// dropped; a question without options is still emitted.
func parseMultipleChoice(lines []string) []Question {
	questions := []Question{}
	state := noOpenQuestion
	var open Question

	for _, line := range lines {
		if isQuestionStart(line) {
			if state == questionOpen {
				questions = append(questions, open)
			}
			open = Question{
				Number: len(questions) + 1,
				Kind:   KindMultipleChoice,
				Text:   stripNumber(line),
			}
			state = questionOpen
			continue
		}
		if state != questionOpen {
			continue
		}
		if m := mcqOptionRe.FindStringSubmatch(line); m != nil {
			open.Options = append(open.Options, Option{Label: m[1], Text: strings.TrimSpace(m[2])})
		}
	}
	if state == questionOpen {
		questions = append(questions, open)
	}
	return questions
}
