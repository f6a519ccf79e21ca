package extract

var (
	trueFalseOptions = []string{"TRUE", "FALSE", "NOT GIVEN"}
	yesNoOptions     = []string{"YES", "NO", "NOT GIVEN"}
)

// parseStatements turns every numbered line into a statement carrying the
// fixed three-way option set.
func parseStatements(lines []string, labels []string) []Question {
	questions := []Question{}
	for _, line := range lines {
		if !isNumbered(line) {
			continue
		}
		opts := make([]Option, len(labels))
		for i, l := range labels {
			opts[i] = Option{Label: l, Text: l}
		}
		questions = append(questions, Question{
			Number:  len(questions) + 1,
			Kind:    KindStatement,
			Text:    stripNumber(line),
			Options: opts,
		})
	}
	return questions
}
