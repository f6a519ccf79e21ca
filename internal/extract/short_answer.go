package extract

// parseShortAnswer turns numbered and "Question N" lines into short-answer
// questions that inherit the shared word limit.
func parseShortAnswer(lines []string, limit *WordLimit) []Question {
	questions := []Question{}
	for _, line := range lines {
		if !isQuestionStart(line) {
			continue
		}
		q := Question{
			Number: len(questions) + 1,
			Kind:   KindShortAnswer,
			Text:   stripNumber(line),
		}
		if limit != nil {
			l := *limit
			q.WordLimit = &l
		}
		questions = append(questions, q)
	}
	return questions
}
