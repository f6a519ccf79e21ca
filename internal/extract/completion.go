package extract

import (
	"unicode/utf8"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

// parseCompletion records one blank per marker match and turns numbered
// lines that contain a blank into completion questions.
func parseCompletion(lines []string) ([]Blank, []Question) {
	blanks := []Blank{}
	questions := []Question{}

	for _, line := range lines {
		matches := taxonomy.BlankMarker.FindAllStringIndex(line, -1)
		if len(matches) == 0 {
			continue
		}
		for _, loc := range matches {
			blanks = append(blanks, Blank{
				Number:   len(blanks) + 1,
				Context:  line,
				Position: utf8.RuneCountInString(line[:loc[0]]),
				Kind:     BlankKind,
			})
		}
		if isNumbered(line) {
			questions = append(questions, Question{
				Number: len(questions) + 1,
				Kind:   KindCompletion,
				Text:   stripNumber(line),
			})
		}
	}
	return blanks, questions
}
