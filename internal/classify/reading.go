package classify

import (
	"regexp"
	"strings"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

var (
	yesRe          = regexp.MustCompile(`\byes\b`)
	noRe           = regexp.MustCompile(`\bno\b`)
	optionLineRe   = regexp.MustCompile(`(?m)^\s*[a-d][.)]`)
	reviewFallback = "No specific question-type indicators found; defaulted to Multiple Choice. Please review."
)

func containsAll(lower string, phrases ...string) bool {
	for _, p := range phrases {
		if !strings.Contains(lower, p) {
			return false
		}
	}
	return true
}

// readingRules is the longest cascade. Each rule is only consulted when
// every earlier one failed, so the order below is the tie-break policy.
var readingRules = []Rule{
	{
		Name: "true-false-not-given",
		Match: func(in *Input) bool {
			return containsAll(in.Lower, "true", "false", "not given")
		},
		Decide: fixed(taxonomy.TrueFalseNotGiven, taxonomy.ConfidenceHigh, "Statements judged TRUE, FALSE or NOT GIVEN against the passage."),
	},
	{
		Name: "yes-no-not-given",
		Match: func(in *Input) bool {
			return yesRe.MatchString(in.Lower) && noRe.MatchString(in.Lower) && strings.Contains(in.Lower, "not given")
		},
		Decide: fixed(taxonomy.YesNoNotGiven, taxonomy.ConfidenceHigh, "Claims judged YES, NO or NOT GIVEN against the writer's views."),
	},
	{
		Name:   "matching-headings",
		Match:  containsAny("list of headings", "heading"),
		Decide: fixed(taxonomy.MatchingHeadings, taxonomy.ConfidenceHigh, "Paragraphs are matched to a list of headings."),
	},
	{
		Name:   "matching-information",
		Match:  containsAny("which paragraph contains", "which section contains", "matching information"),
		Decide: fixed(taxonomy.MatchingInformation, taxonomy.ConfidenceHigh, "Asks which paragraph or section contains given information."),
	},
	{
		Name:   "matching-features",
		Match:  containsAny("list of people", "list of researchers", "matching features", "match each statement", "match each person"),
		Decide: fixed(taxonomy.MatchingFeatures, taxonomy.ConfidenceHigh, "Statements are matched to a list of people or features."),
	},
	{
		Name:   "matching-sentence-endings",
		Match:  containsAny("sentence endings", "correct ending"),
		Decide: fixed(taxonomy.MatchingSentenceEndings, taxonomy.ConfidenceHigh, "Sentence beginnings are matched to a list of endings."),
	},
	{
		Name:   "sentence-completion",
		Match:  containsAny("complete the sentences", "complete each sentence", "sentence completion"),
		Decide: fixed(taxonomy.SentenceCompletion, taxonomy.ConfidenceHigh, "Asks to complete sentences with words from the passage."),
	},
	{
		Name:   "summary-completion",
		Match:  containsAny("summary"),
		Decide: fixed(taxonomy.SummaryCompletion, taxonomy.ConfidenceHigh, "Asks to complete a summary of the passage."),
	},
	{
		Name:   "note-completion",
		Match:  containsAny("complete the notes"),
		Decide: fixed(taxonomy.NoteCompletion, taxonomy.ConfidenceHigh, "Asks to complete notes on the passage."),
	},
	{
		Name:   "table-completion",
		Match:  containsAny("complete the table"),
		Decide: fixed(taxonomy.TableCompletion, taxonomy.ConfidenceHigh, "Asks to complete a table."),
	},
	{
		Name:   "flow-chart-completion",
		Match:  containsAny("flow-chart", "flow chart", "flowchart"),
		Decide: fixed(taxonomy.FlowChartCompletion, taxonomy.ConfidenceHigh, "Asks to complete a flow-chart."),
	},
	{
		Name:   "diagram-label-completion",
		Match:  containsAny("label the diagram", "label the map", "diagram"),
		Decide: fixed(taxonomy.DiagramLabelCompletion, taxonomy.ConfidenceHigh, "Asks to label a diagram."),
	},
	{
		Name:   "short-answer",
		Match:  containsAny("answer the questions", "short answer", "short-answer"),
		Decide: fixed(taxonomy.ShortAnswer, taxonomy.ConfidenceHigh, "Asks for short answers to questions."),
	},
	{
		Name: "multiple-choice",
		Match: func(in *Input) bool {
			return containsAny("choose two", "choose three", "choose the correct letter", "choose the correct answer")(in) ||
				optionLineRe.MatchString(in.Lower) ||
				letterOptionRe.MatchString(in.Lower)
		},
		Decide: func(in *Input) Verdict {
			if containsAny("choose two", "choose three")(in) {
				return Verdict{
					ItemType:   taxonomy.MultipleChoiceMulti,
					Confidence: taxonomy.ConfidenceHigh,
					Reason:     "Multiple choice asking for more than one answer (choose two/three).",
				}
			}
			return Verdict{
				ItemType:   taxonomy.MultipleChoice,
				Confidence: taxonomy.ConfidenceHigh,
				Reason:     "Lettered options A-D with a single answer.",
			}
		},
	},
	{
		Name: "generic-completion",
		Match: func(in *Input) bool {
			return strings.Contains(in.Lower, "complete") || taxonomy.BlankMarker.MatchString(in.Content)
		},
		Decide: fixed(taxonomy.GeneralCompletion, taxonomy.ConfidenceMedium, "Completion instruction or blank markers without a specific completion format."),
	},
	{
		Name:   "fallback",
		Match:  always,
		Decide: fixed(taxonomy.MultipleChoice, taxonomy.ConfidenceLow, reviewFallback),
	},
}
