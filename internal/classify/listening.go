package classify

import (
	"regexp"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

var (
	formRe         = regexp.MustCompile(`\bform\b`)
	labelTargetRe  = regexp.MustCompile(`\b(maps?|plans?|diagrams?)\b`)
	letterOptionRe = regexp.MustCompile(`[a-d]\)`)
)

var listeningRules = []Rule{
	{
		Name: "form-completion",
		Match: func(in *Input) bool {
			return formRe.MatchString(in.Lower) && containsAll(in.Lower, "complete")
		},
		Decide: fixed(taxonomy.FormCompletion, taxonomy.ConfidenceHigh, "Asks to complete a form while listening."),
	},
	{
		Name: "note-completion",
		Match: func(in *Input) bool {
			return containsAll(in.Lower, "notes", "complete")
		},
		Decide: fixed(taxonomy.NoteCompletion, taxonomy.ConfidenceHigh, "Asks to complete notes while listening."),
	},
	{
		Name:   "labelling",
		Match:  matchRe(labelTargetRe),
		Decide: fixed(taxonomy.MapLabelling, taxonomy.ConfidenceHigh, "Refers to a plan, map or diagram to be labelled."),
	},
	{
		Name: "multiple-choice",
		Match: func(in *Input) bool {
			return letterOptionRe.MatchString(in.Lower) || containsAny("choose", "select")(in)
		},
		Decide: fixed(taxonomy.MultipleChoice, taxonomy.ConfidenceHigh, "Lettered options or choose/select instruction."),
	},
	{
		Name:   "matching",
		Match:  containsAny("match"),
		Decide: fixed(taxonomy.Matching, taxonomy.ConfidenceHigh, "Asks to match items with a list of options."),
	},
	{
		Name:   "sentence-completion",
		Match:  always,
		Decide: fixed(taxonomy.SentenceCompletion, taxonomy.ConfidenceMedium, "Listening content without a specific format cue; treated as sentence completion."),
	},
}
