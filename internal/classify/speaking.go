package classify

import "github.com/abhisek/itemizer/internal/taxonomy"

var speakingRules = []Rule{
	{
		Name:   "part1",
		Match:  containsAny("part 1"),
		Decide: fixed(taxonomy.SpeakingPart1, taxonomy.ConfidenceHigh, "Explicit Part 1 marker: introduction and interview questions."),
	},
	{
		Name:   "part2",
		Match:  containsAny("part 2"),
		Decide: fixed(taxonomy.SpeakingPart2, taxonomy.ConfidenceHigh, "Explicit Part 2 marker: individual long turn."),
	},
	{
		Name:   "part3",
		Match:  containsAny("part 3"),
		Decide: fixed(taxonomy.SpeakingPart3, taxonomy.ConfidenceHigh, "Explicit Part 3 marker: two-way discussion."),
	},
	{
		Name:   "cue-card",
		Match:  containsAny("cue card", "you should say"),
		Decide: fixed(taxonomy.SpeakingPart2, taxonomy.ConfidenceHigh, "Cue card phrasing (\"you should say\") indicates a Part 2 long turn."),
	},
	{
		Name:   "default",
		Match:  always,
		Decide: fixed(taxonomy.SpeakingPart2, taxonomy.ConfidenceMedium, "Speaking content without a part marker; assumed Part 2."),
	},
}
