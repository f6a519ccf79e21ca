package classify

import (
	"regexp"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

var (
	task1TokenRe = regexp.MustCompile(`\b(charts?|graphs?|tables?|diagrams?|process|maps?)\b`)
	letterRe     = regexp.MustCompile(`\bletters?\b`)
	tableRe      = regexp.MustCompile(`\btables?\b`)
	processRe    = regexp.MustCompile(`\b(process|diagrams?)\b`)
	mapRe        = regexp.MustCompile(`\bmaps?\b`)
	problemRe    = regexp.MustCompile(`\b(problems?|causes?)\b`)
	solutionRe   = regexp.MustCompile(`\b(solutions?|measures?)\b`)
)

func matchRe(re *regexp.Regexp) func(*Input) bool {
	return func(in *Input) bool { return re.MatchString(in.Lower) }
}

// writingRules decides Task 1 Academic, Task 1 General letter or Task 2.
var writingRules = []Rule{
	{
		Name:   "task1-academic",
		Match:  matchRe(task1TokenRe),
		Decide: refine(task1Rules),
	},
	{
		Name:   "task1-letter",
		Match:  matchRe(letterRe),
		Decide: refine(letterRules),
	},
	{
		Name:   "task2-essay",
		Match:  always,
		Decide: refine(task2Rules),
	},
}

// refine runs a nested cascade whose last rule always matches.
func refine(rules []Rule) func(*Input) Verdict {
	return func(in *Input) Verdict {
		m, _ := RunRules(rules, in)
		return Verdict{ItemType: m.ItemType, Confidence: m.Confidence, Reason: m.Reason}
	}
}

var task1Rules = []Rule{
	{
		Name:   "bar-chart",
		Match:  containsAny("bar chart", "bar graph"),
		Decide: fixed(taxonomy.Task1BarChart, taxonomy.ConfidenceHigh, "Task 1 prompt describing a bar chart."),
	},
	{
		Name:   "line-graph",
		Match:  containsAny("line graph", "line chart"),
		Decide: fixed(taxonomy.Task1LineGraph, taxonomy.ConfidenceHigh, "Task 1 prompt describing a line graph."),
	},
	{
		Name:   "pie-chart",
		Match:  containsAny("pie chart"),
		Decide: fixed(taxonomy.Task1PieChart, taxonomy.ConfidenceHigh, "Task 1 prompt describing a pie chart."),
	},
	{
		Name:   "table",
		Match:  matchRe(tableRe),
		Decide: fixed(taxonomy.Task1Table, taxonomy.ConfidenceHigh, "Task 1 prompt describing a table of data."),
	},
	{
		Name:   "process",
		Match:  matchRe(processRe),
		Decide: fixed(taxonomy.Task1Process, taxonomy.ConfidenceHigh, "Task 1 prompt describing a process or diagram."),
	},
	{
		Name:   "map",
		Match:  matchRe(mapRe),
		Decide: fixed(taxonomy.Task1Map, taxonomy.ConfidenceHigh, "Task 1 prompt comparing maps."),
	},
	{
		Name:   "mixed",
		Match:  always,
		Decide: fixed(taxonomy.Task1Mixed, taxonomy.ConfidenceMedium, "Task 1 prompt mentions charts or graphs but no specific chart type."),
	},
}

var letterRules = []Rule{
	{
		Name:   "informal",
		Match:  containsAny("friend", "informal"),
		Decide: fixed(taxonomy.Task1InformalLetter, taxonomy.ConfidenceHigh, "Letter addressed to a friend or marked informal."),
	},
	{
		Name:   "formal",
		Match:  always,
		Decide: fixed(taxonomy.Task1FormalLetter, taxonomy.ConfidenceHigh, "Letter task with formal salutation cues."),
	},
}

var task2Rules = []Rule{
	{
		Name: "advantages-disadvantages",
		Match: func(in *Input) bool {
			return containsAll(in.Lower, "advantages", "disadvantages") || containsAny("outweigh")(in)
		},
		Decide: fixed(taxonomy.Task2AdvDisadv, taxonomy.ConfidenceHigh, "Essay asks to weigh advantages against disadvantages."),
	},
	{
		Name:   "discussion",
		Match:  containsAny("discuss both", "both views", "both sides"),
		Decide: fixed(taxonomy.Task2Discussion, taxonomy.ConfidenceHigh, "Essay asks to discuss both views."),
	},
	{
		Name: "problem-solution",
		Match: func(in *Input) bool {
			return problemRe.MatchString(in.Lower) && solutionRe.MatchString(in.Lower)
		},
		Decide: fixed(taxonomy.Task2ProblemSol, taxonomy.ConfidenceHigh, "Essay asks for problems or causes and their solutions."),
	},
	{
		Name:   "opinion",
		Match:  containsAny("to what extent", "agree or disagree", "do you agree", "opinion"),
		Decide: fixed(taxonomy.Task2Opinion, taxonomy.ConfidenceHigh, "Essay asks for the writer's opinion (agree/disagree, to what extent)."),
	},
	{
		Name:   "essay",
		Match:  always,
		Decide: fixed(taxonomy.Task2Essay, taxonomy.ConfidenceMedium, "Writing prompt without chart or letter cues; treated as a Task 2 essay."),
	},
}
