package taxonomy

import (
	"regexp"
	"strings"
)

// IndicatorSet is a fixed list of lower-case trigger phrases. A set matches
// content when any phrase occurs in it as a substring.
type IndicatorSet []string

// MatchIn reports whether any phrase occurs in lower, which must already be
// lower-cased.
func (s IndicatorSet) MatchIn(lower string) bool {
	return s.FirstIn(lower) != ""
}

// FirstIn returns the first phrase of the set found in lower, or "".
func (s IndicatorSet) FirstIn(lower string) string {
	for _, p := range s {
		if strings.Contains(lower, p) {
			return p
		}
	}
	return ""
}

// Skill indicator sets. Writing prompts often also contain words that
// trigger the speaking or listening sets, so these are consulted in
// AllSkills order.
var (
	WritingIndicators = IndicatorSet{
		"write at least",
		"summarise the information",
		"summarize the information",
		"you should spend about",
		"essay",
		"write a letter",
		"dear sir",
		"task 1",
		"task 2",
		"to what extent do you agree",
		"give reasons for your answer",
		"the graph below show",
		"the graphs below show",
		"the chart below show",
		"the charts below show",
		"the table below show",
		"the diagram below show",
		"the diagrams below show",
		"the map below show",
		"the maps below show",
	}

	SpeakingIndicators = IndicatorSet{
		"cue card",
		"you should say",
		"part 1",
		"part 2",
		"part 3",
		"speaking test",
		"talk about",
		"describe a ",
		"let's talk about",
		"let's move on to",
	}

	ListeningIndicators = IndicatorSet{
		"listen",
		"audio",
		"recording",
		"you will hear",
		"section 1",
		"section 2",
		"section 3",
		"section 4",
	}
)

// GeneralTrainingMarkers flag Reading and Listening content from the
// General Training track.
var GeneralTrainingMarkers = IndicatorSet{
	"general training",
	"general test",
}

// BlankMarker matches a fill-in gap: two or more underscores, a
// parenthesised number, or three or more dots.
var BlankMarker = regexp.MustCompile(`_{2,}|\(\d+\)|\.{3,}`)
