package extract

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	wordLimitRe       = regexp.MustCompile(`(?i)no more than (\w+) word`)
	passageMarkerRe   = regexp.MustCompile(`(?i)passage|read the following|text:|article:`)
	questionMarkerRe  = regexp.MustCompile(`(?i)question|choose|complete|match|answer`)
	numberedLineRe    = regexp.MustCompile(`^\d+[.)]`)
	questionLineRe    = regexp.MustCompile(`^Question \d+`)
	questionPrefixRe  = regexp.MustCompile(`^(?:\d+[.)]|Question \d+[.:)]?)\s*`)
	instructionVerbs  = []string{"choose", "complete", "match", "answer", "write", "describe"}
	wordLimitNumerals = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"1": 1, "2": 2, "3": 3, "4": 4, "5": 5,
	}
)

// Lines splits content into its non-empty logical lines, trimmed, in order.
func Lines(content string) []string {
	raw := strings.Split(content, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// ParseWordLimit finds a "no more than N words" phrase. Returns nil when
// the phrase is absent.
func ParseWordLimit(content string) *WordLimit {
	m := wordLimitRe.FindStringSubmatch(content)
	if m == nil {
		return nil
	}
	token := m[1]
	if n, ok := wordLimitNumerals[strings.ToLower(token)]; ok {
		return &WordLimit{Value: n, Raw: token}
	}
	return &WordLimit{Raw: token}
}

// findInstructions returns the first short line carrying an instructional
// verb, or "".
func findInstructions(lines []string, maxLen int) string {
	for _, l := range lines {
		if utf8.RuneCountInString(l) >= maxLen {
			continue
		}
		lower := strings.ToLower(l)
		for _, v := range instructionVerbs {
			if strings.Contains(lower, v) {
				return l
			}
		}
	}
	return ""
}

// findPassage returns the lines after the first passage marker, up to the
// next question marker or window lines when no marker follows.
func findPassage(lines []string, window int) string {
	start := -1
	for i, l := range lines {
		if passageMarkerRe.MatchString(l) {
			start = i + 1
			break
		}
	}
	if start < 0 || start >= len(lines) {
		return ""
	}

	end := -1
	for i := start; i < len(lines); i++ {
		if questionMarkerRe.MatchString(lines[i]) {
			end = i
			break
		}
	}
	if end < 0 {
		end = min(start+window, len(lines))
	}
	return strings.Join(lines[start:end], "\n")
}

func isNumbered(line string) bool {
	return numberedLineRe.MatchString(line)
}

func isQuestionStart(line string) bool {
	return numberedLineRe.MatchString(line) || questionLineRe.MatchString(line)
}

// stripNumber removes a leading "12." / "12)" / "Question 12" prefix.
func stripNumber(line string) string {
	return strings.TrimSpace(questionPrefixRe.ReplaceAllString(line, ""))
}
