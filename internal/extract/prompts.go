package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	minWordsRe = regexp.MustCompile(`(?i)at least (\d+) words`)
	timeRe     = regexp.MustCompile(`(?i)spend about (\d+) minutes`)
	bulletRe   = regexp.MustCompile(`^[-•*–]\s*(.+)`)
)

// parseWritingLimits reads the minimum word count and suggested time of a
// writing prompt. Missing values are 0.
func parseWritingLimits(content string) (minWords, minutes int) {
	if m := minWordsRe.FindStringSubmatch(content); m != nil {
		minWords, _ = strconv.Atoi(m[1])
	}
	if m := timeRe.FindStringSubmatch(content); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}
	return minWords, minutes
}

// parseCuePoints returns the bullet lines of a speaking cue card.
func parseCuePoints(lines []string) []string {
	var points []string
	for _, line := range lines {
		if m := bulletRe.FindStringSubmatch(line); m != nil {
			points = append(points, strings.TrimSpace(m[1]))
		}
	}
	return points
}
