package extract

import (
	"errors"
	"strings"

	"github.com/abhisek/itemizer/internal/classify"
	"github.com/abhisek/itemizer/internal/taxonomy"
)

// ErrNoResult is returned by Extract when no classification is given.
var ErrNoResult = errors.New("no classification result")

// subParser fills the type-specific part of Content. It is chosen by the
// first key found as a substring of the item type.
type subParser struct {
	name  string
	keys  []string
	parse func(c *Content, lines []string, itemType taxonomy.ItemType)
}

// subParsers in dispatch order. Table precedes Completion so that
// "Table Completion" yields a table rather than a flat list of blanks;
// a table task pasted without pipe rows falls back to completion.
var subParsers = []subParser{
	{
		name: "multiple-choice",
		keys: []string{"Multiple Choice"},
		parse: func(c *Content, lines []string, _ taxonomy.ItemType) {
			c.Questions = parseMultipleChoice(lines)
		},
	},
	{
		name: "statements",
		keys: []string{"True", "Yes"},
		parse: func(c *Content, lines []string, t taxonomy.ItemType) {
			labels := trueFalseOptions
			if strings.Contains(string(t), "Yes") {
				labels = yesNoOptions
			}
			c.Questions = parseStatements(lines, labels)
		},
	},
	{
		name: "table",
		keys: []string{"Table"},
		parse: func(c *Content, lines []string, _ taxonomy.ItemType) {
			if c.Table = parseTable(lines); c.Table == nil {
				c.Blanks, c.Questions = parseCompletion(lines)
			}
		},
	},
	{
		name: "completion",
		keys: []string{"Completion"},
		parse: func(c *Content, lines []string, _ taxonomy.ItemType) {
			c.Blanks, c.Questions = parseCompletion(lines)
		},
	},
	{
		name: "matching",
		keys: []string{"Matching", "Labelling"},
		parse: func(c *Content, lines []string, _ taxonomy.ItemType) {
			c.Questions, c.Options = parseMatching(lines)
		},
	},
	{
		name: "short-answer",
		keys: []string{"Short-answer", "Short Answer"},
		parse: func(c *Content, lines []string, _ taxonomy.ItemType) {
			c.Questions = parseShortAnswer(lines, c.WordLimit)
		},
	},
}

// parserFor returns the sub-parser for t, or nil for unmatched types.
func parserFor(t taxonomy.ItemType) *subParser {
	for i := range subParsers {
		for _, k := range subParsers[i].keys {
			if strings.Contains(string(t), k) {
				return &subParsers[i]
			}
		}
	}
	return nil
}

// Extractor produces Content from raw content and its classification.
// It holds only configuration and is safe for concurrent use.
type Extractor struct {
	cfg Config
}

// New creates an Extractor. Zero config fields fall back to defaults.
func New(cfg Config) *Extractor {
	return &Extractor{cfg: cfg.withDefaults()}
}

var defaultExtractor = New(DefaultConfig())

// Extract runs the default extractor against a classification result.
func Extract(content string, r *classify.Result) (*Content, error) {
	return defaultExtractor.ExtractResult(content, r)
}

// ExtractResult extracts using the skill and item type of r.
func (e *Extractor) ExtractResult(content string, r *classify.Result) (*Content, error) {
	if r == nil {
		return nil, ErrNoResult
	}
	return e.Extract(content, r.Skill, r.ItemType)
}

// Extract runs shared preprocessing and then the one sub-parser chosen by
// itemType. Fields that do not apply to the skill or item type are left
// zero. The only error is classify.ErrEmptyInput.
func (e *Extractor) Extract(content string, skill taxonomy.Skill, itemType taxonomy.ItemType) (*Content, error) {
	if strings.TrimSpace(content) == "" {
		return nil, classify.ErrEmptyInput
	}

	lines := Lines(content)
	c := &Content{
		Questions: []Question{},
		Blanks:    []Blank{},
		Options:   []MatchingChoice{},
	}
	c.WordLimit = ParseWordLimit(content)
	c.Instructions = findInstructions(lines, e.cfg.InstructionMaxLen)

	switch skill {
	case taxonomy.SkillReading, taxonomy.SkillListening:
		c.Passage = findPassage(lines, e.cfg.PassageWindow)
		if p := parserFor(itemType); p != nil {
			p.parse(c, lines, itemType)
		}
	case taxonomy.SkillWriting:
		c.MinWords, c.TimeMinutes = parseWritingLimits(content)
		if itemType == taxonomy.Task1Table {
			c.Table = parseTable(lines)
		}
	case taxonomy.SkillSpeaking:
		c.CuePoints = parseCuePoints(lines)
	}
	return c, nil
}
