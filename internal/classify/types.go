package classify

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

// ErrEmptyInput is returned when the content is empty or whitespace-only.
var ErrEmptyInput = errors.New("content is empty")

// Result is the classification of one block of exam content.
type Result struct {
	Skill           taxonomy.Skill      `json:"skill"`
	Module          taxonomy.Module     `json:"module"`
	ItemType        taxonomy.ItemType   `json:"item_type"`
	Category        taxonomy.Category   `json:"category"`
	Confidence      taxonomy.Confidence `json:"confidence"`
	SkillConfidence taxonomy.Confidence `json:"skill_confidence"`
	Reason          string              `json:"reason"`
	Rule            string              `json:"rule"` // Name of the type rule that matched
}

// SectionPath renders the result as "skill → category → item type".
func (r *Result) SectionPath() string {
	return fmt.Sprintf("%s → %s → %s", r.Skill, r.Category, r.ItemType)
}

// NeedsReview reports whether the result came from the terminal catch-all
// and must be confirmed by a person before it is stored as final.
func (r *Result) NeedsReview() bool {
	return r.Confidence == taxonomy.ConfidenceLow
}

// Input is the content a rule inspects. Lower is computed once per
// classification and shared by every rule.
type Input struct {
	Content string
	Lower   string
}

// NewInput prepares content for rule evaluation.
func NewInput(content string) *Input {
	return &Input{Content: content, Lower: strings.ToLower(content)}
}

// Verdict is what a rule decides once its predicate has matched.
type Verdict struct {
	ItemType   taxonomy.ItemType
	Confidence taxonomy.Confidence
	Reason     string
}

// TypeMatch is the outcome of the type cascade. Category is always looked
// up from the item type, never chosen by a rule.
type TypeMatch struct {
	ItemType   taxonomy.ItemType
	Category   taxonomy.Category
	Confidence taxonomy.Confidence
	Reason     string
	Rule       string
}
