package theme

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/itemizer/internal/classify"
	"github.com/abhisek/itemizer/internal/extract"
	"github.com/abhisek/itemizer/internal/store"
	"github.com/abhisek/itemizer/internal/taxonomy"
)

// passagePreview is the number of runes of the passage shown in a card.
const passagePreview = 80

// ConfidenceStyle returns the style for a confidence level. Low uses the
// warning style.
func ConfidenceStyle(c taxonomy.Confidence) lipgloss.Style {
	switch c {
	case taxonomy.ConfidenceHigh:
		return High
	case taxonomy.ConfidenceMedium:
		return Medium
	default:
		return Low
	}
}

// StatusStyle returns the style for a review status.
func StatusStyle(s store.Status) lipgloss.Style {
	switch s {
	case store.StatusApproved:
		return High
	case store.StatusRejected:
		return Failed
	default:
		return Low
	}
}

func field(label, value string) string {
	return Label.Render(label) + value
}

// RenderResult renders a classification and its extracted content as a
// card for the terminal.
func RenderResult(r *classify.Result, c *extract.Content) string {
	var b strings.Builder

	b.WriteString(Title.Render(r.SectionPath()))
	b.WriteString("\n\n")
	b.WriteString(field("Skill", Body.Render(string(r.Skill))) + "\n")
	b.WriteString(field("Module", Body.Render(string(r.Module))) + "\n")
	b.WriteString(field("Confidence", ConfidenceStyle(r.Confidence).Render(string(r.Confidence))) + "\n")
	b.WriteString(field("Rule", Hint.Render(r.Rule)) + "\n")
	b.WriteString(field("Reason", Body.Render(r.Reason)) + "\n")
	if r.NeedsReview() {
		b.WriteString("\n" + Low.Render("! Needs review before it is stored as final.") + "\n")
	}

	if c != nil {
		if s := renderContent(c); s != "" {
			b.WriteString("\n" + s)
		}
	}
	return Card.Render(strings.TrimRight(b.String(), "\n"))
}

func renderContent(c *extract.Content) string {
	var b strings.Builder

	if c.Instructions != "" {
		b.WriteString(field("Instructions", Body.Render(c.Instructions)) + "\n")
	}
	if c.WordLimit != nil {
		b.WriteString(field("Word limit", Body.Render(c.WordLimit.String())) + "\n")
	}
	if c.Passage != "" {
		b.WriteString(field("Passage", Hint.Render(preview(c.Passage))) + "\n")
	}
	if c.MinWords > 0 {
		b.WriteString(field("Min words", Body.Render(fmt.Sprint(c.MinWords))) + "\n")
	}
	if c.TimeMinutes > 0 {
		b.WriteString(field("Time", Body.Render(fmt.Sprintf("%d min", c.TimeMinutes))) + "\n")
	}

	if len(c.Questions) > 0 {
		b.WriteString("\n" + Heading.Render(fmt.Sprintf("Questions (%d)", len(c.Questions))) + "\n")
		for _, q := range c.Questions {
			b.WriteString(fmt.Sprintf("%d. %s\n", q.Number, q.Text))
			for _, o := range q.Options {
				if o.Label == o.Text {
					continue
				}
				b.WriteString(Hint.Render(fmt.Sprintf("   %s. %s", o.Label, o.Text)) + "\n")
			}
		}
	}
	if len(c.Blanks) > 0 {
		b.WriteString("\n" + Heading.Render(fmt.Sprintf("Blanks (%d)", len(c.Blanks))) + "\n")
		for _, bl := range c.Blanks {
			b.WriteString(fmt.Sprintf("%d. %s\n", bl.Number, bl.Context))
		}
	}
	if c.Table != nil {
		b.WriteString("\n" + Heading.Render(fmt.Sprintf("Table (%d rows, %d blanks)", len(c.Table.Rows), len(c.Table.Blanks))) + "\n")
		b.WriteString(strings.Join(c.Table.Headers, " | ") + "\n")
	}
	if len(c.Options) > 0 {
		b.WriteString("\n" + Heading.Render(fmt.Sprintf("Options (%d)", len(c.Options))) + "\n")
		for _, o := range c.Options {
			b.WriteString(fmt.Sprintf("%s. %s\n", o.Label, o.Text))
		}
	}
	if len(c.CuePoints) > 0 {
		b.WriteString("\n" + Heading.Render("Cue card") + "\n")
		for _, p := range c.CuePoints {
			b.WriteString("- " + p + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func preview(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= passagePreview {
		return s
	}
	return string(r[:passagePreview-3]) + "..."
}
