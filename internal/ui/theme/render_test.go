package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/itemizer/internal/classify"
	"github.com/abhisek/itemizer/internal/extract"
	"github.com/abhisek/itemizer/internal/store"
	"github.com/abhisek/itemizer/internal/taxonomy"
)

func TestConfidenceStyle(t *testing.T) {
	assert.Equal(t, Low.Render("x"), ConfidenceStyle(taxonomy.ConfidenceLow).Render("x"))
	assert.Equal(t, High.Render("x"), ConfidenceStyle(taxonomy.ConfidenceHigh).Render("x"))
	assert.Equal(t, Medium.Render("x"), ConfidenceStyle(taxonomy.ConfidenceMedium).Render("x"))
}

func TestStatusStyle(t *testing.T) {
	assert.Equal(t, Failed.Render("x"), StatusStyle(store.StatusRejected).Render("x"))
	assert.Equal(t, Low.Render("x"), StatusStyle(store.StatusPendingReview).Render("x"))
}

func TestRenderResult(t *testing.T) {
	content := "Choose the correct letter.\n1. What is the main idea?\nA. Cats\nB. Dogs"
	r, err := classify.Classify(content)
	require.NoError(t, err)
	c, err := extract.Extract(content, r)
	require.NoError(t, err)

	out := RenderResult(r, c)
	assert.Contains(t, out, r.SectionPath())
	assert.Contains(t, out, "Choose the correct letter.")
	assert.Contains(t, out, "1. What is the main idea?")
	assert.Contains(t, out, "A. Cats")
	assert.NotContains(t, out, "Needs review")
}

func TestRenderResult_LowConfidence(t *testing.T) {
	r, err := classify.Classify("The history of glass making spans several thousand years.")
	require.NoError(t, err)

	out := RenderResult(r, nil)
	assert.Contains(t, out, "Needs review")
	assert.Contains(t, out, "Low")
}

func TestRenderResult_CueCard(t *testing.T) {
	content := "Describe a mentor. You should say:\n- who they were\n- what they taught"
	r, err := classify.Classify(content)
	require.NoError(t, err)
	c, err := extract.Extract(content, r)
	require.NoError(t, err)

	out := RenderResult(r, c)
	assert.Contains(t, out, "Cue card")
	assert.Contains(t, out, "- who they were")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "a b", preview("a\nb"))
	long := strings.Repeat("x", 200)
	p := preview(long)
	assert.Equal(t, passagePreview, len([]rune(p)))
	assert.True(t, strings.HasSuffix(p, "..."))
}
