package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "one\r\ntwo\rthree", "one\ntwo\nthree"},
		{"nbsp", "no\u00a0more than two words", "no more than two words"},
		{"trailing space", "one  \ntwo\t", "one\ntwo"},
		{"blank runs", "one\n\n\n\ntwo", "one\n\ntwo"},
		{"outer space", "\n\n  one\n\n", "one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraphs and list",
			in:   "<p>Choose the correct letter.</p><ol><li>One</li><li>Two</li></ol>",
			want: "Choose the correct letter.\n- One\n- Two",
		},
		{
			name: "inline markup",
			in:   "<p>The <b>bar</b> chart below</p>",
			want: "The bar chart below",
		},
		{
			name: "line break",
			in:   "line one<br>line two",
			want: "line one\nline two",
		},
		{
			name: "entities",
			in:   "<p>Caf&eacute; &amp; bar</p>",
			want: "Café & bar",
		},
		{
			name: "script dropped",
			in:   "<p>Hello</p><script>alert(1)</script>",
			want: "Hello",
		},
		{
			name: "table rows",
			in:   "<table><tr><th>Name</th><th>Role</th></tr><tr><td>Alice</td><td>____</td></tr></table>",
			want: "| Name | Role |\n| Alice | ____ |",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := HTML(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContent(t *testing.T) {
	got, err := Content("<p>a</p><p>b</p>", true)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)

	got, err = Content("<p>a</p>", false)
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p>", got)
}
