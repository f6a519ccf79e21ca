// Package normalize turns pasted content into the plain, line-oriented
// text the classifier and extractor expect.
package normalize

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// policy drops scripts, styles and unknown markup before the DOM walk.
var policy = bluemonday.UGCPolicy()

var blankRunRe = regexp.MustCompile(`\n{3,}`)

// Content normalizes s, treating it as HTML when isHTML is set.
func Content(s string, isHTML bool) (string, error) {
	if isHTML {
		return HTML(s)
	}
	return Text(s), nil
}

// Text normalizes plain text: line endings become "\n", non-breaking
// spaces become spaces, trailing whitespace is trimmed from every line and
// runs of blank lines collapse to one.
func Text(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.ReplaceAll(s, "\u00a0", " ")

	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	s = strings.Join(lines, "\n")
	s = blankRunRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// HTML sanitizes s and flattens it to text. Block elements end a line,
// list items become "- " bullets and table rows become pipe-delimited
// rows ("| a | b |"). Entities are decoded.
func HTML(s string) (string, error) {
	clean := policy.Sanitize(s)
	doc, err := html.Parse(strings.NewReader(clean))
	if err != nil {
		return "", err
	}

	r := &renderer{}
	r.walk(doc)
	r.newline()
	return strings.Join(r.lines, "\n"), nil
}

type renderer struct {
	lines        []string
	line         strings.Builder
	pendingSpace bool
}

func (r *renderer) newline() {
	if l := strings.TrimSpace(r.line.String()); l != "" {
		r.lines = append(r.lines, l)
	}
	r.line.Reset()
	r.pendingSpace = false
}

func (r *renderer) raw(s string) {
	r.line.WriteString(s)
	r.pendingSpace = false
}

func (r *renderer) text(s string) {
	if s == "" {
		return
	}
	if strings.TrimLeftFunc(s, unicode.IsSpace) != s {
		r.pendingSpace = true
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return
	}
	if r.pendingSpace && r.line.Len() > 0 && !strings.HasSuffix(r.line.String(), " ") {
		r.line.WriteByte(' ')
	}
	r.line.WriteString(strings.Join(words, " "))
	r.pendingSpace = strings.TrimRightFunc(s, unicode.IsSpace) != s
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Section, atom.Article, atom.Blockquote, atom.Pre,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Dl, atom.Dt, atom.Dd, atom.Table, atom.Hr:
		return true
	}
	return false
}

func (r *renderer) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		r.text(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Noscript:
			return
		case atom.Br:
			r.newline()
			return
		case atom.Li:
			r.newline()
			r.raw("- ")
			r.children(n)
			r.newline()
			return
		case atom.Tr:
			r.newline()
			r.raw("|")
			r.children(n)
			r.newline()
			return
		case atom.Td, atom.Th:
			r.raw(" ")
			r.children(n)
			r.raw(" |")
			return
		}
		if isBlock(n.DataAtom) {
			r.newline()
			r.children(n)
			r.newline()
			return
		}
	}
	r.children(n)
}

func (r *renderer) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		r.walk(c)
	}
}
