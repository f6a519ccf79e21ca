package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// QuestionKind tags how a question was found.
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple-choice"
	KindStatement      QuestionKind = "statement"
	KindCompletion     QuestionKind = "completion"
	KindMatchingItem   QuestionKind = "matching-item"
	KindShortAnswer    QuestionKind = "short-answer"
)

// BlankKind is the only kind of blank the detector produces.
const BlankKind = "fill-in"

// Content is the structured payload extracted from one block of content.
// Questions, Blanks and Options are never nil; an empty slice means
// nothing was detected.
type Content struct {
	Instructions string           `json:"instructions,omitempty"`
	WordLimit    *WordLimit       `json:"word_limit,omitempty"`
	Passage      string           `json:"passage,omitempty"`
	Questions    []Question       `json:"questions"`
	Blanks       []Blank          `json:"blanks"`
	Table        *Table           `json:"table,omitempty"`
	Options      []MatchingChoice `json:"options"`

	MinWords    int      `json:"min_words,omitempty"`    // Writing only
	TimeMinutes int      `json:"time_minutes,omitempty"` // Writing only
	CuePoints   []string `json:"cue_points,omitempty"`   // Speaking only
}

// Question is one numbered item. Number is 1-based and contiguous within
// a single extraction, independent of the number printed in the content.
type Question struct {
	Number    int          `json:"number"`
	Kind      QuestionKind `json:"kind"`
	Text      string       `json:"text"`
	Options   []Option     `json:"options,omitempty"`
	WordLimit *WordLimit   `json:"word_limit,omitempty"`
}

// Option is an answer choice attached to a question.
type Option struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Blank is a fill-in gap. Position is the rune offset of the marker in
// Context, the line it was found on.
type Blank struct {
	Number   int    `json:"number"`
	Context  string `json:"context"`
	Position int    `json:"position"`
	Kind     string `json:"kind"`
}

// Table is a pipe-delimited table. The first pipe row becomes Headers.
type Table struct {
	Headers []string     `json:"headers"`
	Rows    [][]Cell     `json:"rows"`
	Blanks  []TableBlank `json:"blanks"`
}

// Cell is one table cell.
type Cell struct {
	Value   string `json:"value"`
	IsBlank bool   `json:"is_blank"`
}

// TableBlank locates a blank cell. Row indexes Table.Rows and Column
// indexes the row's cells, both 0-based.
type TableBlank struct {
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Header string `json:"header"`
}

// MatchingChoice is one entry of a matching list (A-Z or i-xii).
type MatchingChoice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// WordLimit is the N of a "no more than N words" instruction. Only the
// spelled numbers one to five and the digits 1 to 5 are mapped; any other
// token is kept verbatim in Raw with Value left at 0.
type WordLimit struct {
	Value int
	Raw   string
}

// Numeric reports whether the token was mapped to a number.
func (w WordLimit) Numeric() bool { return w.Value > 0 }

func (w WordLimit) String() string {
	if w.Numeric() {
		return strconv.Itoa(w.Value)
	}
	return w.Raw
}

// MarshalJSON encodes a number when mapped and the raw token otherwise.
func (w WordLimit) MarshalJSON() ([]byte, error) {
	if w.Numeric() {
		return json.Marshal(w.Value)
	}
	return json.Marshal(w.Raw)
}

func (w *WordLimit) UnmarshalJSON(b []byte) error {
	var n int
	if err := json.Unmarshal(b, &n); err == nil {
		*w = WordLimit{Value: n, Raw: strconv.Itoa(n)}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("word limit must be a number or a string: %w", err)
	}
	*w = WordLimit{Raw: s}
	return nil
}
