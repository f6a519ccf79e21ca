package extract

import (
	"regexp"
	"strings"

	"github.com/abhisek/itemizer/internal/taxonomy"
)

var tableRuleRe = regexp.MustCompile(`[|+-]{3,}`)

// parseTable reads pipe-delimited lines. Separator rules such as "|---|"
// are skipped and empty cells are dropped, so column indices count only
// non-empty cells. Returns nil when the content has no pipe rows.
func parseTable(lines []string) *Table {
	var table *Table

	for _, line := range lines {
		if !strings.Contains(line, "|") || tableRuleRe.MatchString(line) {
			continue
		}
		cells := splitRow(line)
		if len(cells) == 0 {
			continue
		}
		if table == nil {
			table = &Table{Headers: cells, Rows: [][]Cell{}, Blanks: []TableBlank{}}
			continue
		}

		rowIdx := len(table.Rows)
		row := make([]Cell, len(cells))
		for col, v := range cells {
			row[col] = Cell{Value: v, IsBlank: taxonomy.BlankMarker.MatchString(v)}
			if !row[col].IsBlank {
				continue
			}
			header := ""
			if col < len(table.Headers) {
				header = table.Headers[col]
			}
			table.Blanks = append(table.Blanks, TableBlank{Row: rowIdx, Column: col, Header: header})
		}
		table.Rows = append(table.Rows, row)
	}
	return table
}

func splitRow(line string) []string {
	parts := strings.Split(line, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			cells = append(cells, p)
		}
	}
	return cells
}
