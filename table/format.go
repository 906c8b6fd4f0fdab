package table

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// String renders the table as a left-aligned text grid with a header row.
func (t *Table) String() string {
	names := t.ColumnNames()
	widths := make([]int, len(names))
	cells := make([][]string, t.rows)
	for c, n := range names {
		widths[c] = utf8.RuneCountInString(n)
	}
	for r := 0; r < t.rows; r++ {
		cells[r] = make([]string, len(names))
		for c, col := range t.cols {
			s := FormatValue(col.Values[r])
			if col.Values[r] == nil {
				s = "<nil>"
			}
			cells[r][c] = s
			if w := utf8.RuneCountInString(s); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var sb strings.Builder
	writeLine := func(vals []string) {
		for c, v := range vals {
			if c > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(v)
			if c < len(vals)-1 {
				sb.WriteString(strings.Repeat(" ", widths[c]-utf8.RuneCountInString(v)))
			}
		}
		sb.WriteString("\n")
	}
	writeLine(names)
	for _, row := range cells {
		writeLine(row)
	}
	return sb.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
