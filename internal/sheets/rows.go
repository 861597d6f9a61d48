package sheets

import (
	"strconv"
	"strings"
)

// Legacy tables created before the schema was fixed spell the date column
// "Time" or "Date" and capitalize the other headers. dateAliases lists every
// spelling folded into the canonical date column, in lookup order.
var dateAliases = []string{"date", "time"}

// RowsFromValues converts a raw cell matrix, header row first, into the
// canonical Row schema. Columns are resolved by case-insensitive header name
// so legacy spellings keep working. Rows are read defensively: a missing or
// unparsable price becomes 0, a missing category "". The header row itself is
// excluded from the result.
func RowsFromValues(values [][]string) []Row {
	if len(values) < 2 {
		return nil
	}
	idx := headerIndex(values[0])
	dateCol := -1
	for _, alias := range dateAliases {
		if col, ok := idx[alias]; ok {
			dateCol = col
			break
		}
	}
	out := make([]Row, 0, len(values)-1)
	for _, cells := range values[1:] {
		if blankRow(cells) {
			continue
		}
		out = append(out, Row{
			Date:     cellAt(cells, dateCol),
			Item:     cellAt(cells, lookup(idx, "item")),
			Price:    parsePrice(cellAt(cells, lookup(idx, "price"))),
			Category: cellAt(cells, lookup(idx, "category")),
		})
	}
	return out
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	return idx
}

func lookup(idx map[string]int, name string) int {
	if col, ok := idx[name]; ok {
		return col
	}
	return -1
}

func cellAt(cells []string, col int) string {
	if col < 0 || col >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[col])
}

func blankRow(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// parsePrice reads a stored price cell. Whole numbers are the written format;
// a decimal value (sheet reformatting) is truncated toward zero. Anything
// else reads as 0.
func parsePrice(s string) int64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return int64(f)
	}
	return 0
}
