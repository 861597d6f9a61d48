package google

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	ports "moneymanager/internal/sheets"

	gsheet "google.golang.org/api/sheets/v4"
)

// Table is an open handle to one user's spreadsheet.
type Table struct {
	client *Client
	id     string
	name   string
}

var _ ports.Ledger = (*Table)(nil)

func (t *Table) ID() string   { return t.id }
func (t *Table) Name() string { return t.name }

// Append adds one row after the last row of the first sheet. The price is
// written as a number so sheet-side sums keep working.
func (t *Table) Append(ctx context.Context, r ports.Row) error {
	vr := &gsheet.ValueRange{Values: [][]any{{r.Date, r.Item, r.Price, r.Category}}}
	_, err := t.client.sheets.Spreadsheets.Values.Append(t.id, "A:D", vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("append to %q: %w", t.name, err)
	}
	return nil
}

// Rows reads the whole table and normalizes it into the canonical schema.
func (t *Table) Rows(ctx context.Context) ([]ports.Row, error) {
	resp, err := t.client.sheets.Spreadsheets.Values.Get(t.id, "A:D").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read %q: %w", t.name, err)
	}
	return ports.RowsFromValues(toStringMatrix(resp.Values)), nil
}

func toStringMatrix(values [][]any) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = cellString(v)
		}
		out[i] = cells
	}
	return out
}

// cellString renders an API cell value. Sheets returns numeric cells as
// float64 when unformatted; format whole numbers without an exponent or
// trailing decimals.
func cellString(v any) string {
	switch n := v.(type) {
	case string:
		return strings.TrimSpace(n)
	case float64:
		if n == float64(int64(n)) {
			return strconv.FormatInt(int64(n), 10)
		}
		return strconv.FormatFloat(n, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
