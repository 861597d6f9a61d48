package ledger

import (
	"context"
	"strconv"
	"strings"
	"time"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

// History answers filtered queries over a ledger's entries. Every query is a
// stateless, idempotent read over the full snapshot at call time; results
// preserve ledger order.
type History struct{}

func NewHistory() *History { return &History{} }

// Query validates mode and value before touching the store, then returns the
// matching entries. An empty result is a nil slice without error, distinct
// from a ValidationError for malformed arguments.
func (h *History) Query(ctx context.Context, table sheets.Ledger, mode, value string) ([]core.Entry, error) {
	m, err := core.ParseHistoryMode(mode)
	if err != nil {
		return nil, err
	}

	var (
		count int
		day   time.Time
		want  string
	)
	switch m {
	case core.ModeCount:
		count, err = strconv.Atoi(strings.TrimSpace(value))
		if err != nil || count <= 0 {
			return nil, core.NewValidationError("count must be a positive whole number, got %q", value)
		}
	case core.ModeCategory:
		want = core.NormalizeCategory(value)
		if want == "" {
			return nil, core.NewValidationError("category cannot be empty")
		}
	case core.ModeDate:
		day, err = time.Parse(core.DateLayout, strings.TrimSpace(value))
		if err != nil {
			return nil, core.NewValidationError("invalid date %q: use YYYY-MM-DD", value)
		}
	}

	rows, err := table.Rows(ctx)
	if err != nil {
		return nil, core.NewStoreError("read ledger", err)
	}
	entries := entriesFromRows(rows)

	switch m {
	case core.ModeCount:
		if count > len(entries) {
			count = len(entries)
		}
		return entries[len(entries)-count:], nil
	case core.ModeCategory:
		var out []core.Entry
		for _, e := range entries {
			if e.Category == want {
				out = append(out, e)
			}
		}
		return out, nil
	default: // core.ModeDate
		var out []core.Entry
		for _, e := range entries {
			if !e.Date.IsZero() && e.Date.Equal(day) {
				out = append(out, e)
			}
		}
		return out, nil
	}
}
