package ledger

import (
	"time"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

// entriesFromRows converts normalized store rows into domain entries,
// preserving order. A row whose date does not parse keeps a zero Date: it
// still shows up in history listings but falls outside every report window
// and matches no date query.
func entriesFromRows(rows []sheets.Row) []core.Entry {
	entries := make([]core.Entry, 0, len(rows))
	for _, r := range rows {
		var d time.Time
		if t, err := time.Parse(core.DateLayout, r.Date); err == nil {
			d = t
		}
		entries = append(entries, core.Entry{
			Date:     d,
			Item:     r.Item,
			Price:    r.Price,
			Category: core.NormalizeCategory(r.Category),
		})
	}
	return entries
}
