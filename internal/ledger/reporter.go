package ledger

import (
	"context"
	"time"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

// Reporter computes time-windowed spending summaries over a ledger snapshot.
// Each report is a stateless read: scan, aggregate, done.
type Reporter struct {
	now func() time.Time
}

func NewReporter() *Reporter {
	return &Reporter{now: time.Now}
}

// Report validates the period, then aggregates every entry dated inside the
// look-back window. The period is checked before any store read so a bad
// argument costs nothing. An empty result is a report with zero entries, not
// an error.
func (r *Reporter) Report(ctx context.Context, table sheets.Ledger, period string) (core.Report, error) {
	p, err := core.ParsePeriod(period)
	if err != nil {
		return core.Report{}, err
	}
	rows, err := table.Rows(ctx)
	if err != nil {
		return core.Report{}, core.NewStoreError("read ledger", err)
	}
	cutoff := r.now().Add(-p.Window())
	return core.Summarize(entriesFromRows(rows), p, cutoff), nil
}
