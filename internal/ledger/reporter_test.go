package ledger

import (
	"context"
	"testing"
	"time"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

func tableWithAges(now time.Time, ages ...int) *fakeTable {
	t := &fakeTable{name: "t"}
	for i, age := range ages {
		d := now.AddDate(0, 0, -age)
		t.rows = append(t.rows, sheets.Row{
			Date:  d.Format(core.DateLayout),
			Item:  "item",
			Price: int64(i + 1),
		})
	}
	return t
}

func TestReportWindowCorrectness(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	rep := NewReporter()
	rep.now = func() time.Time { return now }

	table := tableWithAges(now, 2, 10, 40)
	ctx := context.Background()

	daily, err := rep.Report(ctx, table, "daily")
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if !daily.Empty() {
		t.Fatalf("daily should be empty, got %d entries", daily.Entries)
	}

	weekly, err := rep.Report(ctx, table, "weekly")
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if weekly.Entries != 1 {
		t.Fatalf("weekly entries=%d", weekly.Entries)
	}

	monthly, err := rep.Report(ctx, table, "monthly")
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if monthly.Entries != 2 {
		t.Fatalf("monthly entries=%d", monthly.Entries)
	}
}

func TestReportIncludesToday(t *testing.T) {
	now := time.Date(2025, 6, 10, 23, 50, 0, 0, time.UTC)
	rep := NewReporter()
	rep.now = func() time.Time { return now }

	table := tableWithAges(now, 0)
	daily, err := rep.Report(context.Background(), table, "daily")
	if err != nil || daily.Entries != 1 {
		t.Fatalf("entries=%d err=%v", daily.Entries, err)
	}
}

func TestReportInvalidPeriodNoStoreRead(t *testing.T) {
	rep := NewReporter()
	table := &fakeTable{name: "t"}

	_, err := rep.Report(context.Background(), table, "quarterly")
	if err == nil || !core.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if n := table.reads.Load(); n != 0 {
		t.Fatalf("store read %d times during validation failure", n)
	}
}

func TestReportSkipsMalformedDates(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	rep := NewReporter()
	rep.now = func() time.Time { return now }

	table := &fakeTable{name: "t", rows: []sheets.Row{
		{Date: "not-a-date", Item: "bad", Price: 999},
		{Date: "2025-06-10", Item: "good", Price: 10},
	}}
	r, err := rep.Report(context.Background(), table, "monthly")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.Entries != 1 || r.Total != 10 {
		t.Fatalf("entries=%d total=%d", r.Entries, r.Total)
	}
}

func TestReportClassifiesStoreFailure(t *testing.T) {
	rep := NewReporter()
	_, err := rep.Report(context.Background(), &brokenTable{}, "daily")
	if err == nil || !core.IsStore(err) {
		t.Fatalf("expected store error, got %v", err)
	}
}
