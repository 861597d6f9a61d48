package ledger

import (
	"context"
	"testing"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets/memory"
)

func newMemService() (*Service, *memory.Store) {
	store := memory.New()
	return NewService(store, store), store
}

func TestServiceCategoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemService()

	if _, err := svc.Add(ctx, "42", "chai", "20", "Beverage"); err != nil {
		t.Fatalf("add: %v", err)
	}

	entries, err := svc.History(ctx, "42", "category", "beverage")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 1 || entries[0].Item != "chai" || entries[0].Category != "beverage" {
		t.Fatalf("entries=%v", entries)
	}
}

func TestServiceReportAfterAdds(t *testing.T) {
	ctx := context.Background()
	svc, _ := newMemService()

	for _, tc := range []struct{ item, price, cat string }{
		{"chai", "20", "beverage"},
		{"coffee", "40", "beverage"},
		{"book", "300", "reading"},
	} {
		if _, err := svc.Add(ctx, "42", tc.item, tc.price, tc.cat); err != nil {
			t.Fatalf("add %s: %v", tc.item, err)
		}
	}

	r, err := svc.Report(ctx, "42", "daily")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.Empty() || r.Total != 360 || r.Highest.Item != "book" {
		t.Fatalf("report=%+v", r)
	}
	if r.TopCategory != "beverage" || r.TopCategoryCount != 2 {
		t.Fatalf("top=%q count=%d", r.TopCategory, r.TopCategoryCount)
	}
}

func TestServiceUsersIsolated(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemService()

	if _, err := svc.Add(ctx, "1", "chai", "20", ""); err != nil {
		t.Fatalf("add: %v", err)
	}
	entries, err := svc.History(ctx, "2", "count", "5")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("user 2 sees user 1 entries: %v", entries)
	}
	if n := store.Tables(); n != 2 {
		t.Fatalf("tables=%d", n)
	}
}

func TestServiceShare(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemService()

	if err := svc.Share(ctx, "42", "friend@example.com"); err != nil {
		t.Fatalf("share: %v", err)
	}
	table, err := svc.provisioner.Resolve(ctx, "42")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	grants := store.Grants(table.ID())
	if len(grants) != 1 || grants[0] != "friend@example.com" {
		t.Fatalf("grants=%v", grants)
	}
}

func TestServiceShareValidatesEmail(t *testing.T) {
	ctx := context.Background()
	svc, store := newMemService()

	for _, email := range []string{"", "   ", "not-an-email"} {
		if err := svc.Share(ctx, "42", email); err == nil || !core.IsValidation(err) {
			t.Fatalf("email %q: expected validation error, got %v", email, err)
		}
	}
	// Validation rejects before provisioning, so no table was created.
	if n := store.Tables(); n != 0 {
		t.Fatalf("tables=%d", n)
	}
}
