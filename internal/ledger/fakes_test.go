package ledger

import (
	"context"
	"errors"
	"sync/atomic"

	"moneymanager/internal/sheets"
)

// fakeTable is an in-memory ledger that counts reads, so tests can assert
// that argument validation happens before any store access.
type fakeTable struct {
	name  string
	rows  []sheets.Row
	reads atomic.Int64
}

func (f *fakeTable) Append(_ context.Context, r sheets.Row) error {
	f.rows = append(f.rows, r)
	return nil
}

func (f *fakeTable) Rows(_ context.Context) ([]sheets.Row, error) {
	f.reads.Add(1)
	return append([]sheets.Row(nil), f.rows...), nil
}

func (f *fakeTable) ID() string   { return "fake:" + f.name }
func (f *fakeTable) Name() string { return f.name }

// failingStore refuses every operation, simulating an unreachable backend.
type failingStore struct{}

var errUnreachable = errors.New("backend unreachable")

func (failingStore) Open(context.Context, string) (sheets.Ledger, error) {
	return nil, errUnreachable
}

func (failingStore) Create(context.Context, string, []string) (sheets.Ledger, error) {
	return nil, errUnreachable
}

// brokenTable fails reads and writes after being handed out successfully.
type brokenTable struct{ fakeTable }

func (b *brokenTable) Append(context.Context, sheets.Row) error { return errUnreachable }
func (b *brokenTable) Rows(context.Context) ([]sheets.Row, error) {
	return nil, errUnreachable
}
