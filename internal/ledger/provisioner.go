package ledger

import (
	"context"
	"errors"
	"log/slog"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"

	"golang.org/x/sync/singleflight"
)

const tablePrefix = "moneymanager_"

// TableName returns the deterministic table name owned by a user.
func TableName(userID string) string { return tablePrefix + userID }

// Provisioner resolves a user to their ledger table, creating it on first
// use. Concurrent resolves for the same new user are collapsed into one
// create so a burst of first commands cannot produce duplicate tables.
type Provisioner struct {
	store sheets.Store
	group singleflight.Group
}

func NewProvisioner(store sheets.Store) *Provisioner {
	return &Provisioner{store: store}
}

// Resolve opens the user's ledger table, creating it with the fixed header
// when absent. Safe to call on every command; the open path is a no-op when
// the table already exists.
func (p *Provisioner) Resolve(ctx context.Context, userID string) (sheets.Ledger, error) {
	name := TableName(userID)
	v, err, _ := p.group.Do(name, func() (any, error) {
		t, err := p.store.Open(ctx, name)
		if err == nil {
			return t, nil
		}
		if !errors.Is(err, sheets.ErrNotFound) {
			return nil, core.NewStoreError("open ledger "+name, err)
		}
		slog.InfoContext(ctx, "Provisioning new ledger table", "table", name, "user_id", userID)
		t, err = p.store.Create(ctx, name, sheets.Header)
		if err != nil {
			return nil, core.NewStoreError("create ledger "+name, err)
		}
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(sheets.Ledger), nil
}
