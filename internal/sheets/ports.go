package sheets

import (
	"context"
	"errors"
)

// Header is the fixed column schema of every ledger table, written once at
// creation and never altered.
var Header = []string{"date", "item", "price", "category"}

// ErrNotFound reports that no table with the requested name exists.
var ErrNotFound = errors.New("ledger table not found")

// Row is the explicit row schema at the adapter boundary. Adapters hand rows
// to the core already normalized: legacy date-column spellings folded into
// Date, a missing price read as 0, a missing category as "".
type Row struct {
	Date     string
	Item     string
	Price    int64
	Category string
}

// Ports for outbound adapters.
type (
	// Ledger is an open handle to one user's expense table. Append is the
	// only write; rows are never mutated or deleted.
	Ledger interface {
		// Append adds one row after the last existing row.
		Append(ctx context.Context, r Row) error
		// Rows returns all data rows in append order, header excluded.
		Rows(ctx context.Context) ([]Row, error)
		// ID returns the backing file identifier used for sharing grants.
		ID() string
		Name() string
	}

	// Store opens and creates ledger tables by name.
	Store interface {
		// Open returns the table with the given name, or ErrNotFound.
		Open(ctx context.Context, name string) (Ledger, error)
		// Create makes a new table and writes header as its first row.
		Create(ctx context.Context, name string, header []string) (Ledger, error)
	}

	// Sharer grants a third party write access to a ledger table.
	Sharer interface {
		Share(ctx context.Context, ledgerID, email string) error
	}
)
