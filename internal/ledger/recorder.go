package ledger

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

// Recorder validates and appends single expense entries. Appends to the same
// table are serialized through a per-table mutex so two in-flight commands
// for one user cannot interleave at the store layer; different users never
// contend.
type Recorder struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	now   func() time.Time
}

func NewRecorder() *Recorder {
	return &Recorder{locks: make(map[string]*sync.Mutex), now: time.Now}
}

// Record appends one entry dated today. The item must be non-empty and the
// price a whole number; negative prices are accepted as recorded. The
// category is lowercased before storage. Record never reads or rewrites
// existing rows.
func (r *Recorder) Record(ctx context.Context, table sheets.Ledger, item, price, category string) (core.Entry, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return core.Entry{}, core.NewValidationError("item cannot be empty")
	}
	n, err := strconv.ParseInt(strings.TrimSpace(price), 10, 64)
	if err != nil {
		return core.Entry{}, core.NewValidationError("price must be a whole number, got %q", price)
	}

	e := core.Entry{
		Date:     core.Day(r.now()),
		Item:     item,
		Price:    n,
		Category: core.NormalizeCategory(category),
	}

	lock := r.tableLock(table.Name())
	lock.Lock()
	defer lock.Unlock()

	row := sheets.Row{
		Date:     e.Date.Format(core.DateLayout),
		Item:     e.Item,
		Price:    e.Price,
		Category: e.Category,
	}
	if err := table.Append(ctx, row); err != nil {
		return core.Entry{}, core.NewStoreError("append entry", err)
	}
	return e, nil
}

func (r *Recorder) tableLock(name string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()
	lock, ok := r.locks[name]
	if !ok {
		lock = &sync.Mutex{}
		r.locks[name] = lock
	}
	return lock
}
