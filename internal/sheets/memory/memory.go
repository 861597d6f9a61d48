package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	ports "moneymanager/internal/sheets"
)

// Store keeps ledger tables in memory. It backs the memory data backend and
// every test that exercises the core without Google credentials.
type Store struct {
	mu     sync.Mutex
	tables map[string]*Table
	grants map[string][]string // ledger ID -> shared addresses
	seq    int
}

var (
	_ ports.Store  = (*Store)(nil)
	_ ports.Sharer = (*Store)(nil)
)

func New() *Store {
	return &Store{
		tables: make(map[string]*Table),
		grants: make(map[string][]string),
	}
}

func (s *Store) Open(_ context.Context, name string) (ports.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tables[name]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return t, nil
}

func (s *Store) Create(_ context.Context, name string, header []string) (ports.Ledger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tables[name]; exists {
		return nil, fmt.Errorf("table %q already exists", name)
	}
	s.seq++
	t := &Table{
		id:     fmt.Sprintf("mem:%d", s.seq),
		name:   name,
		header: append([]string(nil), header...),
	}
	s.tables[name] = t
	return t, nil
}

func (s *Store) Share(_ context.Context, ledgerID, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grants[ledgerID] = append(s.grants[ledgerID], email)
	return nil
}

// Grants returns the addresses a ledger was shared with, for assertions.
func (s *Store) Grants(ledgerID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.grants[ledgerID]...)
}

// Tables returns how many tables exist, for assertions.
func (s *Store) Tables() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tables)
}

// Table is one in-memory ledger table.
type Table struct {
	mu     sync.Mutex
	id     string
	name   string
	header []string
	rows   []ports.Row
}

var _ ports.Ledger = (*Table)(nil)

func (t *Table) ID() string   { return t.id }
func (t *Table) Name() string { return t.name }

func (t *Table) Append(_ context.Context, r ports.Row) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, r)
	return nil
}

func (t *Table) Rows(_ context.Context) ([]ports.Row, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]ports.Row(nil), t.rows...), nil
}

// SeedValues loads a raw cell matrix, header included, through the same
// normalization path the Google adapter uses. Tests use it to simulate
// legacy tables with alternate column spellings.
func (t *Table) SeedValues(values [][]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(values) > 0 {
		t.header = append([]string(nil), values[0]...)
	}
	t.rows = append(t.rows, ports.RowsFromValues(values)...)
}

// Header returns a copy of the header row written at creation.
func (t *Table) Header() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.header...)
}

// String implements fmt.Stringer for test failure output.
func (t *Table) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	var b strings.Builder
	fmt.Fprintf(&b, "%s(%s) %v", t.name, t.id, t.header)
	for _, r := range t.rows {
		fmt.Fprintf(&b, "\n%s | %s | %d | %s", r.Date, r.Item, r.Price, r.Category)
	}
	return b.String()
}
