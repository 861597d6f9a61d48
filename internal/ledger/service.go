package ledger

import (
	"context"
	"strings"

	"moneymanager/internal/core"
	"moneymanager/internal/sheets"
)

// Service is the facade the command dispatcher talks to. Every operation
// resolves the caller's ledger first, then runs against it. All failures come
// back classified: ValidationError, StoreError, or success with a possibly
// empty result.
type Service struct {
	provisioner *Provisioner
	recorder    *Recorder
	reporter    *Reporter
	history     *History
	sharer      sheets.Sharer
}

func NewService(store sheets.Store, sharer sheets.Sharer) *Service {
	return &Service{
		provisioner: NewProvisioner(store),
		recorder:    NewRecorder(),
		reporter:    NewReporter(),
		history:     NewHistory(),
		sharer:      sharer,
	}
}

// Add records one expense in the user's ledger and returns the stored entry.
func (s *Service) Add(ctx context.Context, userID, item, price, category string) (core.Entry, error) {
	table, err := s.provisioner.Resolve(ctx, userID)
	if err != nil {
		return core.Entry{}, err
	}
	return s.recorder.Record(ctx, table, item, price, category)
}

// Report computes the spending summary for the given period.
func (s *Service) Report(ctx context.Context, userID, period string) (core.Report, error) {
	table, err := s.provisioner.Resolve(ctx, userID)
	if err != nil {
		return core.Report{}, err
	}
	return s.reporter.Report(ctx, table, period)
}

// History returns the entries matching the given mode and value.
func (s *Service) History(ctx context.Context, userID, mode, value string) ([]core.Entry, error) {
	table, err := s.provisioner.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.history.Query(ctx, table, mode, value)
}

// Share grants the given address write access to the user's ledger table.
// The grant itself is a pass-through to the store's sharing backend.
func (s *Service) Share(ctx context.Context, userID, email string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return core.NewValidationError("invalid email address %q", email)
	}
	table, err := s.provisioner.Resolve(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.sharer.Share(ctx, table.ID(), email); err != nil {
		return core.NewStoreError("share ledger", err)
	}
	return nil
}
