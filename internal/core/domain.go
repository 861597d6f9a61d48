package core

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used everywhere: stored in ledger
// rows, accepted from history queries.
const DateLayout = "2006-01-02"

const (
	Daily   Period = "daily"
	Weekly  Period = "weekly"
	Monthly Period = "monthly"
)

const (
	ModeCount    HistoryMode = "count"
	ModeCategory HistoryMode = "category"
	ModeDate     HistoryMode = "date"
)

type (
	// Period selects the look-back window of a spending report.
	Period string

	// HistoryMode selects how history entries are filtered.
	HistoryMode string

	// Entry is one recorded expense. Entries are immutable once appended;
	// the ledger preserves insertion order, which equals recording order.
	Entry struct {
		Date     time.Time // day granularity, zero when the stored date is unreadable
		Item     string
		Price    int64  // minor-unit free; negative values are accepted as recorded
		Category string // lowercase; "" means uncategorized
	}
)

// ParsePeriod validates a report period token.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly, Monthly:
		return p, nil
	default:
		return "", NewValidationError("unknown period %q: use daily, weekly or monthly", s)
	}
}

// Window returns the look-back duration of the period.
func (p Period) Window() time.Duration {
	switch p {
	case Daily:
		return 24 * time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	case Monthly:
		return 30 * 24 * time.Hour
	}
	return 0
}

// ParseHistoryMode validates a history mode token.
func ParseHistoryMode(s string) (HistoryMode, error) {
	switch m := HistoryMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeCount, ModeCategory, ModeDate:
		return m, nil
	default:
		return "", NewValidationError("unknown history mode %q: use count, category or date", s)
	}
}

// NormalizeCategory lowercases a category for storage and comparison.
func NormalizeCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DisplayCategory substitutes a readable label for the empty category.
// Only rendering uses it; storage and aggregation keep "".
func DisplayCategory(s string) string {
	if s == "" {
		return "uncategorized"
	}
	return s
}

// Day truncates t to calendar-day granularity.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
