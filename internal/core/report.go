package core

import "time"

// CategoryTotal is an amount aggregated under one category name.
type CategoryTotal struct {
	Name  string
	Total int64
}

// Report is a derived spending summary over one look-back window. It is never
// persisted. An empty report (no entries in window) is distinct from a report
// whose total happens to be zero.
type Report struct {
	Period           Period
	Total            int64
	Highest          Entry
	ByCategory       []CategoryTotal // first-seen order
	TopCategory      string
	TopCategoryCount int
	Entries          int
}

// Empty reports that no entry fell inside the window.
func (r Report) Empty() bool { return r.Entries == 0 }

// Summarize aggregates the entries dated on or after cutoff, scanning in
// ledger order. All sums are exact integer arithmetic. Ties are deterministic:
// the highest expense is the first entry to hold the maximum price, and the
// top category is the first to reach the maximum entry count. Entries with an
// unreadable date carry a zero Date and fall out of any real window.
func Summarize(entries []Entry, p Period, cutoff time.Time) Report {
	rep := Report{Period: p}
	totals := map[string]int64{}
	counts := map[string]int{}
	var order []string
	for _, e := range entries {
		if e.Date.Before(cutoff) {
			continue
		}
		if rep.Entries == 0 || e.Price > rep.Highest.Price {
			rep.Highest = e
		}
		rep.Total += e.Price
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Price
		counts[e.Category]++
		if counts[e.Category] > rep.TopCategoryCount {
			rep.TopCategory = e.Category
			rep.TopCategoryCount = counts[e.Category]
		}
		rep.Entries++
	}
	for _, name := range order {
		rep.ByCategory = append(rep.ByCategory, CategoryTotal{Name: name, Total: totals[name]})
	}
	return rep
}
