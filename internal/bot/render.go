package bot

import (
	"fmt"
	"strings"

	"moneymanager/internal/core"
)

const helpText = `Available commands:

/add <item> <price> [category]
  Record an expense. Example: /add chai 20 beverage

/report <daily|weekly|monthly>
  Spending summary for the period. Example: /report weekly

/history count <n>
  The last n entries. Example: /history count 5
/history category <name>
  Entries in a category. Example: /history category beverage
/history date <YYYY-MM-DD>
  Entries on a date. Example: /history date 2023-09-15

/share <email>
  Share your ledger spreadsheet with someone.

/help
  Show this message.`

func formatAdded(e core.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Added expense: %s costing %d", e.Item, e.Price)
	if e.Category != "" {
		fmt.Fprintf(&b, " in category %s", e.Category)
	}
	fmt.Fprintf(&b, " on %s.", e.Date.Format(core.DateLayout))
	return b.String()
}

func formatReport(r core.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s report\n", titleCase(string(r.Period)))
	fmt.Fprintf(&b, "Total spent: %d\n", r.Total)
	fmt.Fprintf(&b, "Highest expense: %s (%d)\n", r.Highest.Item, r.Highest.Price)
	fmt.Fprintf(&b, "Most frequent category: %s (%d times)\n\n", core.DisplayCategory(r.TopCategory), r.TopCategoryCount)
	b.WriteString("By category:\n")
	for _, ct := range r.ByCategory {
		fmt.Fprintf(&b, "- %s: %d\n", core.DisplayCategory(ct.Name), ct.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatHistory(entries []core.Entry) string {
	var b strings.Builder
	b.WriteString("Expense history:\n")
	for _, e := range entries {
		date := "-"
		if !e.Date.IsZero() {
			date = e.Date.Format(core.DateLayout)
		}
		fmt.Fprintf(&b, "%s | %s - %d [%s]\n", date, e.Item, e.Price, core.DisplayCategory(e.Category))
	}
	return strings.TrimRight(b.String(), "\n")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
