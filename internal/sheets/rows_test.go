package sheets

import "testing"

func TestRowsFromValuesCanonicalHeader(t *testing.T) {
	values := [][]string{
		{"date", "item", "price", "category"},
		{"2025-06-10", "chai", "20", "beverage"},
		{"2025-06-11", "book", "300", ""},
	}
	rows := RowsFromValues(values)
	if len(rows) != 2 {
		t.Fatalf("rows=%v", rows)
	}
	want := Row{Date: "2025-06-10", Item: "chai", Price: 20, Category: "beverage"}
	if rows[0] != want {
		t.Fatalf("row[0]=%v want %v", rows[0], want)
	}
	if rows[1].Category != "" || rows[1].Price != 300 {
		t.Fatalf("row[1]=%v", rows[1])
	}
}

func TestRowsFromValuesLegacyTimeHeader(t *testing.T) {
	// Tables created by the legacy implementation spell the date column
	// "Time" and capitalize everything.
	values := [][]string{
		{"Item", "Price", "Category", "Time"},
		{"chai", "20", "beverage", "2023-09-15"},
	}
	rows := RowsFromValues(values)
	if len(rows) != 1 {
		t.Fatalf("rows=%v", rows)
	}
	if rows[0].Date != "2023-09-15" || rows[0].Item != "chai" || rows[0].Price != 20 {
		t.Fatalf("row=%v", rows[0])
	}
}

func TestRowsFromValuesDefensiveCells(t *testing.T) {
	values := [][]string{
		{"date", "item", "price", "category"},
		{"2025-06-10", "short"},          // missing price and category
		{"2025-06-10", "bad", "n/a", ""}, // unparsable price
		{"", "", "", ""},                 // blank row
	}
	rows := RowsFromValues(values)
	if len(rows) != 2 {
		t.Fatalf("rows=%v", rows)
	}
	if rows[0].Price != 0 || rows[0].Category != "" {
		t.Fatalf("row[0]=%v", rows[0])
	}
	if rows[1].Price != 0 {
		t.Fatalf("row[1]=%v", rows[1])
	}
}

func TestRowsFromValuesHeaderOnly(t *testing.T) {
	if rows := RowsFromValues([][]string{{"date", "item", "price", "category"}}); rows != nil {
		t.Fatalf("rows=%v", rows)
	}
	if rows := RowsFromValues(nil); rows != nil {
		t.Fatalf("rows=%v", rows)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"20", 20},
		{"-35", -35},
		{"0", 0},
		{"12.0", 12},
		{"12,5", 12},
		{"", 0},
		{"abc", 0},
	}
	for _, tc := range cases {
		if got := parsePrice(tc.in); got != tc.want {
			t.Fatalf("parsePrice(%q)=%d want %d", tc.in, got, tc.want)
		}
	}
}
