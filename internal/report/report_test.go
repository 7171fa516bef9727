package report

import (
	"testing"
	"time"

	"billtrack/internal/core"
)

func bill(id, billType string, cents int64, status core.Status) core.Bill {
	return core.Bill{
		ID:        id,
		Type:      billType,
		Amount:    core.Money{Cents: cents},
		DueDate:   "2024-04-15",
		Status:    status,
		CreatedAt: "2024-04-01T10:00:00Z",
	}
}

func TestAggregateEmpty(t *testing.T) {
	rep := Aggregate(nil)
	if len(rep.Summaries) != 0 {
		t.Fatalf("expected no summaries, got %d", len(rep.Summaries))
	}
	if rep.Totals != (TotalStats{}) {
		t.Fatalf("expected zero totals, got %+v", rep.Totals)
	}
}

func TestAggregatePerType(t *testing.T) {
	bills := []core.Bill{
		bill("1", "Water", 10000, core.Paid),
		bill("2", "Water", 20000, core.Unpaid),
		bill("3", "Rent", 50000, core.Unpaid),
	}
	rep := Aggregate(bills)

	if len(rep.Summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(rep.Summaries))
	}
	// First-seen order: Water before Rent.
	water := rep.Summaries[0]
	if water.Type != "Water" {
		t.Fatalf("first summary %q, want Water", water.Type)
	}
	if water.Total.Cents != 30000 || water.Count != 2 ||
		water.Paid.Cents != 10000 || water.Unpaid.Cents != 20000 {
		t.Fatalf("water summary wrong: %+v", water)
	}

	if rep.Totals.Total.Cents != 80000 || rep.Totals.Count != 3 {
		t.Fatalf("totals wrong: %+v", rep.Totals)
	}
}

func TestAggregateTypeIsCaseSensitive(t *testing.T) {
	bills := []core.Bill{
		bill("1", "rent", 100, core.Unpaid),
		bill("2", "Rent", 100, core.Unpaid),
	}
	rep := Aggregate(bills)
	if len(rep.Summaries) != 2 {
		t.Fatalf("\"rent\" and \"Rent\" must be distinct groups, got %d", len(rep.Summaries))
	}
}

// Per-type sums must always add up to the overall totals.
func TestAggregateSumsConsistent(t *testing.T) {
	bills := []core.Bill{
		bill("1", "Rent", 50000, core.Unpaid),
		bill("2", "Wi-Fi", 2599, core.Paid),
		bill("3", "Electricity", 7340, core.Unpaid),
		bill("4", "Wi-Fi", 2599, core.Unpaid),
		bill("5", "Water", 10000, core.Paid),
	}
	rep := Aggregate(bills)

	var total, paid, unpaid int64
	var count int
	for _, s := range rep.Summaries {
		total += s.Total.Cents
		paid += s.Paid.Cents
		unpaid += s.Unpaid.Cents
		count += s.Count
	}
	if total != rep.Totals.Total.Cents || paid != rep.Totals.Paid.Cents ||
		unpaid != rep.Totals.Unpaid.Cents || count != rep.Totals.Count {
		t.Fatalf("summary sums diverge from totals: %+v", rep)
	}
}

func TestAggregateIdempotent(t *testing.T) {
	bills := []core.Bill{
		bill("1", "Rent", 50000, core.Unpaid),
		bill("2", "Water", 10000, core.Paid),
	}
	a := Aggregate(bills)
	b := Aggregate(bills)
	if a.Totals != b.Totals || len(a.Summaries) != len(b.Summaries) {
		t.Fatalf("recomputation changed the result")
	}
	for i := range a.Summaries {
		if a.Summaries[i] != b.Summaries[i] {
			t.Fatalf("summary %d differs between runs", i)
		}
	}
}

func TestTotalDue(t *testing.T) {
	bills := []core.Bill{
		bill("1", "Rent", 50000, core.Unpaid),
		bill("2", "Water", 10000, core.Paid),
		bill("3", "Wi-Fi", 2500, core.Unpaid),
	}
	if due := TotalDue(bills); due.Cents != 52500 {
		t.Fatalf("TotalDue = %d, want 52500", due.Cents)
	}
	if due := TotalDue(nil); due.Cents != 0 {
		t.Fatalf("TotalDue(nil) = %d, want 0", due.Cents)
	}
}

func TestFilterByStatus(t *testing.T) {
	bills := []core.Bill{
		bill("1", "Rent", 100, core.Unpaid),
		bill("2", "Water", 100, core.Paid),
		bill("3", "Wi-Fi", 100, core.Unpaid),
	}
	unpaid := FilterByStatus(bills, core.Unpaid)
	if len(unpaid) != 2 || unpaid[0].ID != "1" || unpaid[1].ID != "3" {
		t.Fatalf("unexpected filter result: %+v", unpaid)
	}
	if got := FilterByStatus(bills, core.Paid); len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("unexpected paid filter: %+v", got)
	}
}

func TestClassify(t *testing.T) {
	today := time.Date(2024, 4, 15, 13, 45, 0, 0, time.UTC)
	cases := []struct {
		due  string
		want Dueness
	}{
		{"2024-04-01", Overdue},
		{"2024-04-15", DueToday},
		{"2024-05-01", Upcoming},
		{"2024-02-31", Upcoming}, // tolerated malformed calendar date
	}
	for _, tc := range cases {
		b := bill("1", "Rent", 100, core.Unpaid)
		b.DueDate = tc.due
		if got := Classify(b, today); got != tc.want {
			t.Errorf("Classify(due=%s) = %s, want %s", tc.due, got, tc.want)
		}
	}
}
