// Package report derives aggregate views from a bill collection. All
// functions are pure: they read the slice they are given and keep no
// state, so recomputing with unchanged input yields identical output.
package report

import (
	"billtrack/internal/core"
)

// TypeSummary aggregates the bills sharing one type label. The grouping
// key is the raw type string, case-sensitive: "rent" and "Rent" are
// distinct groups.
type TypeSummary struct {
	Type   string     `json:"type"`
	Total  core.Money `json:"total"`
	Count  int        `json:"count"`
	Paid   core.Money `json:"paid"`
	Unpaid core.Money `json:"unpaid"`
}

// TotalStats aggregates across every bill regardless of type.
type TotalStats struct {
	Total  core.Money `json:"total"`
	Paid   core.Money `json:"paid"`
	Unpaid core.Money `json:"unpaid"`
	Count  int        `json:"count"`
}

// Report is the full aggregation: one summary per distinct type plus the
// overall totals.
type Report struct {
	Summaries []TypeSummary `json:"summaries"`
	Totals    TotalStats    `json:"totalStats"`
}

// Aggregate computes per-type and overall totals. Summaries appear in
// first-seen order of their type, so output is deterministic for a given
// input order.
func Aggregate(bills []core.Bill) Report {
	index := make(map[string]int, len(bills))
	rep := Report{Summaries: []TypeSummary{}}

	for _, b := range bills {
		i, ok := index[b.Type]
		if !ok {
			i = len(rep.Summaries)
			index[b.Type] = i
			rep.Summaries = append(rep.Summaries, TypeSummary{Type: b.Type})
		}
		s := &rep.Summaries[i]
		s.Total.Cents += b.Amount.Cents
		s.Count++
		if b.Status == core.Paid {
			s.Paid.Cents += b.Amount.Cents
		} else {
			s.Unpaid.Cents += b.Amount.Cents
		}

		rep.Totals.Total.Cents += b.Amount.Cents
		if b.Status == core.Paid {
			rep.Totals.Paid.Cents += b.Amount.Cents
		} else {
			rep.Totals.Unpaid.Cents += b.Amount.Cents
		}
	}
	rep.Totals.Count = len(bills)
	return rep
}

// TotalDue sums the amounts of all unpaid bills, the headline dashboard
// figure.
func TotalDue(bills []core.Bill) core.Money {
	var due core.Money
	for _, b := range bills {
		if b.Status == core.Unpaid {
			due.Cents += b.Amount.Cents
		}
	}
	return due
}

// FilterByStatus returns the bills with the given status, preserving
// order.
func FilterByStatus(bills []core.Bill, status core.Status) []core.Bill {
	out := make([]core.Bill, 0, len(bills))
	for _, b := range bills {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out
}
