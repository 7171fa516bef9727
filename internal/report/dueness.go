package report

import (
	"time"

	"billtrack/internal/core"
)

// Dueness labels an unpaid bill relative to a reference day. It is a
// classification only; nothing here schedules or generates bills.
type Dueness string

const (
	Overdue  Dueness = "overdue"
	DueToday Dueness = "due_today"
	Upcoming Dueness = "upcoming"
)

// Classify compares a bill's due date with the given day, truncated to
// calendar dates. Paid bills are never overdue; they classify by date
// like any other so callers can still bucket them if they want.
// Malformed due dates classify as Upcoming rather than failing, since
// stored dates are not re-validated on read.
func Classify(b core.Bill, today time.Time) Dueness {
	due, err := time.Parse(core.DueDateLayout, b.DueDate)
	if err != nil {
		return Upcoming
	}
	y, m, d := today.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	switch {
	case due.Before(day):
		return Overdue
	case due.Equal(day):
		return DueToday
	default:
		return Upcoming
	}
}
