package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	Paid   Status = "Paid"
	Unpaid Status = "Unpaid"
)

// DueDateLayout is the storage format for due dates.
const DueDateLayout = "2006-01-02"

type (
	// Status is the payment state of a bill. Exactly two values exist.
	Status string

	// Bill is a single recorded payable obligation. The JSON field names
	// are the external storage contract and must not change.
	Bill struct {
		ID        string `json:"id"`
		Type      string `json:"type"`
		Amount    Money  `json:"amount"`
		DueDate   string `json:"dueDate"`
		Status    Status `json:"status"`
		CreatedAt string `json:"createdAt"`
	}
)

var (
	ErrInvalidAmount  = errors.New("invalid amount")
	ErrInvalidDueDate = errors.New("invalid due date")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptyType      = errors.New("empty bill type")
)

// NewBill builds a bill with a fresh ID and creation timestamp.
// New bills always start Unpaid.
func NewBill(billType string, amount Money, dueDate string) Bill {
	return Bill{
		ID:        NewBillID(),
		Type:      strings.TrimSpace(billType),
		Amount:    amount,
		DueDate:   dueDate,
		Status:    Unpaid,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

// NewBillID generates a collection-unique ID: millisecond timestamp plus
// a random suffix. Uniqueness is best-effort, not cryptographic.
func NewBillID() string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), suffix)
}

func (s Status) Validate() error {
	switch s {
	case Paid, Unpaid:
		return nil
	default:
		return ErrInvalidStatus
	}
}

// Toggled returns the opposite payment state.
func (s Status) Toggled() Status {
	if s == Paid {
		return Unpaid
	}
	return Paid
}

// ValidateDueDate checks that s has the YYYY-MM-DD shape with a month in
// 1-12 and a day no greater than 31. Day-of-month is deliberately not
// checked against the specific month, and day 00 is allowed: both match
// what the free-text parser accepts, and stored dates must round-trip.
func ValidateDueDate(s string) error {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return ErrInvalidDueDate
	}
	for i, r := range s {
		if i == 4 || i == 7 {
			continue
		}
		if r < '0' || r > '9' {
			return ErrInvalidDueDate
		}
	}
	month := int(s[5]-'0')*10 + int(s[6]-'0')
	day := int(s[8]-'0')*10 + int(s[9]-'0')
	if month < 1 || month > 12 {
		return ErrInvalidDueDate
	}
	if day > 31 {
		return ErrInvalidDueDate
	}
	return nil
}

func (b Bill) Validate() error {
	if strings.TrimSpace(b.ID) == "" {
		return errors.New("empty bill id")
	}
	if strings.TrimSpace(b.Type) == "" {
		return ErrEmptyType
	}
	if len(b.Type) > 100 {
		return errors.New("bill type too long (max 100 characters)")
	}
	if err := b.Amount.Validate(); err != nil {
		return err
	}
	if err := ValidateDueDate(b.DueDate); err != nil {
		return err
	}
	if err := b.Status.Validate(); err != nil {
		return err
	}
	return nil
}

// SortByDueDateDesc orders bills most-future-due first. Well-formed ISO
// date strings compare lexicographically in calendar order, so no date
// parsing is needed. The sort is stable so equal due dates keep their
// previous relative order.
func SortByDueDateDesc(bills []Bill) {
	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].DueDate > bills[j].DueDate
	})
}
