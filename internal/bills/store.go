// Package bills implements the bill store: the single source of truth
// for the bill collection, shared by every consumer through snapshots
// and subscriptions.
//
// The collection is persisted whole under one slot key on every
// mutation. In-memory state only changes after a successful write, so a
// failed persist leaves the published collection untouched. Writes are
// last-write-wins at the storage layer; a mutex serializes operations
// within this process.
package bills

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"billtrack/internal/core"
	"billtrack/internal/storage"
)

// SlotKey is the fixed storage key the whole collection lives under.
const SlotKey = "bills"

var (
	// ErrDuplicateID is returned by Add when the bill's ID is already in
	// the collection.
	ErrDuplicateID = errors.New("duplicate bill id")

	// ErrCorruptData wraps a deserialization failure of the stored
	// collection. It is surfaced, never retried.
	ErrCorruptData = errors.New("corrupt stored bill data")
)

// Subscriber receives the published collection after every successful
// load or mutation. The slice is a snapshot; subscribers may keep it.
type Subscriber func([]core.Bill)

// Store owns the in-memory bill collection and its persistence.
type Store struct {
	mu    sync.Mutex
	slots storage.SlotStore
	bills []core.Bill
	subs  []Subscriber
}

func New(slots storage.SlotStore) *Store {
	return &Store{slots: slots}
}

// Subscribe registers fn to be called after every publish. Registration
// order is notification order. Subscribers run with the store lock held
// and must not call back into the store.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Bills returns a snapshot of the published collection.
func (s *Store) Bills() []core.Bill {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Load reads the persisted collection. A missing slot yields an empty
// collection; a malformed blob is an error and leaves the previously
// published state in place. The loaded collection is published sorted
// descending by due date.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.slots.Read(ctx, SlotKey)
	if errors.Is(err, storage.ErrSlotNotFound) {
		s.bills = []core.Bill{}
		s.publishLocked()
		return nil
	}
	if err != nil {
		return fmt.Errorf("load bills: %w", err)
	}

	var loaded []core.Bill
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("%w: %v", ErrCorruptData, err)
	}

	core.SortByDueDateDesc(loaded)
	s.bills = loaded
	s.publishLocked()

	slog.InfoContext(ctx, "Bills loaded", "count", len(loaded))
	return nil
}

// Add appends a bill and persists the whole collection. The caller is
// responsible for generating a fresh ID; a duplicate is rejected before
// anything is written.
func (s *Store) Add(ctx context.Context, bill core.Bill) error {
	if err := bill.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexLocked(bill.ID) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateID, bill.ID)
	}

	next := append(s.snapshotLocked(), bill)
	if err := s.persistLocked(ctx, next); err != nil {
		return fmt.Errorf("add bill: %w", err)
	}

	core.SortByDueDateDesc(next)
	s.bills = next
	s.publishLocked()

	slog.InfoContext(ctx, "Bill added",
		"id", bill.ID,
		"type", bill.Type,
		"amount", bill.Amount.String(),
		"due_date", bill.DueDate)
	return nil
}

// Update replaces the bill whose ID matches. An unknown ID is not an
// error: the collection stays unchanged and found is false.
func (s *Store) Update(ctx context.Context, bill core.Bill) (found bool, err error) {
	if err := bill.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(bill.ID)
	if i < 0 {
		return false, nil
	}

	next := s.snapshotLocked()
	next[i] = bill
	if err := s.persistLocked(ctx, next); err != nil {
		return true, fmt.Errorf("update bill: %w", err)
	}

	core.SortByDueDateDesc(next)
	s.bills = next
	s.publishLocked()

	slog.InfoContext(ctx, "Bill updated", "id", bill.ID, "status", string(bill.Status))
	return true, nil
}

// Delete removes the bill whose ID matches. Deleting an absent ID is a
// no-op, so calling it twice is safe. The remaining collection is
// republished re-sorted, keeping the one ordering invariant all
// mutations share.
func (s *Store) Delete(ctx context.Context, id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return false, nil
	}

	next := s.snapshotLocked()
	next = append(next[:i], next[i+1:]...)
	if err := s.persistLocked(ctx, next); err != nil {
		return true, fmt.Errorf("delete bill: %w", err)
	}

	core.SortByDueDateDesc(next)
	s.bills = next
	s.publishLocked()

	slog.InfoContext(ctx, "Bill deleted", "id", id)
	return true, nil
}

func (s *Store) indexLocked(id string) int {
	for i, b := range s.bills {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() []core.Bill {
	out := make([]core.Bill, len(s.bills))
	copy(out, s.bills)
	return out
}

func (s *Store) persistLocked(ctx context.Context, bills []core.Bill) error {
	data, err := json.Marshal(bills)
	if err != nil {
		return fmt.Errorf("encode bills: %w", err)
	}
	if err := s.slots.Write(ctx, SlotKey, data); err != nil {
		return fmt.Errorf("persist bills: %w", err)
	}
	return nil
}

func (s *Store) publishLocked() {
	if len(s.subs) == 0 {
		return
	}
	snapshot := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
