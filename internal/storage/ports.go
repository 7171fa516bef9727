// Package storage provides the slot store: a tiny key-value persistence
// layer where each logical key holds one opaque serialized blob. The bill
// collection lives in a single slot and is always read and written whole.
package storage

import (
	"context"
	"errors"
)

// ErrSlotNotFound is returned by Read when the key has never been
// written. Callers treat it as "empty collection", not a failure.
var ErrSlotNotFound = errors.New("slot not found")

// SlotStore reads and writes whole blobs under fixed keys. Writes replace
// the previous value; the last write wins, there are no transactions.
type SlotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
}

// CleanupFunc releases a backend's resources.
type CleanupFunc func() error
