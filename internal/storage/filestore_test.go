package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreReadMissing(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := fs.Read(context.Background(), "bills"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	want := []byte(`[{"id":"1"}]`)
	if err := fs.Write(ctx, "bills", want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := fs.Read(ctx, "bills")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Read = %s, want %s", got, want)
	}

	// Overwrite replaces the whole blob.
	if err := fs.Write(ctx, "bills", []byte(`[]`)); err != nil {
		t.Fatalf("second Write: %v", err)
	}
	got, err = fs.Read(ctx, "bills")
	if err != nil {
		t.Fatalf("second Read: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("Read after overwrite = %s, want []", got)
	}
}

func TestFileStoreLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	fs, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if err := fs.Write(context.Background(), "bills", []byte(`[]`)); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "bills.json.tmp")); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind")
	}
	if _, err := os.Stat(filepath.Join(dir, "bills.json")); err != nil {
		t.Fatalf("slot file missing: %v", err)
	}
}

func TestMemStoreRoundTrip(t *testing.T) {
	ms := NewMemStore()
	ctx := context.Background()

	if _, err := ms.Read(ctx, "bills"); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("err = %v, want ErrSlotNotFound", err)
	}
	if err := ms.Write(ctx, "bills", []byte("abc")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := ms.Read(ctx, "bills")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	// Mutating the returned copy must not affect the stored blob.
	got[0] = 'x'
	again, _ := ms.Read(ctx, "bills")
	if string(again) != "abc" {
		t.Fatalf("stored blob mutated through returned slice")
	}
}
