package jsonstore

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestFileStore_ReadMissingFile(t *testing.T) {
	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "rooms.json")

	records, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read missing file: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %v", records)
	}
}

func TestFileStore_ReadCorruptedFile(t *testing.T) {
	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "rooms.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := store.Read(context.Background(), path)
	if !errors.Is(err, ErrCorrupted) {
		t.Fatalf("expected ErrCorrupted, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("error should name the path: %v", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "students.json")

	in := []Record{
		{"id": float64(1), "name": "Alice", "room": float64(2)},
		{"id": float64(2), "name": "Bob", "room": float64(2), "note": "keeps extra keys"},
	}
	if err := store.Write(context.Background(), path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	out, err := store.Read(context.Background(), path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\n in=%v\nout=%v", in, out)
	}
}

func TestFileStore_WriteReplacesWholeDocument(t *testing.T) {
	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "rooms.json")
	ctx := context.Background()

	if err := store.Write(ctx, path, []Record{{"id": float64(1), "name": "A"}}); err != nil {
		t.Fatal(err)
	}
	if err := store.Write(ctx, path, []Record{{"id": float64(2), "name": "B"}}); err != nil {
		t.Fatal(err)
	}

	out, err := store.Read(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0]["name"] != "B" {
		t.Fatalf("expected only the second document, got %v", out)
	}
}

func TestFileStore_WriteNilAsEmptyArray(t *testing.T) {
	store := NewFileStore()
	path := filepath.Join(t.TempDir(), "rooms.json")
	ctx := context.Background()

	if err := store.Write(ctx, path, nil); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Fatalf("expected empty array document, got %q", data)
	}
}

func TestFileStore_WriteLeavesNoTempFiles(t *testing.T) {
	store := NewFileStore()
	dir := t.TempDir()
	path := filepath.Join(dir, "rooms.json")

	if err := store.Write(context.Background(), path, []Record{{"id": float64(1)}}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "rooms.json" {
		t.Fatalf("expected only rooms.json in dir, got %v", entries)
	}
}
