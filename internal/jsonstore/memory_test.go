package jsonstore

import (
	"context"
	"errors"
	"testing"
)

func TestMemStore_ReadIsIsolatedFromWrittenSlice(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	in := []Record{{"id": int64(1), "name": "A"}}
	if err := store.Write(ctx, "rooms.json", in); err != nil {
		t.Fatal(err)
	}
	in[0]["name"] = "mutated"

	out, err := store.Read(ctx, "rooms.json")
	if err != nil {
		t.Fatal(err)
	}
	if out[0]["name"] != "A" {
		t.Fatalf("stored record aliases caller slice: %v", out)
	}

	out[0]["name"] = "mutated again"
	again, _ := store.Read(ctx, "rooms.json")
	if again[0]["name"] != "A" {
		t.Fatalf("read result aliases stored record: %v", again)
	}
}

func TestMemStore_WriteCount(t *testing.T) {
	store := NewMemStore()
	ctx := context.Background()

	store.Seed("rooms.json", []Record{{"id": int64(1)}})
	if got := store.Writes("rooms.json"); got != 0 {
		t.Fatalf("seed must not count as a write, got %d", got)
	}

	if err := store.Write(ctx, "rooms.json", nil); err != nil {
		t.Fatal(err)
	}
	if got := store.Writes("rooms.json"); got != 1 {
		t.Fatalf("expected 1 write, got %d", got)
	}
}

func TestMemStore_WriteErr(t *testing.T) {
	store := NewMemStore()
	boom := errors.New("disk full")
	store.WriteErr = boom

	err := store.Write(context.Background(), "rooms.json", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
}
