// Package jsonstore reads and writes whole JSON array documents. Each
// document is the unit of durability: every mutation above this layer
// re-reads the collection, changes it in memory and writes it back.
//
// The store provides no locking. Concurrent writers to the same path race
// read-modify-write cycles and the last write wins; deployments that need
// isolation must serialize access to a path externally.
package jsonstore

import (
	"context"
	"errors"
)

// Record is one raw element of a document. Typing and validation happen in
// the repositories above; keeping records raw lets unknown keys survive a
// read-modify-write round trip untouched.
type Record = map[string]any

// ErrCorrupted marks a document that exists but is not a valid JSON array.
// It is never silently treated as empty.
var ErrCorrupted = errors.New("jsonstore: invalid JSON document")

type Store interface {
	// Read returns all records of the document at path, in document order.
	// A missing document is an empty collection, not an error.
	Read(ctx context.Context, path string) ([]Record, error)

	// Write replaces the document at path with the given records. A reader
	// must never observe a partially written document.
	Write(ctx context.Context, path string, records []Record) error
}
