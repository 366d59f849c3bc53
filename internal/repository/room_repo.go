package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/jsonstore"
)

// RoomRepository is CRUD over the room collection. Every operation is a
// full read-modify-write cycle against the backing document; it performs no
// referential checks against students.
type RoomRepository struct {
	store jsonstore.Store
	path  string

	// lastID is the high-water mark of assigned ids. It never drops, so a
	// create after deleting the newest room does not hand the id out again.
	lastID int64
}

func NewRoomRepository(store jsonstore.Store, path string) *RoomRepository {
	return &RoomRepository{store: store, path: path}
}

// List returns all rooms in document order.
func (r *RoomRepository) List(ctx context.Context) ([]domain.Room, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}
	rooms := make([]domain.Room, 0, len(records))
	for _, rec := range records {
		rooms = append(rooms, roomFromRecord(rec))
	}
	return rooms, nil
}

func (r *RoomRepository) Get(ctx context.Context, id int64) (*domain.Room, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recordInt64(rec, "id") == id {
			rm := roomFromRecord(rec)
			return &rm, nil
		}
	}
	return nil, domain.ErrRoomNotFound
}

func (r *RoomRepository) Create(ctx context.Context, name string) (*domain.Room, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}

	id := nextID(records, r.lastID)
	r.lastID = id
	records = append(records, jsonstore.Record{"id": id, "name": name})
	if err := r.store.Write(ctx, r.path, records); err != nil {
		return nil, fmt.Errorf("persist rooms: %w", err)
	}
	return &domain.Room{ID: id, Name: name}, nil
}

// Update replaces the room's name. The record is mutated in place so any
// extra keys in the document survive.
func (r *RoomRepository) Update(ctx context.Context, id int64, name string) (*domain.Room, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recordInt64(rec, "id") != id {
			continue
		}
		rec["name"] = name
		if err := r.store.Write(ctx, r.path, records); err != nil {
			return nil, fmt.Errorf("persist rooms: %w", err)
		}
		rm := roomFromRecord(rec)
		return &rm, nil
	}
	return nil, domain.ErrRoomNotFound
}

// Delete reports whether a record was actually removed.
func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return false, err
	}

	kept := lo.Filter(records, func(rec jsonstore.Record, _ int) bool {
		return recordInt64(rec, "id") != id
	})
	if len(kept) == len(records) {
		return false, nil
	}
	if err := r.store.Write(ctx, r.path, kept); err != nil {
		return false, fmt.Errorf("persist rooms: %w", err)
	}
	return true, nil
}
