package repository

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/jsonstore"
)

// StudentRepository is CRUD plus filtered listing and move over the student
// collection. It does not verify that a referenced room exists; that check
// belongs to the service layer so the repository stays usable on its own.
type StudentRepository struct {
	store jsonstore.Store
	path  string

	// lastID is the high-water mark of assigned ids. It never drops, so a
	// create after deleting the newest student does not hand the id out again.
	lastID int64
}

func NewStudentRepository(store jsonstore.Store, path string) *StudentRepository {
	return &StudentRepository{store: store, path: path}
}

// List returns students in document order. A non-empty ids filter restricts
// to those ids, a non-empty rooms filter to those rooms; both together
// compose with AND. Empty or nil filters do not restrict.
func (r *StudentRepository) List(ctx context.Context, ids, rooms []int64) ([]domain.Student, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		records = lo.Filter(records, func(rec jsonstore.Record, _ int) bool {
			return lo.Contains(ids, recordInt64(rec, "id"))
		})
	}
	if len(rooms) > 0 {
		records = lo.Filter(records, func(rec jsonstore.Record, _ int) bool {
			return lo.Contains(rooms, recordInt64(rec, "room"))
		})
	}

	students := make([]domain.Student, 0, len(records))
	for _, rec := range records {
		students = append(students, studentFromRecord(rec))
	}
	return students, nil
}

func (r *StudentRepository) Get(ctx context.Context, id int64) (*domain.Student, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recordInt64(rec, "id") == id {
			st := studentFromRecord(rec)
			return &st, nil
		}
	}
	return nil, domain.ErrStudentNotFound
}

func (r *StudentRepository) Create(ctx context.Context, in domain.NewStudent) (*domain.Student, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}

	id := nextID(records, r.lastID)
	r.lastID = id
	records = append(records, jsonstore.Record{
		"id":       id,
		"name":     in.Name,
		"room":     in.Room,
		"sex":      in.Sex,
		"birthday": in.Birthday.Format(domain.BirthdayLayout),
	})
	if err := r.store.Write(ctx, r.path, records); err != nil {
		return nil, fmt.Errorf("persist students: %w", err)
	}
	return &domain.Student{
		ID:       id,
		Name:     in.Name,
		Room:     in.Room,
		Sex:      in.Sex,
		Birthday: in.Birthday,
	}, nil
}

// Update applies the non-nil fields of the patch. Untouched fields and any
// extra keys in the record are preserved.
func (r *StudentRepository) Update(ctx context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error) {
	records, err := r.store.Read(ctx, r.path)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		if recordInt64(rec, "id") != id {
			continue
		}
		if patch.Name != nil {
			rec["name"] = *patch.Name
		}
		if patch.Room != nil {
			rec["room"] = *patch.Room
		}
		if patch.Sex != nil {
			rec["sex"] = *patch.Sex
		}
		if patch.Birthday != nil {
			rec["birthday"] = patch.Birthday.Format(domain.BirthdayLayout)
		}
		if err := r.store.Write(ctx, r.path, records); err != nil {
			return nil, fmt.Errorf("persist students: %w", err)
		}
		st := studentFromRecord(rec)
		return &st, nil
	}
	return nil, domain.ErrStudentNotFound
}

func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
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
		return false, fmt.Errorf("persist students: %w", err)
	}
	return true, nil
}

// Move reassigns the student's room. It is Update with only the room set;
// whether the target room exists is checked by the caller.
func (r *StudentRepository) Move(ctx context.Context, id, toRoomID int64) (*domain.Student, error) {
	return r.Update(ctx, id, domain.StudentPatch{Room: &toRoomID})
}
