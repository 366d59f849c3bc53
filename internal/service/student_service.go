package service

import (
	"context"
	"fmt"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/repository"
)

// StudentService fronts the student repository and owns the referential
// check: a student's room must resolve at create, full update and move
// time. The repository itself stays free of cross-collection knowledge.
type StudentService struct {
	studentRepo *repository.StudentRepository
	roomRepo    *repository.RoomRepository
}

func NewStudentService(studentRepo *repository.StudentRepository, roomRepo *repository.RoomRepository) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		roomRepo:    roomRepo,
	}
}

func (s *StudentService) ListStudents(ctx context.Context, ids, rooms []int64) ([]domain.Student, error) {
	return s.studentRepo.List(ctx, ids, rooms)
}

// ListRoomStudents returns the students of one room, failing with
// ErrRoomNotFound when the room itself does not exist.
func (s *StudentService) ListRoomStudents(ctx context.Context, roomID int64) ([]domain.Student, error) {
	if _, err := s.roomRepo.Get(ctx, roomID); err != nil {
		return nil, err
	}
	return s.studentRepo.List(ctx, nil, []int64{roomID})
}

func (s *StudentService) GetStudent(ctx context.Context, id int64) (*domain.Student, error) {
	return s.studentRepo.Get(ctx, id)
}

func (s *StudentService) CreateStudent(ctx context.Context, in domain.NewStudent) (*domain.Student, error) {
	if _, err := s.roomRepo.Get(ctx, in.Room); err != nil {
		return nil, err
	}
	st, err := s.studentRepo.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("studentRepo.Create: %w", err)
	}
	return st, nil
}

func (s *StudentService) UpdateStudent(ctx context.Context, id int64, patch domain.StudentPatch) (*domain.Student, error) {
	if patch.Room != nil {
		if _, err := s.roomRepo.Get(ctx, *patch.Room); err != nil {
			return nil, err
		}
	}
	return s.studentRepo.Update(ctx, id, patch)
}

func (s *StudentService) DeleteStudent(ctx context.Context, id int64) (bool, error) {
	return s.studentRepo.Delete(ctx, id)
}

// MoveStudent reassigns the student's room. The student is looked up first
// so a missing student surfaces as ErrStudentNotFound rather than being
// shadowed by the target-room check.
func (s *StudentService) MoveStudent(ctx context.Context, id, toRoomID int64) (*domain.Student, error) {
	if _, err := s.studentRepo.Get(ctx, id); err != nil {
		return nil, err
	}
	if _, err := s.roomRepo.Get(ctx, toRoomID); err != nil {
		return nil, err
	}
	return s.studentRepo.Move(ctx, id, toRoomID)
}
