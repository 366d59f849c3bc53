package service

import (
	"context"
	"fmt"

	"github.com/dormkeep/registry-service/internal/combine"
	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/repository"
)

// CombinedService computes the rooms-with-students view fresh on every
// call; nothing is cached or persisted.
type CombinedService struct {
	roomRepo    *repository.RoomRepository
	studentRepo *repository.StudentRepository
}

func NewCombinedService(roomRepo *repository.RoomRepository, studentRepo *repository.StudentRepository) *CombinedService {
	return &CombinedService{
		roomRepo:    roomRepo,
		studentRepo: studentRepo,
	}
}

func (s *CombinedService) CombinedRooms(ctx context.Context) ([]domain.CombinedRoom, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.List: %w", err)
	}
	students, err := s.studentRepo.List(ctx, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("studentRepo.List: %w", err)
	}
	return combine.Combine(rooms, students), nil
}
