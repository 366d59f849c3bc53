package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/dormkeep/registry-service/internal/domain"
	"github.com/dormkeep/registry-service/internal/repository"
)

type RoomService struct {
	roomRepo *repository.RoomRepository
}

func NewRoomService(roomRepo *repository.RoomRepository) *RoomService {
	return &RoomService{roomRepo: roomRepo}
}

// ListRooms returns rooms in file order, restricted to ids when the filter
// is non-empty.
func (s *RoomService) ListRooms(ctx context.Context, ids []int64) ([]domain.Room, error) {
	rooms, err := s.roomRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.List: %w", err)
	}
	if len(ids) > 0 {
		rooms = lo.Filter(rooms, func(rm domain.Room, _ int) bool {
			return lo.Contains(ids, rm.ID)
		})
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	return s.roomRepo.Get(ctx, id)
}

func (s *RoomService) CreateRoom(ctx context.Context, name string) (*domain.Room, error) {
	room, err := s.roomRepo.Create(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("roomRepo.Create: %w", err)
	}
	return room, nil
}

func (s *RoomService) UpdateRoom(ctx context.Context, id int64, name string) (*domain.Room, error) {
	return s.roomRepo.Update(ctx, id, name)
}

// DeleteRoom removes the room without touching students that still point at
// it; their references become orphans and the combined view drops them.
func (s *RoomService) DeleteRoom(ctx context.Context, id int64) (bool, error) {
	return s.roomRepo.Delete(ctx, id)
}
