package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"staybook/internal/domain"
)

// FavoritesService keeps per-user favorite lists in an in-process slice.
// Explicitly volatile: nothing survives a restart.
type FavoritesService struct {
	hotels domain.HotelSource

	mu    sync.Mutex
	items []domain.FavoriteHotel
}

func NewFavoritesService(hotels domain.HotelSource) *FavoritesService {
	return &FavoritesService{hotels: hotels}
}

// Add records hotelID as a favorite of userID, denormalizing a hotel
// snapshot into the record. Adding the same hotel twice returns the
// existing entry.
func (s *FavoritesService) Add(ctx context.Context, userID string, hotelID int) (domain.FavoriteHotel, error) {
	h, err := s.hotels.ByID(ctx, hotelID)
	if err != nil {
		return domain.FavoriteHotel{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.items {
		if f.UserID == userID && f.HotelID == hotelID {
			return f, nil
		}
	}
	f := domain.FavoriteHotel{
		ID:      uuid.NewString(),
		UserID:  userID,
		HotelID: hotelID,
		AddedAt: time.Now().UTC(),
		Hotel:   &h,
	}
	s.items = append(s.items, f)
	return f, nil
}

func (s *FavoritesService) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.items {
		if f.ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *FavoritesService) List(ctx context.Context, userID string) []domain.FavoriteHotel {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FavoriteHotel, 0)
	for _, f := range s.items {
		if f.UserID == userID {
			out = append(out, f)
		}
	}
	return out
}
