package services

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"stayfinder-backend/models"
	"stayfinder-backend/storage"
)

type HotelService struct {
	store  storage.Store
	cache  *HotelCache
	logger zerolog.Logger
}

func NewHotelService(store storage.Store, cache *HotelCache, logger zerolog.Logger) *HotelService {
	return &HotelService{store: store, cache: cache, logger: logger}
}

// List returns every hotel, unfiltered. Search is a client concern.
func (s *HotelService) List(ctx context.Context) ([]models.Hotel, error) {
	if hotels, ok := s.cache.Get(ctx); ok {
		return hotels, nil
	}

	hotels, err := s.store.Hotels(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, hotels)
	return hotels, nil
}

// Get returns a hotel merged with its full room list.
func (s *HotelService) Get(ctx context.Context, id uint) (*models.HotelWithRooms, error) {
	hotel, err := s.store.HotelByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rooms, err := s.store.RoomsByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.HotelWithRooms{Hotel: *hotel, Rooms: rooms}, nil
}

func validateHotel(h *models.Hotel) error {
	if strings.TrimSpace(h.Name) == "" {
		return invalid("Hotel name is required")
	}
	if strings.TrimSpace(h.Description) == "" {
		return invalid("Hotel description is required")
	}
	if strings.TrimSpace(h.Address) == "" {
		return invalid("Hotel address is required")
	}
	if strings.TrimSpace(h.ImageURL) == "" {
		return invalid("Hotel image is required")
	}
	if h.MinPrice <= 0 {
		return invalid("Minimum price must be a positive number")
	}
	return nil
}

func (s *HotelService) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	if err := validateHotel(hotel); err != nil {
		return err
	}
	if err := s.store.CreateHotel(ctx, hotel); err != nil {
		s.logger.Error().Err(err).Str("hotel", hotel.Name).Msg("create hotel failed")
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}

func validateRoom(r *models.Room) error {
	if strings.TrimSpace(r.Name) == "" {
		return invalid("Room name is required")
	}
	if strings.TrimSpace(r.Type) == "" {
		return invalid("Room type is required")
	}
	if r.Capacity <= 0 {
		return invalid("Capacity must be a positive number")
	}
	if r.Price <= 0 {
		return invalid("Price must be a positive number")
	}
	return nil
}

// CreateRoom attaches a new room to an existing hotel. The hotel must
// resolve; the room defaults to available.
func (s *HotelService) CreateRoom(ctx context.Context, hotelID uint, room *models.Room) error {
	if err := validateRoom(room); err != nil {
		return err
	}

	if _, err := s.store.HotelByID(ctx, hotelID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return invalid("Invalid hotel")
		}
		return err
	}

	room.HotelID = hotelID
	if room.Available == nil {
		available := true
		room.Available = &available
	}

	if err := s.store.CreateRoom(ctx, room); err != nil {
		s.logger.Error().Err(err).Uint("hotel_id", hotelID).Msg("create room failed")
		return err
	}
	s.cache.Invalidate(ctx)
	return nil
}
