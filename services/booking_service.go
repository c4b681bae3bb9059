package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"stayfinder-backend/metrics"
	"stayfinder-backend/models"
	"stayfinder-backend/storage"
	"stayfinder-backend/utils"
)

type BookingService struct {
	store  storage.Store
	logger zerolog.Logger
}

func NewBookingService(store storage.Store, logger zerolog.Logger) *BookingService {
	return &BookingService{store: store, logger: logger}
}

// parseStayDate accepts the ISO shapes the client sends: a full RFC 3339
// timestamp or a bare calendar date.
func parseStayDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// Create books a room for the given user. Pricing is fixed at creation:
// the room's nightly price times the night count. There is no
// availability or overlap check; the same room and date range can be
// booked twice.
func (s *BookingService) Create(ctx context.Context, userID string, roomID uint, checkIn, checkOut string) (*models.Booking, error) {
	room, err := s.store.RoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, invalid("Invalid room")
		}
		return nil, err
	}

	start, err := parseStayDate(checkIn)
	if err != nil {
		return nil, invalid("Invalid dates")
	}
	end, err := parseStayDate(checkOut)
	if err != nil {
		return nil, invalid("Invalid dates")
	}

	nights := utils.Nights(start, end)
	if nights <= 0 {
		return nil, invalid("Invalid dates")
	}

	booking := &models.Booking{
		UserID:     userID,
		RoomID:     roomID,
		CheckIn:    start,
		CheckOut:   end,
		TotalPrice: room.Price * nights,
		Status:     models.BookingStatusConfirmed,
	}
	if err := s.store.CreateBooking(ctx, booking); err != nil {
		s.logger.Error().Err(err).Uint("room_id", roomID).Msg("create booking failed")
		return nil, err
	}

	metrics.BookingsCreatedTotal.Inc()
	s.logger.Info().
		Uint("booking_id", booking.ID).
		Uint("room_id", roomID).
		Int("nights", nights).
		Int("total_price", booking.TotalPrice).
		Msg("booking created")
	return booking, nil
}

// ListForUser returns the caller's bookings joined with room and hotel.
func (s *BookingService) ListForUser(ctx context.Context, userID string) ([]models.BookingDetails, error) {
	return s.store.BookingsByUser(ctx, userID)
}

// Cancel flips a booking to cancelled. Only the owner may cancel; the
// transition is unconditional, so cancelling twice still ends cancelled.
func (s *BookingService) Cancel(ctx context.Context, userID string, id uint) (*models.Booking, error) {
	booking, err := s.store.BookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if booking.UserID != userID {
		return nil, ErrUnauthorized
	}

	updated, err := s.store.UpdateBookingStatus(ctx, id, models.BookingStatusCancelled)
	if err != nil {
		s.logger.Error().Err(err).Uint("booking_id", id).Msg("cancel booking failed")
		return nil, err
	}
	s.logger.Info().Uint("booking_id", id).Msg("booking cancelled")
	return updated, nil
}
