package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stayfinder-backend/models"
	"stayfinder-backend/storage"
)

func newBookingService(store storage.Store) *BookingService {
	return NewBookingService(store, zerolog.Nop())
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()
	room := &models.Room{ID: 7, HotelID: 1, Name: "Standard", Type: "Double", Capacity: 2, Price: 50}

	t.Run("PriceIsNightlyRateTimesNights", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(7)).Return(room, nil)
		store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		svc := newBookingService(store)
		booking, err := svc.Create(ctx, "user-1", 7, "2026-03-01", "2026-03-04")
		require.NoError(t, err)

		assert.Equal(t, 150, booking.TotalPrice)
		assert.Equal(t, models.BookingStatusConfirmed, booking.Status)
		assert.Equal(t, "user-1", booking.UserID)
		assert.Equal(t, uint(7), booking.RoomID)
		store.AssertExpectations(t)
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(7)).Return(room, nil)
		store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		svc := newBookingService(store)
		// 2 days and 12 hours -> 3 nights
		booking, err := svc.Create(ctx, "user-1", 7,
			"2026-03-01T12:00:00Z", "2026-03-04T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 150, booking.TotalPrice)
	})

	t.Run("AcceptsRFC3339Timestamps", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(7)).Return(room, nil)
		store.On("CreateBooking", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

		svc := newBookingService(store)
		booking, err := svc.Create(ctx, "user-1", 7,
			"2026-03-01T00:00:00Z", "2026-03-02T00:00:00Z")
		require.NoError(t, err)
		assert.Equal(t, 50, booking.TotalPrice)
	})

	t.Run("UnknownRoomFailsValidation", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(99)).Return(nil, storage.ErrNotFound)

		svc := newBookingService(store)
		_, err := svc.Create(ctx, "user-1", 99, "2026-03-01", "2026-03-04")

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid room", verr.Message)
		store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("CheckOutNotAfterCheckInFails", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(7)).Return(room, nil)
		svc := newBookingService(store)

		for _, dates := range [][2]string{
			{"2026-03-04", "2026-03-01"},
			{"2026-03-01", "2026-03-01"},
		} {
			_, err := svc.Create(ctx, "user-1", 7, dates[0], dates[1])
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Invalid dates", verr.Message)
		}
		store.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
	})

	t.Run("UnparseableDatesFail", func(t *testing.T) {
		store := new(mockStore)
		store.On("RoomByID", ctx, uint(7)).Return(room, nil)
		svc := newBookingService(store)

		_, err := svc.Create(ctx, "user-1", 7, "next tuesday", "2026-03-04")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid dates", verr.Message)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("UnknownIDIsNotFound", func(t *testing.T) {
		store := new(mockStore)
		store.On("BookingByID", ctx, uint(42)).Return(nil, storage.ErrNotFound)

		svc := newBookingService(store)
		_, err := svc.Cancel(ctx, "user-1", 42)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("OwnershipMismatchIsUnauthorized", func(t *testing.T) {
		store := new(mockStore)
		store.On("BookingByID", ctx, uint(5)).Return(&models.Booking{
			ID: 5, UserID: "someone-else", Status: models.BookingStatusConfirmed,
		}, nil)

		svc := newBookingService(store)
		_, err := svc.Cancel(ctx, "user-1", 5)
		assert.ErrorIs(t, err, ErrUnauthorized)
		store.AssertNotCalled(t, "UpdateBookingStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OwnerCancelFlipsStatus", func(t *testing.T) {
		store := new(mockStore)
		store.On("BookingByID", ctx, uint(5)).Return(&models.Booking{
			ID: 5, UserID: "user-1", Status: models.BookingStatusConfirmed,
		}, nil)
		store.On("UpdateBookingStatus", ctx, uint(5), models.BookingStatusCancelled).Return(&models.Booking{
			ID: 5, UserID: "user-1", Status: models.BookingStatusCancelled,
		}, nil)

		svc := newBookingService(store)
		updated, err := svc.Cancel(ctx, "user-1", 5)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, updated.Status)
		store.AssertExpectations(t)
	})

	t.Run("RecancelStaysCancelled", func(t *testing.T) {
		store := new(mockStore)
		store.On("BookingByID", ctx, uint(5)).Return(&models.Booking{
			ID: 5, UserID: "user-1", Status: models.BookingStatusCancelled,
		}, nil)
		store.On("UpdateBookingStatus", ctx, uint(5), models.BookingStatusCancelled).Return(&models.Booking{
			ID: 5, UserID: "user-1", Status: models.BookingStatusCancelled,
		}, nil)

		svc := newBookingService(store)
		updated, err := svc.Cancel(ctx, "user-1", 5)
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusCancelled, updated.Status)
	})
}

func TestListForUser(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	checkIn := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	store.On("BookingsByUser", ctx, "user-1").Return([]models.BookingDetails{
		{
			Booking:     models.Booking{ID: 1, UserID: "user-1", CheckIn: checkIn},
			RoomDetail:  models.Room{ID: 7, Name: "Standard"},
			HotelDetail: models.Hotel{ID: 1, Name: "Grand Plaza Hotel"},
		},
	}, nil)

	svc := newBookingService(store)
	details, err := svc.ListForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, "Standard", details[0].RoomDetail.Name)
	assert.Equal(t, "Grand Plaza Hotel", details[0].HotelDetail.Name)
}
