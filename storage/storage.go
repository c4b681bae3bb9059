package storage

import (
	"context"
	"errors"

	"stayfinder-backend/models"
)

// ErrNotFound is returned when a lookup matches no row. Implementations
// translate their driver's sentinel so callers never import gorm.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique index.
var ErrDuplicate = errors.New("duplicate record")

// Store is the persistence boundary: one method per entity operation.
// Hotels and rooms are create/read only; bookings are never deleted, a
// cancellation is a status update.
type Store interface {
	Hotels(ctx context.Context) ([]models.Hotel, error)
	HotelByID(ctx context.Context, id uint) (*models.Hotel, error)
	CreateHotel(ctx context.Context, hotel *models.Hotel) error

	RoomsByHotel(ctx context.Context, hotelID uint) ([]models.Room, error)
	RoomByID(ctx context.Context, id uint) (*models.Room, error)
	CreateRoom(ctx context.Context, room *models.Room) error

	CreateBooking(ctx context.Context, booking *models.Booking) error
	BookingByID(ctx context.Context, id uint) (*models.Booking, error)
	BookingsByUser(ctx context.Context, userID string) ([]models.BookingDetails, error)
	AllBookings(ctx context.Context) ([]models.BookingDetails, error)
	UpdateBookingStatus(ctx context.Context, id uint, status string) (*models.Booking, error)

	CreateUser(ctx context.Context, user *models.User) error
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	UserByID(ctx context.Context, id string) (*models.User, error)
}
