package storage

import (
	"context"
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stayfinder-backend/models"
)

// GormStore implements Store on top of a gorm MySQL connection.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var mysqlErr *mysqldrv.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrDuplicate
	}
	if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return ErrDuplicate
	}
	return err
}

func (s *GormStore) Hotels(ctx context.Context) ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.db.WithContext(ctx).Find(&hotels).Error
	return hotels, translateErr(err)
}

func (s *GormStore) HotelByID(ctx context.Context, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &hotel, nil
}

func (s *GormStore) CreateHotel(ctx context.Context, hotel *models.Hotel) error {
	return translateErr(s.db.WithContext(ctx).Create(hotel).Error)
}

func (s *GormStore) RoomsByHotel(ctx context.Context, hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := s.db.WithContext(ctx).Where("hotel_id = ?", hotelID).Find(&rooms).Error
	return rooms, translateErr(err)
}

func (s *GormStore) RoomByID(ctx context.Context, id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.WithContext(ctx).First(&room, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &room, nil
}

func (s *GormStore) CreateRoom(ctx context.Context, room *models.Room) error {
	return translateErr(s.db.WithContext(ctx).Create(room).Error)
}

func (s *GormStore) CreateBooking(ctx context.Context, booking *models.Booking) error {
	return translateErr(s.db.WithContext(ctx).Create(booking).Error)
}

func (s *GormStore) BookingByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &booking, nil
}

func (s *GormStore) bookingDetails(ctx context.Context, conds ...interface{}) ([]models.BookingDetails, error) {
	q := s.db.WithContext(ctx).Preload("Room.Hotel")
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, translateErr(err)
	}

	details := make([]models.BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		details = append(details, models.BookingDetails{
			Booking:     b,
			RoomDetail:  b.Room,
			HotelDetail: b.Room.Hotel,
		})
	}
	return details, nil
}

func (s *GormStore) BookingsByUser(ctx context.Context, userID string) ([]models.BookingDetails, error) {
	return s.bookingDetails(ctx, "user_id = ?", userID)
}

func (s *GormStore) AllBookings(ctx context.Context) ([]models.BookingDetails, error) {
	return s.bookingDetails(ctx)
}

func (s *GormStore) UpdateBookingStatus(ctx context.Context, id uint, status string) (*models.Booking, error) {
	if err := s.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return nil, translateErr(err)
	}
	return s.BookingByID(ctx, id)
}

func (s *GormStore) CreateUser(ctx context.Context, user *models.User) error {
	return translateErr(s.db.WithContext(ctx).Create(user).Error)
}

func (s *GormStore) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}

func (s *GormStore) UserByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translateErr(err)
	}
	return &user, nil
}
