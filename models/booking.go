package models

import "time"

const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"column:user_id;size:64;index;not null" json:"userId"`
	RoomID     uint      `gorm:"column:room_id;index;not null" json:"roomId"`
	CheckIn    time.Time `gorm:"column:check_in;not null" json:"checkIn"`
	CheckOut   time.Time `gorm:"column:check_out;not null" json:"checkOut"`
	TotalPrice int       `gorm:"column:total_price;not null" json:"totalPrice"`
	Status     string    `gorm:"size:32;default:confirmed" json:"status"`
	CreatedAt  time.Time `json:"createdAt"`

	Room Room `gorm:"foreignKey:RoomID;references:ID" json:"-"`
}

// BookingDetails is the composite read for "my bookings" and the admin
// export: a booking together with its room and that room's hotel.
type BookingDetails struct {
	Booking
	RoomDetail  Room  `json:"room"`
	HotelDetail Hotel `json:"hotel"`
}
