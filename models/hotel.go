package models

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Address     string         `gorm:"type:text;not null" json:"address"`
	ImageURL    string         `gorm:"column:image_url;size:512;not null" json:"imageUrl"`
	Rating      int            `gorm:"default:0" json:"rating"`
	MinPrice    int            `gorm:"column:min_price;not null" json:"minPrice"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// HotelWithRooms is the detail-view shape: the hotel merged with its room list.
type HotelWithRooms struct {
	Hotel
	Rooms []Room `json:"rooms"`
}
