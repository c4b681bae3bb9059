package models

type Room struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	HotelID   uint   `gorm:"column:hotel_id;index;not null" json:"hotelId"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Type      string `gorm:"size:100;not null" json:"type"`
	Capacity  int    `gorm:"not null" json:"capacity"`
	Price     int    `gorm:"not null" json:"price"`
	Available *bool  `gorm:"default:true" json:"available"`
	ImageURL  string `gorm:"column:image_url;size:512" json:"imageUrl"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"-"`
}
