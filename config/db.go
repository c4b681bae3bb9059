package config

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stayfinder-backend/models"
)

// ConnectDatabase opens the MySQL connection, runs migrations in
// parent-before-child order and seeds the starter catalog.
func ConnectDatabase(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
		},
	)

	db, err := gorm.Open(mysql.Open(cfg.DSN()), &gorm.Config{Logger: gormLogger})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		return nil, err
	}

	if err := SeedDatabase(db); err != nil {
		return nil, err
	}
	return db, nil
}

func boolPtr(v bool) *bool { return &v }

// SeedDatabase inserts the demo catalog when the hotels table is empty.
func SeedDatabase(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	grandPlaza := models.Hotel{
		Name:        "Grand Plaza Hotel",
		Description: "Luxury stay in the heart of the city.",
		Address:     "123 Main St, New York, NY",
		Rating:      5,
		MinPrice:    200,
		ImageURL:    "https://images.unsplash.com/photo-1566073771259-6a8506099945?auto=format&fit=crop&w=800&q=80",
	}
	if err := db.Create(&grandPlaza).Error; err != nil {
		return err
	}
	seasideResort := models.Hotel{
		Name:        "Seaside Resort",
		Description: "Relax by the ocean with stunning views.",
		Address:     "45 Ocean Dr, Miami, FL",
		Rating:      4,
		MinPrice:    150,
		ImageURL:    "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?auto=format&fit=crop&w=800&q=80",
	}
	if err := db.Create(&seasideResort).Error; err != nil {
		return err
	}
	mountainLodge := models.Hotel{
		Name:        "Mountain Lodge",
		Description: "Cozy cabin vibes with modern amenities.",
		Address:     "789 Pine Way, Denver, CO",
		Rating:      4,
		MinPrice:    120,
		ImageURL:    "https://images.unsplash.com/photo-1445019980597-93fa8acb246c?auto=format&fit=crop&w=800&q=80",
	}
	if err := db.Create(&mountainLodge).Error; err != nil {
		return err
	}

	rooms := []models.Room{
		{
			HotelID:   grandPlaza.ID,
			Name:      "Executive Suite",
			Type:      "Suite",
			Capacity:  2,
			Price:     350,
			Available: boolPtr(true),
			ImageURL:  "https://images.unsplash.com/photo-1631049307204-6c0b3b44b20a?auto=format&fit=crop&w=800&q=80",
		},
		{
			HotelID:   grandPlaza.ID,
			Name:      "Standard King",
			Type:      "Double",
			Capacity:  2,
			Price:     200,
			Available: boolPtr(true),
			ImageURL:  "https://images.unsplash.com/photo-1590490360182-c33d57733427?auto=format&fit=crop&w=800&q=80",
		},
		{
			HotelID:   seasideResort.ID,
			Name:      "Ocean View Room",
			Type:      "Double",
			Capacity:  2,
			Price:     250,
			Available: boolPtr(true),
			ImageURL:  "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?auto=format&fit=crop&w=800&q=80",
		},
	}
	if err := db.Create(&rooms).Error; err != nil {
		return err
	}

	log.Println("Seeded starter catalog: 3 hotels, 3 rooms")
	return nil
}
