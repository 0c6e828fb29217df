package database

import (
	"log"
	"time"

	"github.com/eyesoft/studio-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(1 * time.Minute)

	if err := db.AutoMigrate(&models.Booking{}, &models.PortfolioImage{}, &models.Like{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	// One like per device per image; racing inserts lose here instead of
	// slipping past the handler's existence check
	db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS idx_like_device_image
		ON likes (image_id, device_id)
	`)

	return db
}
