package db

import (
	"gorm.io/gorm"

	types "github.com/trendforge/trendforge-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Identity
		&types.User{},
		&types.UserProfile{},

		// Trends
		&types.Trend{},

		// Generated content
		&types.Content{},
	)
}
