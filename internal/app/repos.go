package app

import (
	"gorm.io/gorm"

	contentrepo "github.com/trendforge/trendforge-backend/internal/data/repos/content"
	trendrepo "github.com/trendforge/trendforge-backend/internal/data/repos/trend"
	userrepo "github.com/trendforge/trendforge-backend/internal/data/repos/user"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type Repos struct {
	User        userrepo.UserRepo
	UserProfile userrepo.UserProfileRepo
	Trend       trendrepo.TrendRepo
	Content     contentrepo.ContentRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:        userrepo.NewUserRepo(db, log),
		UserProfile: userrepo.NewUserProfileRepo(db, log),
		Trend:       trendrepo.NewTrendRepo(db, log),
		Content:     contentrepo.NewContentRepo(db, log),
	}
}
