package app

import (
	"github.com/trendforge/trendforge-backend/internal/http/middleware"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *middleware.AuthMiddleware
}

func wireMiddleware(log *logger.Logger, cfg Config, repos Repos) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: middleware.NewAuthMiddleware(log, repos.User, cfg.JWTSecretKey),
	}
}
