package app

import (
	"github.com/trendforge/trendforge-backend/internal/pkg/envutil"
	"github.com/trendforge/trendforge-backend/internal/pkg/logger"
)

type Config struct {
	JWTSecretKey string
	Port         string
}

func LoadConfig(log *logger.Logger) Config {
	return Config{
		JWTSecretKey: envutil.GetEnv("JWT_SECRET_KEY", "defaultsecret", log),
		Port:         envutil.GetEnv("PORT", "8080", log),
	}
}
