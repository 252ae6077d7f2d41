package app

import (
	"time"

	"github.com/dealdesk/dealdesk-backend/internal/pkg/env"
	"github.com/dealdesk/dealdesk-backend/internal/pkg/logger"
)

type Config struct {
	Port           string
	JWTSecretKey   string
	AccessTokenTTL time.Duration
}

func LoadConfig(log *logger.Logger) Config {
	port := env.GetEnv("PORT", "8080", log)
	jwtSecretKey := env.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := env.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	return Config{
		Port:           port,
		JWTSecretKey:   jwtSecretKey,
		AccessTokenTTL: time.Duration(accessTokenTTLSeconds) * time.Second,
	}
}
