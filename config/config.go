package config

import (
	"fmt"

	"github.com/ardanlabs/conf/v3"
	"github.com/joho/godotenv"
)

// Config holds every environment-supplied setting for the service. The
// record-store credentials are read once at process start; there is no
// re-read or hot reload.
type Config struct {
	MongoURI           string `conf:"default:mongodb://localhost:27017,env:MONGODB_URI"`
	MongoDB            string `conf:"default:pantrydb,env:MONGO_DB"`
	RedisURL           string `conf:"default:redis://localhost:6379,env:REDIS_URL"`
	HTTPAddr           string `conf:"default::10000,env:HTTP_ADDR"`
	LogLevel           string `conf:"default:info,env:LOG_LEVEL"`
	CORSAllowedOrigins string `conf:"default:*,env:CORS_ALLOWED_ORIGINS"`
}

// Load reads configuration from the environment, with a .env file as an
// optional fallback for local development.
func Load() (*Config, error) {
	var cfg Config
	_ = godotenv.Load()
	if _, err := conf.Parse("", &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}
