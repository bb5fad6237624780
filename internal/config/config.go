package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DSN     string
	AppPort string
	Seed    bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env file not found, using system environment variables")
	}

	cfg := Config{
		DSN:     os.Getenv("MYSQL_DSN"),
		AppPort: os.Getenv("APP_PORT"),
		Seed:    os.Getenv("APP_SEED") == "1",
	}

	if cfg.DSN == "" {
		log.Fatal().Msg("MYSQL_DSN not set in environment")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}
