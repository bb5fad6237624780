package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pollgate/internal/config"
	"pollgate/internal/db"
	"pollgate/internal/logger"
	"pollgate/internal/models"
	"pollgate/internal/seed"
)

func main() {
	cfg := config.Load()
	logger.Configure(zerolog.InfoLevel)

	gdb := db.Connect(cfg.DSN)
	db.AutoMigrate(gdb,
		&models.Poll{},
		&models.AccessCode{},
		&models.Option{},
		&models.Vote{},
		&models.AuditLog{},
	)

	if err := seed.Demo(gdb); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
