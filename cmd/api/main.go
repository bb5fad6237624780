package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pollgate/internal/config"
	"pollgate/internal/db"
	httpserver "pollgate/internal/http"
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

	if cfg.Seed {
		if err := seed.Demo(gdb); err != nil {
			log.Fatal().Err(err).Msg("seed failed")
		}
	}

	r := httpserver.NewRouter(gdb)
	log.Info().Str("port", cfg.AppPort).Msg("server listening")
	if err := r.Run(fmt.Sprintf(":%s", cfg.AppPort)); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
