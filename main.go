package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jurijkreutz/spielbar/internal/daily"
	"github.com/jurijkreutz/spielbar/internal/httpserver"
	"github.com/jurijkreutz/spielbar/internal/seed"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	db, err := openDB(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	// DAILY_SALT is extra seed keying material; it must never change once
	// boards derived from it have been persisted.
	deriver := seed.New(os.Getenv("DAILY_SALT"))
	svc := daily.NewService(
		daily.NewBoardStore(db, deriver),
		daily.NewAttemptStore(db),
		time.Now,
	)

	srv := httpserver.New(svc)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting daily puzzle server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
