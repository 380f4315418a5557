package main

import (
	"context"
	stdlog "log"

	"github.com/joho/godotenv"

	"feedback-app/internal/adapters/repo"
	"feedback-app/internal/infra/config"
	"feedback-app/internal/infra/db"
	loginfra "feedback-app/internal/infra/log"
)

// Примерные отзывы для пустой базы.
var samples = []struct{ user, comment string }{
	{"ilinca", "Great! Very nice."},
	{"John", "I love it."},
	{"mcDonalds", "I'm lovin' it."},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := loginfra.NewLogger(cfg.Log.Level, cfg.Log.File, cfg.Debug)
	if err != nil {
		stdlog.Fatalf("не удалось настроить логирование: %v", err)
	}

	conn, err := db.Connect(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("нет подключения к БД")
	}
	defer conn.Close()

	ctx := context.Background()
	store := repo.NewSQLite(conn)

	existing, err := store.ListAll(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось прочитать базу")
	}
	if len(existing) > 0 {
		logger.Info().Int("count", len(existing)).Msg("база уже заполнена, пропускаем")
		return
	}

	for _, s := range samples {
		if _, err := store.Create(ctx, s.user, s.comment); err != nil {
			logger.Fatal().Err(err).Str("user", s.user).Msg("не удалось добавить пример")
		}
	}
	logger.Info().Int("count", len(samples)).Msg("примеры добавлены")
}
