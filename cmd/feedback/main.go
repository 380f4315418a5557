package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"feedback-app/internal/adapters/repo"
	"feedback-app/internal/adapters/web"
	"feedback-app/internal/infra/config"
	"feedback-app/internal/infra/db"
	httpinfra "feedback-app/internal/infra/http"
	loginfra "feedback-app/internal/infra/log"
	"feedback-app/internal/infra/metrics"
	feedbackusecase "feedback-app/internal/usecase/feedback"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := loginfra.NewLogger(cfg.Log.Level, cfg.Log.File, cfg.Debug)
	if err != nil {
		stdlog.Fatalf("не удалось настроить логирование: %v", err)
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, err := db.Connect(cfg.DBPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.DBPath).Msg("нет подключения к БД")
	}
	defer conn.Close()

	repoAdapter := repo.NewSQLite(conn)
	service := feedbackusecase.NewService(repoAdapter, logger.With().Str("component", "feedback").Logger())

	handler, err := web.NewHandler(service, cfg.SecretKey, logger.With().Str("component", "web").Logger())
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось собрать обработчики")
	}

	srv := httpinfra.NewServer(logger, cfg.DBPath)
	handler.Routes(srv.Router)

	go func() {
		if err := srv.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error().Err(err).Msg("сервер остановлен")
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("остановка")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown не удался")
	}
}
