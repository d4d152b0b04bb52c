package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oporabot/internal/config"
	"oporabot/internal/database"
	"oporabot/internal/flow"
	"oporabot/internal/logging"
	"oporabot/internal/models"
	"oporabot/internal/repository"
	"oporabot/internal/service"
	maxtransport "oporabot/internal/transport/max"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath, config.TransportMax)
	if err != nil {
		return err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}
	logger := baseLogger.With().Str("component", "max-main").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Error().Err(err).Msg("Ошибка инициализации базы данных")
		return err
	}
	defer db.Close()

	redisClient, sessions := initSessionService(ctx, cfg, &logger)
	defer func() {
		if redisClient != nil {
			_ = repository.Close(redisClient)
		}
	}()

	var metrics *flow.Metrics
	if cfg.Monitoring.PrometheusEnabled {
		metrics = flow.NewMetrics()
		go serveMetrics(cfg.Monitoring.PrometheusPort, &logger)
	}

	client := maxtransport.NewClient(cfg.Max, &logger)

	info, err := client.GetMe(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Ошибка проверки токена MAX")
		return err
	}
	logger.Info().Str("username", info.Username).Msg("Authorized on account")

	dispatcher := flow.NewDispatcher(sessions, client, db, metrics, cfg.Admins, &logger)
	poller := maxtransport.NewPoller(client, dispatcher, cfg.Max, &logger)

	logger.Info().Msg("Бот запущен...")
	poller.Run(ctx)

	logger.Info().Msg("Shutdown complete.")
	return nil
}

func initSessionService(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (*redis.Client, *service.SessionService) {
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = repository.NewRedisClient(cfg.Redis)
		if errPing := repository.Ping(ctx, redisClient); errPing != nil {
			logger.Warn().Err(errPing).Msg("Redis unavailable")
		}
	}

	ttl := time.Duration(models.SessionTTL) * time.Second
	primaryRepo := repository.NewRedisSessionRepository(redisClient, ttl)
	fallbackRepo := repository.NewMemorySessionRepository(ttl)
	sessionRepo := repository.NewFailoverSessionRepository(primaryRepo, fallbackRepo, logger)
	return redisClient, service.NewSessionService(sessionRepo, logger)
}

func serveMetrics(port int, logger *zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	logger.Info().Str("addr", addr).Msg("Metrics server started")
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error().Err(err).Msg("Metrics server error")
	}
}
