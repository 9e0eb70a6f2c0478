package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-mover/internal/config"
	"github.com/rocketscienceinc/tictactoe-mover/internal/repository"
	"github.com/rocketscienceinc/tictactoe-mover/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-mover/internal/service"
	"github.com/rocketscienceinc/tictactoe-mover/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the move server until SIGINT or SIGTERM.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var scoreRepo repository.ScoreRepository
	if conf.Redis.Enabled {
		if conf.Redis.Host == "" {
			return ErrAddrNotFound
		}
		redisAddr := conf.Redis.GetRedisAddr()

		redisClient, err := storage.New(ctx, redisAddr)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err = redisClient.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		log.Info("Sharing move scores through redis", "addr", redisAddr)
		scoreRepo = repository.NewScoreRepository(redisClient, conf.Redis.TTL)
	}

	scoreCache, err := repository.NewScoreCache(logger, conf.Cache.Size, scoreRepo)
	if err != nil {
		return fmt.Errorf("could not create score cache: %w", err)
	}

	strategy := service.NewStrategyService(logger, scoreCache)
	router := rest.NewRouter(logger, strategy, conf.CORS.AllowedOrigins)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
