package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-engine/internal/commentary"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaultDifficulty, err := entity.ParseDifficulty(conf.Engine.DefaultDifficulty)
	if err != nil {
		return fmt.Errorf("invalid engine config: %w", err)
	}

	var moveCache repository.MoveCache
	if !conf.Engine.CacheDisabled {
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return fmt.Errorf("could not connect to redis storage: %w", err)
		}

		defer func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}()

		moveCache = repository.NewMoveCache(redisStorage.Connection, conf.Redis.CacheTTL)
	} else {
		log.Info("Move cache disabled")
	}

	generator, err := commentary.NewGeminiGenerator(ctx, conf.Commentary.APIKey, conf.Commentary.Model)
	if err != nil {
		return fmt.Errorf("could not create commentary generator: %w", err)
	}
	if generator == nil {
		log.Warn("No commentary API key configured, commentary is offline")
	}

	commentator := commentary.NewService(logger, generator, conf.Commentary.Timeout)
	engine := usecase.NewEngineManager(logger, usecase.NewLockedSource(conf.Engine.Seed), moveCache, commentator)

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	server := rest.New(logger, engine, defaultDifficulty)
	if err = server.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")
	return nil
}
