// @title        Storefront Gateway API
// @version      1.0
// @description  Session-aware gateway between the storefront UI and the shop REST backend.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tooswasher/storefront/internal/api"
	"github.com/tooswasher/storefront/internal/core/ports"
	"github.com/tooswasher/storefront/internal/core/service"
	"github.com/tooswasher/storefront/internal/infrastructure/backend"
	"github.com/tooswasher/storefront/internal/infrastructure/config"
	mongodb "github.com/tooswasher/storefront/internal/infrastructure/db/mongo"
	redisdb "github.com/tooswasher/storefront/internal/infrastructure/db/redis"
	"github.com/tooswasher/storefront/internal/infrastructure/tokenstore"
	"github.com/tooswasher/storefront/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "storefront-gateway",
	})

	decimal.MarshalJSONWithoutQuotes = true

	storage, closeStorage, err := openTokenStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("storage", cfg.Session.Storage).Msg("failed to open token storage")
	}
	defer closeStorage()

	client := backend.New(backend.Config{
		BaseURL:   cfg.Backend.BaseURL,
		Timeout:   cfg.Backend.Timeout,
		UserAgent: "storefront-gateway/1.0",
	}, logger.Component("backend"))

	sessions := service.NewSessionService(client, logger.Component("session"))
	nav := service.NewNavService(sessions, client, logger.Component("nav"))
	cart := service.NewCartService(client, logger.Component("cart"))

	e := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Log:      log,
		Storage:  storage,
		Backend:  client,
		Sessions: sessions,
		Nav:      nav,
		Cart:     cart,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.BaseURL).Msg("storefront gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// openTokenStorage picks the token storage backend named by TOKEN_STORAGE.
func openTokenStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (ports.TokenStorage, func(), error) {
	switch cfg.Session.Storage {
	case config.StorageRedis:
		client, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("addr", cfg.Redis.Addr).Msg("token storage: redis")
		return redisdb.NewTokenStorage(client, cfg.Session.TTL), func() { _ = client.Close() }, nil

	case config.StorageMongo:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		storage := mongodb.NewTokenStorage(db, cfg.Session.TTL)
		if err := storage.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, nil, err
		}
		log.Info().Str("database", cfg.Mongo.Database).Msg("token storage: mongo")
		return storage, func() { _ = client.Disconnect(context.Background()) }, nil

	default:
		log.Info().Msg("token storage: memory")
		return tokenstore.NewMemoryStorage(cfg.Session.TTL), func() {}, nil
	}
}
