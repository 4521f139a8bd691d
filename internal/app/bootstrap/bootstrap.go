// Package bootstrap is the composition root. Keep construction and wiring
// here so module code stays framework-agnostic.
package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	listing "atelier/contexts/catalog/listing-service"
	listingpostgres "atelier/contexts/catalog/listing-service/adapters/postgres"
	cart "atelier/contexts/commerce/cart-service"
	cartpostgres "atelier/contexts/commerce/cart-service/adapters/postgres"
	cartworkers "atelier/contexts/commerce/cart-service/application/workers"
	authorization "atelier/contexts/identity-access/authorization-service"
	authmemory "atelier/contexts/identity-access/authorization-service/adapters/memory"
	authpostgres "atelier/contexts/identity-access/authorization-service/adapters/postgres"
	authredis "atelier/contexts/identity-access/authorization-service/adapters/redis"
	authworkers "atelier/contexts/identity-access/authorization-service/application/workers"
	authzports "atelier/contexts/identity-access/authorization-service/ports"
	"atelier/internal/platform/config"
	"atelier/internal/platform/db"
	"atelier/internal/platform/httpserver"
	"atelier/internal/platform/messaging"

	"github.com/redis/go-redis/v9"
)

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	redis    *redis.Client
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	kafka        *messaging.Kafka
	authzRelay   authworkers.OutboxRelay
	cartRelay    cartworkers.OutboxRelay
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	// Redis is optional; without it principal lookups fall back to an
	// in-process cache, which is fine for a single API instance.
	var redisClient *redis.Client
	var principalCache authzports.PrincipalCache
	if strings.TrimSpace(cfg.RedisAddr) != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		principalCache = authredis.NewPrincipalCache(redisClient)
	} else {
		principalCache = authmemory.NewStore()
	}

	authRepo := authpostgres.NewRepository(pg.DB, logger)
	authModule := authorization.NewModule(authorization.Dependencies{
		Principals:        authRepo,
		Roles:             authRepo,
		Ownership:         authRepo,
		PrincipalCache:    principalCache,
		Clock:             authpostgres.SystemClock{},
		IDGenerator:       authpostgres.UUIDGenerator{},
		PrincipalCacheTTL: cfg.PrincipalCacheTTL,
		Logger:            logger,
	})

	cartRepo := cartpostgres.NewRepository(pg.DB, logger)
	cartModule := cart.NewModule(cart.Dependencies{
		Carts:  cartRepo,
		Clock:  cartpostgres.SystemClock{},
		Logger: logger,
	})

	listingRepo := listingpostgres.NewRepository(pg.DB, logger)
	listingModule := listing.NewModule(listing.Dependencies{
		Repo:        listingRepo,
		Clock:       listingpostgres.SystemClock{},
		IDGenerator: listingpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(authModule, cartModule, listingModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		redis:    redisClient,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_BROKERS is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka := messaging.NewKafka(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
	authRepo := authpostgres.NewRepository(pg.DB, logger)
	cartRepo := cartpostgres.NewRepository(pg.DB, logger)

	return &WorkerApp{
		postgres: pg,
		kafka:    kafka,
		authzRelay: authworkers.OutboxRelay{
			Outbox:    authRepo,
			Publisher: kafka,
			Clock:     authpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		cartRelay: cartworkers.OutboxRelay{
			Outbox:    cartRepo,
			Publisher: kafka,
			Clock:     cartpostgres.SystemClock{},
			BatchSize: cfg.OutboxBatchSize,
			Logger:    logger,
		},
		pollInterval: cfg.OutboxPollInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			return err
		}
	}
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	interval := w.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", interval.String(),
	)

	for {
		if err := w.authzRelay.RunOnce(ctx); err != nil {
			return err
		}
		if err := w.cartRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.kafka != nil {
		if err := w.kafka.Close(); err != nil {
			return err
		}
	}
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
