package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	distributionservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service"
	distributionpostgres "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/distribution-service/adapters/postgres"
	documentservice "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service"
	"github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/distribution"
	documentpostgres "github.com/ronicarlos/docflow-sub002/contexts/quality-docs/document-service/adapters/postgres"
	"github.com/ronicarlos/docflow-sub002/internal/platform/config"
	"github.com/ronicarlos/docflow-sub002/internal/platform/db"
	"github.com/ronicarlos/docflow-sub002/internal/platform/httpserver"
	"github.com/ronicarlos/docflow-sub002/internal/platform/metrics"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
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

	distributionRepo := distributionpostgres.NewRepository(pg.DB, logger)
	documentRepo := documentpostgres.NewRepository(pg.DB, logger)
	if cfg.AutoMigrate {
		if err := distributionRepo.AutoMigrate(); err != nil {
			return nil, err
		}
		if err := documentRepo.AutoMigrate(); err != nil {
			return nil, err
		}
	}

	metrics.Init()
	distributionModule := distributionservice.NewModule(distributionservice.Dependencies{
		Rules:         distributionRepo,
		Users:         distributionRepo,
		Notifications: distributionRepo,
		EventLogs:     distributionRepo,
		Clock:         distributionpostgres.SystemClock{},
		IDGen:         distributionpostgres.UUIDGenerator{},
		Metrics:       metrics.Recorder{},
		Logger:        logger,
	})

	documentModule := documentservice.NewModule(documentservice.Dependencies{
		Documents:   documentRepo,
		Distributor: distribution.Notifier{Commands: distributionModule.Handler.Commands},
		Clock:       documentpostgres.SystemClock{},
		IDGen:       documentpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(
		documentModule,
		distributionModule,
		metrics.Handler(),
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
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
	if a.postgres != nil {
		return a.postgres.Close()
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
