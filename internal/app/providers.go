// Package app assembles the server from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/api/middleware"
	"github.com/JesusPQ15/Transcription-page/internal/api/server"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/routes"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
	"github.com/JesusPQ15/Transcription-page/internal/cache"
	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/logging"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
	"github.com/JesusPQ15/Transcription-page/internal/repository/pg"
	"github.com/JesusPQ15/Transcription-page/internal/repository/sqlite"
	"github.com/JesusPQ15/Transcription-page/internal/storage"
	"github.com/JesusPQ15/Transcription-page/internal/transcription"
)

// ProviderSet builds a *server.Server from a *config.Config and a logger
var ProviderSet = wire.NewSet(
	ProvideCacheStore,
	ProvideEngine,
	ProvideArchiver,
	ProvideRepository,
	ProvideRegistry,
	ProvideMetrics,
	ProvideRecorder,
	ProvideServiceContainer,
	ProvideServer,
)

// ProvideCacheStore connects to redis when a URL is configured. A nil store disables caching.
func ProvideCacheStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (cache.Store, func(), error) {
	if cfg.Cache.RedisURL == "" {
		return nil, func() {}, nil
	}

	store, err := cache.NewRedisStore(ctx, cfg.Cache.RedisURL)
	if err != nil {
		return nil, nil, err
	}
	logging.OrNop(logger).Info("transcription cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	return store, func() { store.Close() }, nil
}

// ProvideEngine builds the configured engine, wrapped by the cache when store is set
func ProvideEngine(cfg *config.Config, store cache.Store, logger *zap.Logger) (transcription.Engine, error) {
	engine, err := transcription.New(cfg.Engine, logger)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return engine, nil
	}
	return transcription.NewCached(engine, store, cfg.Cache.TTL, logger), nil
}

// ProvideArchiver returns the MinIO archiver when an endpoint is configured
func ProvideArchiver(ctx context.Context, cfg *config.Config) (storage.Archiver, error) {
	if cfg.Storage.Endpoint == "" {
		return storage.Nop{}, nil
	}

	archiver, err := storage.NewMinioArchiver(cfg.Storage)
	if err != nil {
		return nil, err
	}
	if err := archiver.EnsureBucket(ctx); err != nil {
		return nil, err
	}
	return archiver, nil
}

// ProvideRepository opens the history store selected by cfg.History.Driver
func ProvideRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	var (
		repo repository.Repository
		err  error
	)

	switch cfg.History.Driver {
	case "none":
		return repository.Nop{}, func() {}, nil
	case "sqlite", "":
		path := cfg.History.DSN
		if path == "" {
			path = config.DefaultSQLitePath
		}
		repo, err = sqlite.Open(path)
	case "postgres":
		repo, err = pg.Open(ctx, cfg.History.DSN)
	default:
		return nil, nil, fmt.Errorf("unknown history driver %q", cfg.History.Driver)
	}
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { repo.Close() }, nil
}

// ProvideRegistry creates the metrics registry with the process collectors
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics registers the HTTP and transcription collectors
func ProvideMetrics(reg *prometheus.Registry) *middleware.Metrics {
	return middleware.NewMetrics(reg)
}

// ProvideRecorder exposes the metrics as a transcription recorder
func ProvideRecorder(metrics *middleware.Metrics) services.Recorder {
	return metrics
}

// ProvideServiceContainer builds the services behind the routes
func ProvideServiceContainer(engine transcription.Engine, archiver storage.Archiver, repo repository.Repository, recorder services.Recorder, logger *zap.Logger) *routes.ServiceContainer {
	history := services.NewHistoryService(repo)
	return &routes.ServiceContainer{
		TranscriptionService: services.NewTranscriptionService(engine, archiver, repo, recorder, logger),
		HistoryService:       history,
		ExportService:        history,
	}
}

// ProvideServer builds the HTTP server
func ProvideServer(cfg *config.Config, container *routes.ServiceContainer, metrics *middleware.Metrics, reg *prometheus.Registry, engine transcription.Engine, logger *zap.Logger) *server.Server {
	return server.NewServer(cfg.Server, server.Options{
		Environment: cfg.Environment,
		EngineName:  engine.Name(),
		Metrics:     metrics,
		Gatherer:    reg,
	}, container, logger)
}
