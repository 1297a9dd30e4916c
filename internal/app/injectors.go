//go:build !wireinject
// +build !wireinject

// Hand-written counterparts of the injectors in wire.go. Keep them in sync
// with ProviderSet.

package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/api/server"
	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	store, cleanup, err := ProvideCacheStore(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	engine, err := ProvideEngine(cfg, store, logger)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	archiver, err := ProvideArchiver(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	repositoryRepository, cleanup2, err := ProvideRepository(ctx, cfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	registry := ProvideRegistry()
	metrics := ProvideMetrics(registry)
	recorder := ProvideRecorder(metrics)
	serviceContainer := ProvideServiceContainer(engine, archiver, repositoryRepository, recorder, logger)
	serverServer := ProvideServer(cfg, serviceContainer, metrics, registry, engine, logger)
	return serverServer, func() {
		cleanup2()
		cleanup()
	}, nil
}

func InitializeRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	repositoryRepository, cleanup, err := ProvideRepository(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return repositoryRepository, func() {
		cleanup()
	}, nil
}
