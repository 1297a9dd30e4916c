//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/internal/api/server"
	"github.com/JesusPQ15/Transcription-page/internal/config"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

func InitializeServer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*server.Server, func(), error) {
	wire.Build(ProviderSet)
	return nil, nil, nil
}

func InitializeRepository(ctx context.Context, cfg *config.Config) (repository.Repository, func(), error) {
	wire.Build(ProvideRepository)
	return nil, nil, nil
}
