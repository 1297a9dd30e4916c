package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/handlers"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	HistoryService       services.HistoryService
	ExportService        services.ExportService
}

// RegisterTranscribe registers POST /transcribe on router
func RegisterTranscribe(router gin.IRoutes, container *ServiceContainer, maxUploadBytes int64) {
	handler := handlers.NewTranscribeHandler(container.TranscriptionService, maxUploadBytes)
	router.POST("/transcribe", handler.Transcribe)
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	if container.HistoryService != nil {
		transcriptionHandler := handlers.NewTranscriptionHandler(container.HistoryService)
		router.GET("/transcriptions", transcriptionHandler.List)
	}

	if container.ExportService != nil {
		exportHandler := handlers.NewExportHandler(container.ExportService)
		router.GET("/export", exportHandler.Export)
	}
}
