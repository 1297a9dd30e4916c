package services

import (
	"context"
	"io"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/model"
)

// Upload is one file received by POST /transcribe
type Upload struct {
	RequestID string
	Filename  string
	Data      []byte
}

// TranscriptionService defines the interface for transcription operations
type TranscriptionService interface {
	Transcribe(ctx context.Context, upload Upload) (*dto.TranscribeResponse, error)
	EngineName() string
}

// HistoryService defines the interface for history operations
type HistoryService interface {
	ListTranscriptions(ctx context.Context, limit int) ([]model.Transcription, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	ExportTranscriptions(ctx context.Context, req dto.ExportRequest, writer io.Writer) error
}

// Recorder observes transcription outcomes
type Recorder interface {
	ObserveTranscription(engine string, sizeBytes int64, err error)
}
