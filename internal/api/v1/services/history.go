package services

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/export"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

// defaultExportLimit caps an export without an explicit limit
const defaultExportLimit = 10000

// HistoryServiceImpl reads and exports the transcription history
type HistoryServiceImpl struct {
	repo repository.Repository
}

// NewHistoryService creates a new history service
func NewHistoryService(repo repository.Repository) *HistoryServiceImpl {
	if repo == nil {
		repo = repository.Nop{}
	}
	return &HistoryServiceImpl{repo: repo}
}

// ListTranscriptions returns the newest rows first
func (s *HistoryServiceImpl) ListTranscriptions(ctx context.Context, limit int) ([]model.Transcription, error) {
	return s.repo.List(ctx, repository.NormalizeLimit(limit))
}

// ExportTranscriptions writes the history in the requested format
func (s *HistoryServiceImpl) ExportTranscriptions(ctx context.Context, req dto.ExportRequest, writer io.Writer) error {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultExportLimit
	}

	transcriptions, err := s.repo.List(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch transcriptions: %w", err)
	}

	switch req.Format {
	case dto.FormatCSV:
		return exportCSV(transcriptions, writer)
	case dto.FormatJSON:
		return json.NewEncoder(writer).Encode(transcriptions)
	case dto.FormatXLSX, "":
		return export.Write(transcriptions, writer)
	default:
		return fmt.Errorf("unsupported export format: %s", req.Format)
	}
}

func exportCSV(transcriptions []model.Transcription, writer io.Writer) error {
	csvWriter := csv.NewWriter(writer)

	if err := csvWriter.Write(export.Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, t := range transcriptions {
		record := []string{
			strconv.FormatInt(t.ID, 10),
			t.RequestID,
			t.CreatedAt.Format(time.RFC3339),
			t.Filename,
			t.Engine,
			strconv.FormatInt(t.SizeBytes, 10),
			t.Text,
			t.Error,
			t.ArchiveKey,
		}
		if err := csvWriter.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}
