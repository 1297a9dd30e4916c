package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

func TestFormatOf(t *testing.T) {
	tests := map[string]string{
		"out.csv":        dto.FormatCSV,
		"OUT.JSON":       dto.FormatJSON,
		"out.xlsx":       dto.FormatXLSX,
		"no-extension":   dto.FormatXLSX,
		"dir/out.v1.csv": dto.FormatCSV,
	}
	for path, want := range tests {
		assert.Equal(t, want, formatOf(path), path)
	}
}

// limitRepo records the limit it is asked for
type limitRepo struct {
	repository.Nop
	limit int
}

func (r *limitRepo) List(_ context.Context, limit int) ([]model.Transcription, error) {
	r.limit = limit
	return []model.Transcription{{ID: 1, Filename: "a.wav", Text: "hola"}}, nil
}

func TestWriteExportUsesSameDefaultLimitForEveryFormat(t *testing.T) {
	for _, format := range []string{dto.FormatXLSX, dto.FormatCSV, dto.FormatJSON} {
		t.Run(format, func(t *testing.T) {
			repo := &limitRepo{}
			path := filepath.Join(t.TempDir(), "out."+format)

			err := writeExport(context.Background(), services.NewHistoryService(repo), path, dto.ExportRequest{Format: format})
			require.NoError(t, err)

			assert.Equal(t, 10000, repo.limit)
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.NotZero(t, info.Size())
		})
	}
}

type failingExporter struct{}

func (failingExporter) ExportTranscriptions(_ context.Context, _ dto.ExportRequest, w io.Writer) error {
	_, _ = io.WriteString(w, "partial")
	return assert.AnError
}

func TestWriteExportFailureRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	err := writeExport(context.Background(), failingExporter{}, path, dto.ExportRequest{Format: dto.FormatCSV})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NoFileExists(t, path)
}

func TestWriteExportBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.csv")

	err := writeExport(context.Background(), failingExporter{}, path, dto.ExportRequest{})
	assert.ErrorContains(t, err, "failed to create output file")
}
