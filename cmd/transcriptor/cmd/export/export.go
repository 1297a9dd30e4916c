package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/setup"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/dto"
	"github.com/JesusPQ15/Transcription-page/internal/api/v1/services"
	"github.com/JesusPQ15/Transcription-page/internal/app"
)

var (
	outputFilePath string
	limit          int
)

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "output file, the extension selects xlsx, csv or json")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of rows (0 exports up to 10000)")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the stored transcriptions to a file",
	Long: `Export the stored transcriptions to a file

- .xlsx writes an Excel workbook, .csv and .json are also supported
- Newest rows come first`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		repo, cleanup, err := app.InitializeRepository(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer cleanup()

		req := dto.ExportRequest{Format: formatOf(outputFilePath), Limit: limit}
		if err := writeExport(cmd.Context(), services.NewHistoryService(repo), outputFilePath, req); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "export finished, exported file path: %v\n", outputFilePath)
		return nil
	},
}

// writeExport writes the export to path. A failed export leaves no file behind.
func writeExport(ctx context.Context, exporter services.ExportService, path string, req dto.ExportRequest) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return exporter.ExportTranscriptions(ctx, req, f)
}

func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return dto.FormatCSV
	case ".json":
		return dto.FormatJSON
	default:
		return dto.FormatXLSX
	}
}
