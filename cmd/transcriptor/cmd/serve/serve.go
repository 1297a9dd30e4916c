package serve

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/setup"
	"github.com/JesusPQ15/Transcription-page/internal/app"
)

var port string

func init() {
	Cmd.Flags().StringVarP(&port, "port", "p", "", "override the listen port")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the transcription page and API",
	Long: `Start the transcription page and API

- GET / serves the upload page
- POST /transcribe accepts a multipart "file" field and returns {"filename","text"}
- /api/v1 exposes the stored history, /metrics and /health are for operators`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if port != "" {
			cfg.Server.Port = port
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv, cleanup, err := app.InitializeServer(ctx, cfg, logger)
		if err != nil {
			logger.Error("failed to initialize server", zap.Error(err))
			return err
		}
		defer cleanup()

		return srv.Run(ctx)
	},
}
