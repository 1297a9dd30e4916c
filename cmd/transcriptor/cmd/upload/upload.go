package upload

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/setup"
	"github.com/JesusPQ15/Transcription-page/internal/client"
	"github.com/JesusPQ15/Transcription-page/internal/terminal"
	"github.com/JesusPQ15/Transcription-page/internal/uploader"
)

var (
	filePath string
	baseURL  string
	pickDir  string
)

// errNotTranscribed is returned when the page did not end with a transcription
var errNotTranscribed = errors.New("no transcription received")

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "", "audio file to upload (opens a picker when omitted)")
	Cmd.Flags().StringVarP(&baseURL, "url", "u", "", "server base URL (default from config)")
	Cmd.Flags().StringVar(&pickDir, "dir", ".", "start directory for the file picker")
}

// Cmd represents the upload command
var Cmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload an audio file to a running server and print its transcription",
	Long: `Upload an audio file to a running server and print its transcription

- Supported formats: opus, mp3, wav, m4a
- Without --file an interactive picker is shown when stdin is a terminal`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if baseURL != "" {
			cfg.Client.BaseURL = baseURL
		}

		page := terminal.NewPage(cmd.OutOrStdout(), cmd.ErrOrStderr())
		switch {
		case filePath != "":
			page.Input.Select(filePath)
		case isTerminal(os.Stdin):
			if err := page.Pick(pickDir); err != nil {
				return err
			}
		}

		handler, err := uploader.Bind(cmd.Context(), page, client.New(cfg.Client.BaseURL), logger)
		if err != nil {
			return err
		}

		page.Button.Press()
		handler.Wait()

		if !page.Succeeded() {
			return errNotTranscribed
		}
		return nil
	},
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
