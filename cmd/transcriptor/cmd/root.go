package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/export"
	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/history"
	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/serve"
	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/setup"
	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/upload"
	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "transcriptor",
	Short: "Upload audio files and get their transcription",
	Long: `Upload audio files and get their transcription.

- serve starts the web page and the /transcribe endpoint
- upload sends one file to a running server from the terminal
- history and export read the stored transcriptions`,
	SilenceUsage:     true,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(upload.Cmd)
	rootCmd.AddCommand(history.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&setup.ConfigPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&setup.Verbose, "verbose", "V", false, "verbose output")
}
