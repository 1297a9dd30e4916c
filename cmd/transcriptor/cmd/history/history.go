package history

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/JesusPQ15/Transcription-page/cmd/transcriptor/cmd/setup"
	"github.com/JesusPQ15/Transcription-page/internal/app"
	"github.com/JesusPQ15/Transcription-page/internal/model"
	"github.com/JesusPQ15/Transcription-page/internal/repository"
)

var limit int

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", repository.DefaultListLimit, "number of rows to show")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List the latest stored transcriptions",
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

		rows, err := repo.List(cmd.Context(), repository.NormalizeLimit(limit))
		if err != nil {
			return err
		}
		render(cmd.OutOrStdout(), rows)
		return nil
	},
}

func render(w io.Writer, rows []model.Transcription) {
	if len(rows) == 0 {
		fmt.Fprintln(w, "no transcriptions yet")
		return
	}

	fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("%-6s %-20s %-14s %-28s %s", "ID", "CREATED", "ENGINE", "FILE", "TEXT")))
	for _, t := range rows {
		text := truncate(strings.ReplaceAll(t.Text, "\n", " "), 80)
		if t.Failed() {
			text = failedStyle.Render(truncate("error: "+t.Error, 80))
		}
		fmt.Fprintf(w, "%-6d %-20s %-14s %-28s %s\n",
			t.ID,
			t.CreatedAt.Local().Format(time.DateTime),
			t.Engine,
			truncate(t.Filename, 28),
			text,
		)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
