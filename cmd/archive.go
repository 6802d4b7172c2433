package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

var (
	archivePath  string
	archiveLimit int
	archiveFull  bool
)

// archiveCmd represents the archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "List past generated scripts",
	Long: `List scripts from the local generation archive, newest first.

By default only a preview of each script is shown; use --full for the whole
text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := internal.OpenArchive(resolveArchivePath())
		if err != nil {
			return fmt.Errorf("failed to open archive: %w", err)
		}
		defer func() { _ = archive.Close() }()

		entries, err := archive.List(archiveLimit)
		if err != nil {
			return fmt.Errorf("failed to list archive: %w", err)
		}
		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Archive is empty.")
			return nil
		}

		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
				topicStyle.Render(e.Topic),
				idStyle.Render(e.Model),
				dateStyle.Render(e.CreatedAt.Local().Format("2006-01-02 15:04")))
			fmt.Fprintln(cmd.OutOrStdout(), preview(e.Output))
			fmt.Fprintln(cmd.OutOrStdout())
		}
		return nil
	},
}

func preview(text string) string {
	if archiveFull {
		return text
	}
	const max = 200
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max]) + "…"
}

// resolveArchivePath places the archive next to the config file.
func resolveArchivePath() string {
	if archivePath != "" {
		return archivePath
	}
	dir := filepath.Dir(internal.ResolveConfigPath(configPath))
	if dir == "" {
		dir = "."
	}
	if _, err := os.Stat(dir); err != nil {
		dir = "."
	}
	return filepath.Join(dir, "scriptmaster.db")
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVar(&archivePath, "archive", "", "Archive database path")
	archiveCmd.Flags().IntVarP(&archiveLimit, "limit", "n", 10, "Maximum entries to show")
	archiveCmd.Flags().BoolVar(&archiveFull, "full", false, "Show the full script text")
}
