package cmd

import (
	"fmt"
	"os"

	"github.com/hanseo/scriptmaster/internal/export"
	"github.com/spf13/cobra"
)

var (
	showFormat   string
	exportOutput string
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect, back up and restore the config file",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current config",
	Long:  `Show the current composed config in json, yaml or markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		exporter, err := export.NewExporter(showFormat)
		if err != nil {
			return err
		}
		return exporter.Export(session.Document(), cmd.OutOrStdout())
	},
}

var configExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the config document for backup",
	Long: `Write the full config document, exactly as the store persists it, to a
file or stdout. The output can be re-imported later, including into newer
versions of the tool.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		data, err := session.ExportConfig()
		if err != nil {
			return fmt.Errorf("failed to export config: %w", err)
		}
		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported config to %s\n", exportOutput)
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a config document",
	Long: `Replace the backing config file with the given document and reload it.

Documents written by any earlier version of the tool are migrated on load.
Nothing is overwritten when the document does not parse.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		if err := session.ImportConfig(data); err != nil {
			return fmt.Errorf("failed to import config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Config imported."))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the config file and start over",
	Long: `Delete the backing config file and reset everything to the built-in
defaults: credentials, history, instruction sets and login state. This also
logs you out.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		if err := session.ResetConfig(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config reset to defaults.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configExportCmd)
	configCmd.AddCommand(configImportCmd)
	configCmd.AddCommand(configResetCmd)

	configShowCmd.Flags().StringVarP(&showFormat, "format", "f", "json", "Output format (json, yaml, md)")
	configExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
}
