package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

var (
	generateModel string
	skipArchive   bool
)

var (
	// Styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")).
			Padding(0, 1)

	topicStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <topic>",
	Short: "Generate a narration script for a topic",
	Long: `Generate a documentary narration script for the given topic.

The system prompt is assembled from the active instruction set's non-empty
fields; the topic is recorded in the recent-topic history before the model is
called. Successful generations are appended to the local archive.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session, env := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		model, err := internal.ParseModel(generateModel)
		if err != nil {
			return err
		}
		topic := strings.TrimSpace(strings.Join(args, " "))
		if topic == "" {
			return fmt.Errorf("topic is empty")
		}
		if env.APIKey == "" {
			return fmt.Errorf("%s is not set", internal.EnvAPIKey)
		}

		client := internal.NewOpenAIClient(env.APIKey)
		output, err := session.Generate(cmd.Context(), client, model, topic)
		if err != nil {
			return fmt.Errorf("failed to generate script: %w", err)
		}

		if !skipArchive {
			if err := archiveOutput(topic, model, output); err != nil {
				internal.LogWarn("archiving result failed: %v", err)
			}
		}

		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("생성된 내레이션"))
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), output)
		return nil
	},
}

func archiveOutput(topic string, model internal.Model, output string) error {
	archive, err := internal.OpenArchive(resolveArchivePath())
	if err != nil {
		return err
	}
	defer func() { _ = archive.Close() }()
	return archive.Append(topic, model, output)
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateModel, "model", "m", string(internal.DefaultModel),
		fmt.Sprintf("Model to use (%s, %s, %s)", internal.ModelGPT4oMini, internal.ModelGPT4o, internal.ModelGPT41))
	generateCmd.Flags().BoolVar(&skipArchive, "no-archive", false, "Do not store the result in the archive")
}
