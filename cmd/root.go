package cmd

import (
	"fmt"
	"os"

	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	version    string = "dev"
	commit     string = "unknown"
	date       string = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "scriptmaster",
	Short: "Generate documentary narration scripts from a topic",
	Long: `scriptmaster turns a one-line topic into a documentary narration script.

It builds a system prompt from a named instruction set (role, tone, structure,
depth, forbidden content, format and user intent), sends it together with your
topic to an OpenAI chat-completions model, and prints the result. Instruction
sets, the recent-topic history and login state persist in a single JSON config
file; generated scripts are kept in a local archive.

Quick Start:
  scriptmaster login --user me --pass secret --auto   # Log in once
  scriptmaster generate "축구의 경제학"                # Generate a script
  scriptmaster sets list                              # List instruction sets
  scriptmaster history                                # Recent topics

Environment:
  LOGIN_ID / LOGIN_PW     Default login credentials
  GPT_API_KEY             OpenAI API key
  SCRIPTMASTER_CONFIG     Config file path (default: config.json)

A .env file in the working directory is loaded automatically.`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (overrides SCRIPTMASTER_CONFIG)")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

// startSession loads the environment and persisted config and returns the
// reconstituted session.
func startSession() (*internal.Session, internal.Environment) {
	env := internal.LoadEnvironment()
	store := internal.NewConfigStore(internal.ResolveConfigPath(configPath))
	session := internal.NewSession(store, env)
	session.Start()
	return session, env
}

// requireLogin guards commands that mutate content.
func requireLogin(session *internal.Session) error {
	if !session.LoggedIn() {
		return fmt.Errorf("%w (run 'scriptmaster login', or log in with --auto once)", internal.ErrNotLoggedIn)
	}
	return nil
}
