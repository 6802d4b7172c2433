package cmd

import (
	"fmt"

	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

// historyCmd represents the history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent topics",
	Long:  `Show the recent-topic history, most recent first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		recent := session.History.Recent(internal.MaxHistory)
		if len(recent) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No recent topics.")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("최근 검색어"))
		for i, topic := range recent {
			fmt.Fprintf(cmd.OutOrStdout(), "%d. %s\n", i+1, topicStyle.Render(topic))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
