package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	passwdCurrent string
	passwdNew     string
	passwdConfirm string
)

// passwdCmd represents the passwd command
var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Change the stored password",
	Long: `Change the stored password after verifying the current one.

The stored password takes precedence over the LOGIN_PW environment default on
later sessions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := requireLogin(session); err != nil {
			return err
		}

		if err := session.ChangePassword(passwdCurrent, passwdNew, passwdConfirm); err != nil {
			return fmt.Errorf("failed to change password: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Password changed."))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(passwdCmd)

	passwdCmd.Flags().StringVar(&passwdCurrent, "current", "", "Current password")
	passwdCmd.Flags().StringVar(&passwdNew, "new", "", "New password")
	passwdCmd.Flags().StringVar(&passwdConfirm, "confirm", "", "New password again")
	_ = passwdCmd.MarkFlagRequired("current")
	_ = passwdCmd.MarkFlagRequired("new")
	_ = passwdCmd.MarkFlagRequired("confirm")
}
