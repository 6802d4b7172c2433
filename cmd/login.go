package cmd

import (
	"errors"
	"fmt"

	"github.com/hanseo/scriptmaster/internal"
	"github.com/spf13/cobra"
)

var (
	loginUser     string
	loginPass     string
	loginRemember bool
	loginAuto     bool
)

// loginCmd represents the login command
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your credentials",
	Long: `Log in against the stored credentials (or the LOGIN_ID/LOGIN_PW
environment defaults when none are stored).

With --remember the credentials are stored for prefill on later sessions.
With --auto subsequent commands skip the login step entirely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()

		err := session.Login(loginUser, loginPass, loginRemember, loginAuto)
		if errors.Is(err, internal.ErrInvalidCredentials) {
			return fmt.Errorf("login failed: %w", err)
		}
		if err != nil {
			internal.LogWarn("login succeeded but saving state failed: %v", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Logged in."))
		if loginAuto {
			fmt.Fprintln(cmd.OutOrStdout(), "Auto-login enabled for future sessions.")
		}
		return nil
	},
}

// logoutCmd represents the logout command
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and disable auto-login",
	RunE: func(cmd *cobra.Command, args []string) error {
		session, _ := startSession()
		if err := session.Logout(); err != nil {
			internal.LogWarn("saving state failed: %v", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	loginCmd.Flags().StringVarP(&loginUser, "user", "u", "", "Login id")
	loginCmd.Flags().StringVarP(&loginPass, "pass", "p", "", "Password")
	loginCmd.Flags().BoolVar(&loginRemember, "remember", false, "Store the credentials for later sessions")
	loginCmd.Flags().BoolVar(&loginAuto, "auto", false, "Skip the login step on future sessions")
	_ = loginCmd.MarkFlagRequired("user")
	_ = loginCmd.MarkFlagRequired("pass")
}
