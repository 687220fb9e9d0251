// ABOUTME: Logout command for the hero CLI
// ABOUTME: Clears the stored session token for one role-scope

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/betherohq/hero-cli/internal/session"
)

var logoutAsONG bool

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session token",
	Long:  `Remove the persisted access token. Use --ong to clear the ONG session instead of the user one.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	logoutCmd.Flags().BoolVar(&logoutAsONG, "ong", false, "Clear the ONG session")
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the token slot; clearing an absent token succeeds
func runLogout(w io.Writer) int {
	scope := session.ScopeUser
	if logoutAsONG {
		scope = session.ScopeONG
	}

	if err := newStore().Clear(scope); err != nil {
		fmt.Fprintf(w, "Error: could not clear the session: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Logged out %s session.\n", scope)
	return 0
}
