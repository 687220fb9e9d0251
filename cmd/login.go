// ABOUTME: Login command for the hero CLI
// ABOUTME: Authenticates against one of the two auth namespaces and stores the token

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/session"
	"github.com/betherohq/hero-cli/internal/validate"
)

var (
	loginEmail    string
	loginPassword string
	loginAsONG    bool
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store a session token",
	Long:  `Authenticate against the backend and persist the access token for later commands. Use --ong for ONG accounts.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
	loginCmd.Flags().BoolVar(&loginAsONG, "ong", false, "Authenticate against the ONG namespace")
	rootCmd.AddCommand(loginCmd)
}

// runLogin validates credentials, calls the backend, and stores the token.
// Invalid input returns before any request is made.
func runLogin(ctx context.Context, w io.Writer) int {
	creds := client.Credentials{Email: loginEmail, Password: loginPassword}
	if errs := validate.Login(creds); len(errs) > 0 {
		printFieldErrors(w, errs)
		return 1
	}

	scope := session.ScopeUser
	if loginAsONG {
		scope = session.ScopeONG
	}

	c := newClient()
	var resp *client.LoginResponse
	var err error
	if scope == session.ScopeONG {
		resp, err = c.LoginONG(ctx, creds)
	} else {
		resp, err = c.Login(ctx, creds)
	}
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}
	if resp.AccessToken == "" {
		fmt.Fprintln(w, "Error: no access token in the response")
		return 2
	}

	if err := newStore().Save(scope, resp.AccessToken); err != nil {
		fmt.Fprintf(w, "Error: could not store the session: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Logged in as %s.\n", scope)
	return 0
}
