// ABOUTME: Root command for the hero CLI
// ABOUTME: Handles global flags, env configuration, and launches the TUI

package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/session"
	"github.com/betherohq/hero-cli/internal/tui"
)

var (
	apiURL     string
	jsonOutput bool
)

const defaultAPIURL = "http://localhost:3333"

// rootCmd is the base command; running it without a subcommand starts the TUI
var rootCmd = &cobra.Command{
	Use:   "hero",
	Short: "Terminal client for the Be The Hero incident reporting backend",
	Long: `hero is a terminal client for the Be The Hero charity incident platform.

Running it with no subcommand opens the interactive TUI. Subcommands offer
the same operations headless, for scripting.

Environment Variables:
  HERO_API_URL  Backend API URL (default: http://localhost:3333)`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run(newClient(), newStore())
	},
}

// Execute runs the root command
func Execute() error {
	// A missing .env is fine; it only seeds env vars when present.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides HERO_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL() string {
	if apiURL != "" {
		return apiURL
	}
	if envURL := os.Getenv("HERO_API_URL"); envURL != "" {
		return envURL
	}
	return defaultAPIURL
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

func newClient() *client.Client {
	return client.New(GetAPIURL())
}

func newStore() *session.Store {
	return session.New(session.DefaultConfigDir())
}

// printFieldErrors writes one line per invalid field, sorted by field name
func printFieldErrors(w io.Writer, errs map[string]string) {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	for _, f := range fields {
		fmt.Fprintf(w, "Error: %s: %s\n", f, errs[f])
	}
}
