// ABOUTME: Get command for the hero CLI
// ABOUTME: Fetches and prints a single case by id

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one case",
	Long:  `Fetch and display a single reported case by its id.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runGet(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}

// runGet fetches one incident and returns exit code
func runGet(ctx context.Context, w io.Writer, id string) int {
	c := newClient()

	incident, err := c.GetIncident(ctx, id)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(incident, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintln(w, formatIncidentHuman(incident))
		fmt.Fprintf(w, "\nDescription:\n%s\n", incident.Description)
	}

	return 0
}
