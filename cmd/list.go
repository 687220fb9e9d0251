// ABOUTME: List command for the hero CLI
// ABOUTME: Prints the full current incident collection

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/betherohq/hero-cli/internal/client"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List reported cases",
	Long:  `Fetch and display the full current collection of reported cases.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runList(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// runList fetches the collection and returns exit code
func runList(ctx context.Context, w io.Writer) int {
	c := newClient()

	incidents, err := c.ListIncidents(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatIncidentsJSON(incidents))
	} else {
		fmt.Fprintln(w, formatIncidentsHuman(incidents))
	}

	return 0
}

// formatIncidentsHuman formats the collection for human readability
func formatIncidentsHuman(incidents []client.Incident) string {
	if len(incidents) == 0 {
		return "No cases reported yet."
	}

	var b strings.Builder
	for i, inc := range incidents {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(formatIncidentHuman(&inc))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatIncidentHuman formats one incident
func formatIncidentHuman(inc *client.Incident) string {
	return fmt.Sprintf(`ID:       %s
Case:     %s
ONG:      %s
Contact:  %s  %s
Value:    R$ %s`,
		inc.ID,
		inc.Title,
		inc.ONG,
		inc.Email, inc.Whatsapp,
		inc.Value)
}

// formatIncidentsJSON formats the collection as JSON
func formatIncidentsJSON(incidents []client.Incident) string {
	data, _ := json.MarshalIndent(incidents, "", "  ")
	return string(data)
}
