// ABOUTME: Delete command for the hero CLI
// ABOUTME: Removes a case by id with no confirmation prompt

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a case",
	Long:  `Delete a reported case by its id. The deletion is immediate; there is no confirmation prompt.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runDelete(ctx, os.Stdout, args[0])
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

// runDelete issues the delete and returns exit code
func runDelete(ctx context.Context, w io.Writer, id string) int {
	c := newClient()

	if err := c.DeleteIncident(ctx, id); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintf(w, "Case %s deleted.\n", id)
	return 0
}
