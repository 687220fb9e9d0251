// ABOUTME: Create command for the hero CLI
// ABOUTME: Registers a new case after validating every field locally

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

	"github.com/betherohq/hero-cli/internal/client"
	"github.com/betherohq/hero-cli/internal/validate"
)

var (
	createTitle       string
	createDescription string
	createONG         string
	createEmail       string
	createWhatsapp    string
	createValue       string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a new case",
	Long:  `Register a new case. All fields are validated locally before any request is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runCreate(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	createCmd.Flags().StringVar(&createTitle, "title", "", "Case title")
	createCmd.Flags().StringVar(&createDescription, "description", "", "Case description")
	createCmd.Flags().StringVar(&createONG, "ong", "", "Responsible ONG name")
	createCmd.Flags().StringVar(&createEmail, "email", "", "Contact email")
	createCmd.Flags().StringVar(&createWhatsapp, "whatsapp", "", "Contact whatsapp")
	createCmd.Flags().StringVar(&createValue, "value", "", "Amount in reais")
	rootCmd.AddCommand(createCmd)
}

// runCreate validates the payload, sends it, and returns exit code. Invalid
// input returns before any request is made.
func runCreate(ctx context.Context, w io.Writer) int {
	input := client.IncidentInput{
		Title:       createTitle,
		Description: createDescription,
		ONG:         createONG,
		Email:       createEmail,
		Whatsapp:    createWhatsapp,
		Value:       createValue,
	}
	if errs := validate.Incident(input); len(errs) > 0 {
		printFieldErrors(w, errs)
		return 1
	}

	c := newClient()
	incident, err := c.CreateIncident(ctx, input)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(incident, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Case registered with id %s.\n", incident.ID)
	}

	return 0
}
