// ABOUTME: Signup commands for the hero CLI
// ABOUTME: Creates user or ONG accounts after validating every field locally

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
	"github.com/betherohq/hero-cli/internal/validate"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
	registerPhone    string
	registerCity     string
	registerUF       string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a user account",
	Long:  `Create a user account. All fields are validated locally before any request is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegister(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

var registerOngCmd = &cobra.Command{
	Use:   "register-ong",
	Short: "Create an ONG account",
	Long:  `Create an ONG account with city and state. All fields are validated locally before any request is made.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runRegisterONG(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{registerCmd, registerOngCmd} {
		c.Flags().StringVar(&registerName, "name", "", "Account name")
		c.Flags().StringVar(&registerEmail, "email", "", "Account email")
		c.Flags().StringVar(&registerPassword, "password", "", "Account password")
		c.Flags().StringVar(&registerPhone, "phone", "", "Contact phone")
	}
	registerOngCmd.Flags().StringVar(&registerCity, "city", "", "ONG city")
	registerOngCmd.Flags().StringVar(&registerUF, "uf", "", "ONG state, two letters")
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(registerOngCmd)
}

// runRegister validates the user payload, sends it, and returns exit code
func runRegister(ctx context.Context, w io.Writer) int {
	input := client.UserInput{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		Phone:    registerPhone,
	}
	if errs := validate.User(input); len(errs) > 0 {
		printFieldErrors(w, errs)
		return 1
	}

	if err := newClient().RegisterUser(ctx, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "Account created. Sign in with `hero login`.")
	return 0
}

// runRegisterONG validates the ONG payload, sends it, and returns exit code
func runRegisterONG(ctx context.Context, w io.Writer) int {
	input := client.ONGInput{
		Name:     registerName,
		Email:    registerEmail,
		Password: registerPassword,
		Phone:    registerPhone,
		City:     registerCity,
		UF:       registerUF,
	}
	if errs := validate.ONG(input); len(errs) > 0 {
		printFieldErrors(w, errs)
		return 1
	}

	if err := newClient().RegisterONG(ctx, input); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	fmt.Fprintln(w, "ONG created. Sign in with `hero login --ong`.")
	return 0
}
