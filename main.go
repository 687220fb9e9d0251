// ABOUTME: Entry point for the hero CLI
// ABOUTME: Terminal client for the charity incident reporting backend

package main

import (
	"fmt"
	"os"

	"github.com/betherohq/hero-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
