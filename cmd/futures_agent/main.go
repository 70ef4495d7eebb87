// Package main provides the entry point for the Alternate Futures CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "futures_agent",
	Short: "Alternate Futures CLI and HTTP API Server",
	Long:  "Alternate Futures parses a free-text career history into a timeline and asks a completion service to imagine where it could lead next.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
