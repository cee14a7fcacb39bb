// Package main provides the portfolio CLI: build, preview, audit and deploy the static site.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "portfolio",
	Short:        "Static portfolio site builder",
	Long:         "Portfolio renders the personal portfolio page from built-in content and the latest Hashnode posts, then previews, audits or deploys the result.",
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
