package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rohitlokhande/portfolio/internal/config"
	"github.com/rohitlokhande/portfolio/internal/observability"
	"github.com/rohitlokhande/portfolio/internal/validation"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Audit a built site",
	Long:  "Audits index.html in the output directory for missing sections, unsafe external links, broken anchors and missing assets, and checks build.json against its schema.",
	RunE:  runCheck,
}

var (
	checkDir    string
	checkOutput string
)

func init() {
	checkCmd.Flags().StringVarP(&checkDir, "dir", "d", config.DefaultOutDir, "Built site directory")
	checkCmd.Flags().StringVarP(&checkOutput, "out", "o", "", "Path to write the violations JSON (optional)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(checkDir); os.IsNotExist(err) {
		return fmt.Errorf("site directory not found: %s", checkDir)
	}

	violations, err := validation.AuditDir(checkDir)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if checkOutput != "" {
		data, err := json.MarshalIndent(violations, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal violations: %w", err)
		}
		if err := os.WriteFile(checkOutput, data, 0644); err != nil {
			return fmt.Errorf("failed to write violations: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	if len(violations.Violations) == 0 {
		_, _ = fmt.Fprintf(out, "No violations found in %s\n", checkDir)
		return nil
	}
	observability.NewPrinter(out).PrintViolations(violations)

	if violations.HasErrors() {
		return fmt.Errorf("%s failed the audit", checkDir)
	}
	return nil
}
