package main

import (
	"fmt"
	"os"

	"github.com/rohitlokhande/portfolio/internal/config"
	"github.com/rohitlokhande/portfolio/internal/deploy"
	"github.com/rohitlokhande/portfolio/internal/validation"
	"github.com/spf13/cobra"
)

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Upload a built site over SFTP",
	Long: `Audits the output directory and uploads it to SFTP_REMOTE_DIR on SFTP_HOST. Assets are uploaded before index.html so the live page never references a missing file.

Connection settings come from SFTP_HOST, SFTP_PORT, SFTP_USER, SFTP_PASSWORD or SFTP_KEY_PATH, SFTP_KNOWN_HOSTS and SFTP_REMOTE_DIR.`,
	RunE: runDeploy,
}

var (
	deployDir       string
	deploySkipAudit bool
)

func init() {
	deployCmd.Flags().StringVarP(&deployDir, "dir", "d", config.DefaultOutDir, "Built site directory")
	deployCmd.Flags().BoolVar(&deploySkipAudit, "skip-audit", false, "Upload even if the audit reports errors")
	rootCmd.AddCommand(deployCmd)
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	if _, err := os.Stat(deployDir); os.IsNotExist(err) {
		return fmt.Errorf("site directory not found: %s (run build first)", deployDir)
	}

	cfg, err := config.NewDeployConfig()
	if err != nil {
		return err
	}

	if !deploySkipAudit {
		violations, err := validation.AuditDir(deployDir)
		if err != nil {
			return fmt.Errorf("audit failed: %w", err)
		}
		if violations.HasErrors() {
			return fmt.Errorf("%s failed the audit; fix it or pass --skip-audit", deployDir)
		}
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Uploading %s to %s:%s...\n", deployDir, cfg.Addr(), cfg.RemoteDir)
	n, err := deploy.Deploy(cmd.Context(), cfg, deployDir)
	if err != nil {
		return fmt.Errorf("deploy failed after %d files: %w", n, err)
	}
	_, _ = fmt.Fprintf(out, "Done! Uploaded %d files.\n", n)
	return nil
}
