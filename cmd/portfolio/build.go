package main

import (
	"github.com/rohitlokhande/portfolio/internal/pipeline"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site",
	Long: `Loads content (fetching the latest Hashnode posts, with a built-in fallback), renders index.html, copies static assets, optionally precompresses text files, writes build.json and audits the result.

Configuration can be loaded from a JSON file using --config. Environment variables override the file and flags override both.`,
	RunE: runBuild,
}

var buildFlags siteFlags

func init() {
	buildFlags.register(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	cfg, err := buildFlags.resolve(cmd)
	if err != nil {
		return err
	}

	_, err = pipeline.Build(cmd.Context(), buildOptions(cfg, cmd.OutOrStdout()))
	return err
}
