package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rohitlokhande/portfolio/internal/config"
	"github.com/rohitlokhande/portfolio/internal/hashnode"
	"github.com/rohitlokhande/portfolio/internal/pipeline"
	"github.com/spf13/cobra"
)

// siteFlags are the configuration flags shared by build and serve.
type siteFlags struct {
	configPath  string
	outDir      string
	staticDir   string
	templateDir string
	siteURL     string
	environment string
	postCount   int
	precompress bool
	verbose     bool
}

func (f *siteFlags) register(cmd *cobra.Command) {
	// Config file flag (processed first)
	cmd.Flags().StringVar(&f.configPath, "config", "", "Path to config.json file (values can be overridden by env and other flags)")

	cmd.Flags().StringVarP(&f.outDir, "out", "o", "", "Output directory (default \"out\")")
	cmd.Flags().StringVar(&f.staticDir, "static", "", "Static asset directory copied into the output (default \"static\")")
	cmd.Flags().StringVar(&f.templateDir, "templates", "", "Directory of page templates overriding the built-in ones")
	cmd.Flags().StringVar(&f.siteURL, "site-url", "", "Public site URL, used as the asset prefix in production")
	cmd.Flags().StringVarP(&f.environment, "env", "e", "", "Build environment: development or production")
	cmd.Flags().IntVar(&f.postCount, "posts", 0, "Number of Hashnode posts to request")
	cmd.Flags().BoolVar(&f.precompress, "precompress", false, "Write .br and .gz siblings for text assets")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Print detailed debug information")
}

// resolve layers configuration: defaults, then the config file, then the
// environment, then explicitly set flags.
func (f *siteFlags) resolve(cmd *cobra.Command) (*config.Config, error) {
	// Step 1: Load config file if provided
	var cfg config.Config
	if f.configPath != "" {
		loaded, err := config.LoadConfig(f.configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}

	// Step 2: Environment overrides the file
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	// Step 3: Apply CLI overrides, only for flags explicitly set
	flags := cmd.Flags()
	if flags.Changed("out") {
		cfg.OutDir = f.outDir
	}
	if flags.Changed("static") {
		cfg.StaticDir = f.staticDir
	}
	if flags.Changed("templates") {
		cfg.TemplateDir = f.templateDir
	}
	if flags.Changed("site-url") {
		cfg.SiteURL = f.siteURL
	}
	if flags.Changed("env") {
		cfg.Environment = f.environment
	}
	if flags.Changed("posts") {
		cfg.PostCount = f.postCount
	}
	if flags.Changed("precompress") {
		cfg.Precompress = f.precompress
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	// Step 4: Apply defaults for unset values
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	if merged.Verbose && f.configPath != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Loaded config from: %s\n", f.configPath)
	}
	return &merged, nil
}

// newBlogSource builds the Hashnode client for cfg.
func newBlogSource(cfg *config.Config) *hashnode.Client {
	client := hashnode.NewClient(cfg.HashnodeHost)
	client.Endpoint = cfg.HashnodeEndpoint
	client.First = cfg.PostCount
	return client
}

// buildOptions maps resolved configuration onto pipeline options.
func buildOptions(cfg *config.Config, stdout io.Writer) pipeline.Options {
	if stdout == nil {
		stdout = os.Stdout
	}
	return pipeline.Options{
		OutDir:      cfg.OutDir,
		StaticDir:   cfg.StaticDir,
		TemplateDir: cfg.TemplateDir,
		SiteTitle:   cfg.SiteTitle,
		Description: cfg.Description,
		Environment: cfg.Environment,
		AssetPrefix: cfg.AssetPrefix(),
		Blog:        newBlogSource(cfg),
		Precompress: cfg.Precompress,
		Verbose:     cfg.Verbose,
		Stdout:      stdout,
	}
}
