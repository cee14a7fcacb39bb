// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Build environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Defaults applied by MergeWithDefaults when a field is left empty.
const (
	DefaultOutDir           = "out"
	DefaultStaticDir        = "static"
	DefaultSiteURL          = "https://rohitlokhande.in"
	DefaultSiteTitle        = "Rohit Lokhande - Software Engineer"
	DefaultDescription      = "Software Engineer building scalable web and mobile applications with React.js, Node.js, and cloud technologies."
	DefaultHashnodeEndpoint = "https://gql.hashnode.com"
	DefaultHashnodeHost     = "blog.rohitlokhande.in"
	DefaultPostCount        = 4
	DefaultPort             = 3000

	// MaxPostCount is the largest page size the Hashnode posts query accepts.
	MaxPostCount = 20
)

// Config represents the CLI configuration that can be loaded from a JSON file
// and overridden from the environment.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	OutDir      string `json:"out_dir,omitempty" env:"PORTFOLIO_OUT_DIR"`           // Build output directory
	StaticDir   string `json:"static_dir,omitempty" env:"PORTFOLIO_STATIC_DIR"`     // Copied verbatim into the output
	TemplateDir string `json:"template_dir,omitempty" env:"PORTFOLIO_TEMPLATE_DIR"` // Overrides the built-in templates

	// Site
	SiteURL     string `json:"site_url,omitempty" env:"PORTFOLIO_SITE_URL"` // Asset prefix in production
	SiteTitle   string `json:"site_title,omitempty" env:"PORTFOLIO_SITE_TITLE"`
	Description string `json:"description,omitempty" env:"PORTFOLIO_DESCRIPTION"`
	Environment string `json:"environment,omitempty" env:"PORTFOLIO_ENV"` // "development" or "production"

	// Blog
	HashnodeEndpoint string `json:"hashnode_endpoint,omitempty" env:"HASHNODE_ENDPOINT"`
	HashnodeHost     string `json:"hashnode_host,omitempty" env:"HASHNODE_HOST"`
	PostCount        int    `json:"post_count,omitempty" env:"HASHNODE_POST_COUNT"`

	// Behavior
	Precompress bool `json:"precompress,omitempty" env:"PORTFOLIO_PRECOMPRESS"` // Write .br and .gz siblings
	Verbose     bool `json:"verbose,omitempty" env:"PORTFOLIO_VERBOSE"`         // Print detailed debug information
	Port        int  `json:"port,omitempty" env:"PORT"`                         // Preview server port
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		OutDir:           DefaultOutDir,
		StaticDir:        DefaultStaticDir,
		SiteURL:          DefaultSiteURL,
		SiteTitle:        DefaultSiteTitle,
		Description:      DefaultDescription,
		Environment:      EnvDevelopment,
		HashnodeEndpoint: DefaultHashnodeEndpoint,
		HashnodeHost:     DefaultHashnodeHost,
		PostCount:        DefaultPostCount,
		Port:             DefaultPort,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides fields whose environment variable is set.
// Unset variables leave the current value alone.
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by MergeWithDefaults.
func (c *Config) Validate() error {
	switch c.Environment {
	case "", EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("config error: 'environment' must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.Environment)
	}

	// Validate numeric ranges
	if c.PostCount < 0 || c.PostCount > MaxPostCount {
		return fmt.Errorf("config error: 'post_count' must be between 0 and %d", MaxPostCount)
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	if err := checkAbsoluteURL("site_url", c.SiteURL); err != nil {
		return err
	}
	if err := checkAbsoluteURL("hashnode_endpoint", c.HashnodeEndpoint); err != nil {
		return err
	}
	if c.IsProduction() && c.SiteURL == "" {
		return fmt.Errorf("config error: 'site_url' is required in production")
	}

	// Validate directories exist (if specified); a missing static dir is allowed
	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}

	return nil
}

func checkAbsoluteURL(field, value string) error {
	if value == "" {
		return nil
	}
	u, err := url.Parse(value)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: '%s' must be an absolute URL, got %q", field, value)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.OutDir == "" {
		result.OutDir = defaults.OutDir
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.SiteURL == "" {
		result.SiteURL = defaults.SiteURL
	}
	if result.SiteTitle == "" {
		result.SiteTitle = defaults.SiteTitle
	}
	if result.Description == "" {
		result.Description = defaults.Description
	}
	if result.Environment == "" {
		result.Environment = defaults.Environment
	}
	if result.HashnodeEndpoint == "" {
		result.HashnodeEndpoint = defaults.HashnodeEndpoint
	}
	if result.HashnodeHost == "" {
		result.HashnodeHost = defaults.HashnodeHost
	}

	// Int fields: use default if zero
	if result.PostCount == 0 {
		result.PostCount = defaults.PostCount
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools). Every bool defaults to false;
	// a field that needs a true default must become *bool first.

	return result
}

// IsProduction reports whether the build targets the deployed site.
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// AssetPrefix returns the prefix for site-relative asset paths:
// the site URL in production, empty otherwise.
func (c *Config) AssetPrefix() string {
	if c.IsProduction() {
		return c.SiteURL
	}
	return ""
}
