package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DeployConfig holds the SFTP destination for the built site.
type DeployConfig struct {
	Host           string `env:"SFTP_HOST"`
	Port           int    `env:"SFTP_PORT" envDefault:"22"`
	User           string `env:"SFTP_USER"`
	Password       string `env:"SFTP_PASSWORD"`
	KeyPath        string `env:"SFTP_KEY_PATH"`    // Private key file; tried before Password
	KnownHostsPath string `env:"SFTP_KNOWN_HOSTS"` // Empty disables host key checking
	RemoteDir      string `env:"SFTP_REMOTE_DIR" envDefault:"/var/www/portfolio"`
}

// NewDeployConfig creates a deploy configuration from environment variables.
// It reads SFTP_HOST and SFTP_USER (required), SFTP_PASSWORD or SFTP_KEY_PATH (one required),
// SFTP_PORT (default: 22), SFTP_REMOTE_DIR (default: /var/www/portfolio) and SFTP_KNOWN_HOSTS.
func NewDeployConfig() (*DeployConfig, error) {
	var cfg DeployConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize validates the configuration.
func (c *DeployConfig) normalize() error {
	if c.Host == "" {
		return fmt.Errorf("SFTP_HOST is required but not set")
	}
	if c.User == "" {
		return fmt.Errorf("SFTP_USER is required but not set")
	}
	if c.Password == "" && c.KeyPath == "" {
		return fmt.Errorf("one of SFTP_PASSWORD or SFTP_KEY_PATH is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("SFTP_PORT must be between 1 and 65535, got: %d", c.Port)
	}
	if c.RemoteDir == "" {
		return fmt.Errorf("SFTP_REMOTE_DIR cannot be empty")
	}
	return nil
}

// Addr returns host:port for dialing.
func (c *DeployConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
