package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setDeployEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range []string{"SFTP_HOST", "SFTP_PORT", "SFTP_USER", "SFTP_PASSWORD", "SFTP_KEY_PATH", "SFTP_KNOWN_HOSTS", "SFTP_REMOTE_DIR"} {
		t.Setenv(key, values[key])
	}
}

func TestNewDeployConfig_DefaultValues(t *testing.T) {
	setDeployEnv(t, map[string]string{
		"SFTP_HOST":     "deploy.example.com",
		"SFTP_USER":     "www",
		"SFTP_PASSWORD": "secret",
	})

	cfg, err := NewDeployConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 22, cfg.Port, "should use default port 22")
	assert.Equal(t, "/var/www/portfolio", cfg.RemoteDir)
	assert.Equal(t, "deploy.example.com:22", cfg.Addr())
}

func TestNewDeployConfig_Errors(t *testing.T) {
	base := map[string]string{
		"SFTP_HOST":     "deploy.example.com",
		"SFTP_USER":     "www",
		"SFTP_PASSWORD": "secret",
	}

	tests := []struct {
		name     string
		override map[string]string
		wantErr  string
	}{
		{"missing host", map[string]string{"SFTP_HOST": ""}, "SFTP_HOST"},
		{"missing user", map[string]string{"SFTP_USER": ""}, "SFTP_USER"},
		{"missing credentials", map[string]string{"SFTP_PASSWORD": ""}, "SFTP_PASSWORD or SFTP_KEY_PATH"},
		{"port out of range", map[string]string{"SFTP_PORT": "0"}, "SFTP_PORT"},
		{"port not a number", map[string]string{"SFTP_PORT": "ssh"}, "parse env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]string{}
			for k, v := range base {
				values[k] = v
			}
			for k, v := range tt.override {
				values[k] = v
			}
			setDeployEnv(t, values)

			cfg, err := NewDeployConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDeployConfig_KeyInsteadOfPassword(t *testing.T) {
	setDeployEnv(t, map[string]string{
		"SFTP_HOST":       "deploy.example.com",
		"SFTP_PORT":       "2222",
		"SFTP_USER":       "www",
		"SFTP_KEY_PATH":   "/home/www/.ssh/id_ed25519",
		"SFTP_REMOTE_DIR": "/srv/site",
	})

	cfg, err := NewDeployConfig()
	require.NoError(t, err)
	assert.Equal(t, "deploy.example.com:2222", cfg.Addr())
	assert.Equal(t, "/srv/site", cfg.RemoteDir)
}
