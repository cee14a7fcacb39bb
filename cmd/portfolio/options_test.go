package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rohitlokhande/portfolio/internal/config"
	"github.com/rohitlokhande/portfolio/internal/content"
	"github.com/rohitlokhande/portfolio/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable that feeds the config for the duration of the test
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PORTFOLIO_OUT_DIR", "PORTFOLIO_STATIC_DIR", "PORTFOLIO_TEMPLATE_DIR",
		"PORTFOLIO_SITE_URL", "PORTFOLIO_SITE_TITLE", "PORTFOLIO_DESCRIPTION", "PORTFOLIO_ENV",
		"HASHNODE_ENDPOINT", "HASHNODE_HOST", "HASHNODE_POST_COUNT",
		"PORTFOLIO_PRECOMPRESS", "PORTFOLIO_VERBOSE", "PORT",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func newFlagCommand(t *testing.T, f *siteFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	require.NoError(t, cmd.Flags().Parse(args))
	cmd.SetOut(&bytes.Buffer{})
	return cmd
}

func writeConfig(t *testing.T, cfg map[string]any) string {
	t.Helper()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestResolve_Defaults(t *testing.T) {
	clearEnv(t)
	var f siteFlags
	cfg, err := f.resolve(newFlagCommand(t, &f))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultOutDir, cfg.OutDir)
	assert.Equal(t, config.DefaultStaticDir, cfg.StaticDir)
	assert.Equal(t, config.EnvDevelopment, cfg.Environment)
	assert.Equal(t, config.DefaultPostCount, cfg.PostCount)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.False(t, cfg.Precompress)
	assert.Empty(t, cfg.AssetPrefix())
}

func TestResolve_Precedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, map[string]any{
		"out_dir":     "from-file",
		"static_dir":  "static-from-file",
		"post_count":  2,
		"environment": "production",
	})
	t.Setenv("PORTFOLIO_OUT_DIR", "from-env")
	t.Setenv("HASHNODE_POST_COUNT", "3")

	var f siteFlags
	cmd := newFlagCommand(t, &f, "--config", path, "--posts", "5")
	cfg, err := f.resolve(cmd)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.OutDir, "env overrides file")
	assert.Equal(t, "static-from-file", cfg.StaticDir, "file overrides defaults")
	assert.Equal(t, 5, cfg.PostCount, "flags override env")
	assert.Equal(t, config.EnvProduction, cfg.Environment)
	assert.Equal(t, config.DefaultSiteURL, cfg.AssetPrefix())
}

func TestResolve_UnsetFlagsDoNotOverride(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, map[string]any{"precompress": true})

	var f siteFlags
	cfg, err := f.resolve(newFlagCommand(t, &f, "--config", path))
	require.NoError(t, err)
	assert.True(t, cfg.Precompress)

	var g siteFlags
	cfg, err = g.resolve(newFlagCommand(t, &g, "--config", path, "--precompress=false"))
	require.NoError(t, err)
	assert.False(t, cfg.Precompress)
}

func TestResolve_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{"bad environment flag", []string{"--env", "staging"}, nil},
		{"too many posts", []string{"--posts", "50"}, nil},
		{"missing config file", []string{"--config", "/nonexistent/config.json"}, nil},
		{"relative site url", []string{"--site-url", "example.com"}, nil},
		{"bad env value", nil, map[string]string{"HASHNODE_POST_COUNT": "many"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			var f siteFlags
			_, err := f.resolve(newFlagCommand(t, &f, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestBuildOptions(t *testing.T) {
	cfg := config.Defaults()
	cfg.Environment = config.EnvProduction
	cfg.PostCount = 2
	cfg.HashnodeEndpoint = "https://gql.example.com"
	cfg.HashnodeHost = "blog.example.com"

	var out bytes.Buffer
	opts := buildOptions(&cfg, &out)
	assert.Equal(t, cfg.OutDir, opts.OutDir)
	assert.Equal(t, config.DefaultSiteURL, opts.AssetPrefix)
	assert.Equal(t, config.EnvProduction, opts.Environment)
	assert.Same(t, &out, opts.Stdout)

	client := newBlogSource(&cfg)
	assert.Equal(t, "https://gql.example.com", client.Endpoint)
	assert.Equal(t, "blog.example.com", client.Host)
	assert.Equal(t, 2, client.First)
}

func TestWatchPaths(t *testing.T) {
	dir := t.TempDir()
	assert.Equal(t, []string{dir}, watchPaths(dir, "", filepath.Join(dir, "missing")))
	assert.Empty(t, watchPaths(""))
}

func TestUnderDir(t *testing.T) {
	root := t.TempDir()
	out := filepath.Join(root, "out")
	ignore := underDir(out)

	assert.True(t, ignore(out))
	assert.True(t, ignore(filepath.Join(out, "index.html")))
	assert.False(t, ignore(filepath.Join(root, "outside.html")))
	assert.False(t, ignore(filepath.Join(root, "out2", "x")))
}

// hashnodeServer answers the posts query with a single post
func hashnodeServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"publication":{"posts":{"edges":[{"node":{
			"id":"p1","title":"Hello Go","brief":"First post",
			"url":"https://blog.example.com/hello-go",
			"publishedAt":"2025-03-10T08:00:00.000Z","readTimeInMinutes":3,
			"coverImage":null}}]}}}}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestRunBuild_WritesSite(t *testing.T) {
	clearEnv(t)
	server := hashnodeServer(t)
	t.Setenv("HASHNODE_ENDPOINT", server.URL)

	root := t.TempDir()
	out := filepath.Join(root, "out")
	buildFlags = siteFlags{}
	cmd := newFlagCommand(t, &buildFlags, "--out", out, "--static", filepath.Join(root, "static"))
	cmd.SetContext(t.Context())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, runBuild(cmd, nil))

	page, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "Hello Go")
	assert.FileExists(t, filepath.Join(out, "build.json"))
	assert.Contains(t, stdout.String(), "Done!")
}

func TestRunPosts_FallbackJSON(t *testing.T) {
	clearEnv(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()
	t.Setenv("HASHNODE_ENDPOINT", server.URL)

	postsFlags = siteFlags{}
	postsTable = false
	cmd := newFlagCommand(t, &postsFlags)
	cmd.SetContext(t.Context())
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)

	require.NoError(t, runPosts(cmd, nil))

	var got struct {
		Source string           `json:"source"`
		Error  string           `json:"error"`
		Posts  []types.BlogPost `json:"posts"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, string(content.OriginFallback), got.Source)
	assert.NotEmpty(t, got.Error)
	assert.Equal(t, content.FallbackBlogPosts(), got.Posts)
}

func TestRunCheck(t *testing.T) {
	clearEnv(t)
	server := hashnodeServer(t)
	t.Setenv("HASHNODE_ENDPOINT", server.URL)

	out := filepath.Join(t.TempDir(), "out")
	buildFlags = siteFlags{}
	build := newFlagCommand(t, &buildFlags, "--out", out, "--static", "")
	build.SetContext(t.Context())
	require.NoError(t, runBuild(build, nil))

	checkDir = out
	checkOutput = filepath.Join(t.TempDir(), "violations.json")
	cmd := &cobra.Command{}
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	require.NoError(t, runCheck(cmd, nil))
	assert.FileExists(t, checkOutput)

	checkDir = filepath.Join(t.TempDir(), "missing")
	assert.Error(t, runCheck(cmd, nil))
}

func TestRunCheck_FailsOnBrokenPage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(`<html><head><title>x</title></head><body></body></html>`), 0644))

	checkDir = dir
	checkOutput = ""
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err := runCheck(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed the audit")
}

func TestRunDeploy_RequiresConfig(t *testing.T) {
	for _, name := range []string{"SFTP_HOST", "SFTP_USER", "SFTP_PASSWORD", "SFTP_KEY_PATH"} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	deployDir = t.TempDir()
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err := runDeploy(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SFTP_HOST")

	deployDir = filepath.Join(t.TempDir(), "missing")
	err = runDeploy(cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run build first")
}
