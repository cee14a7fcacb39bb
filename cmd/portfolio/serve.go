package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rohitlokhande/portfolio/internal/pipeline"
	"github.com/rohitlokhande/portfolio/internal/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Build the site and serve it locally",
	Long:  `Builds the site, serves the output directory and, with --watch, rebuilds on changes to the static and template directories and reloads open pages.`,
	RunE:  runServe,
}

var (
	serveFlags siteFlags
	servePort  int
	serveWatch bool
)

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default 3000, or PORT)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", true, "Rebuild on changes and live-reload open pages")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := serveFlags.resolve(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := buildOptions(cfg, cmd.OutOrStdout())
	rebuild := func(ctx context.Context) (string, error) {
		result, err := pipeline.Build(ctx, opts)
		var auditErr *pipeline.AuditError
		if errors.As(err, &auditErr) {
			// Keep serving a page that failed the audit; the violations are already printed
			return result.Manifest.BuildID, nil
		}
		if err != nil {
			return "", err
		}
		return result.Manifest.BuildID, nil
	}

	if _, err := rebuild(ctx); err != nil {
		return err
	}

	paths := watchPaths(cfg.StaticDir, cfg.TemplateDir)
	watch := serveWatch && len(paths) > 0
	if serveWatch && !watch {
		log.Printf("Warning: no static or template directory to watch, live reload disabled")
	}

	srv, err := server.New(server.Config{
		Port:       cfg.Port,
		Dir:        cfg.OutDir,
		LiveReload: watch,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(ctx)
	})
	if watch {
		watcher := &server.Watcher{
			Paths:     paths,
			Rebuild:   rebuild,
			OnRebuilt: srv.Reloads().Notify,
			Ignore:    underDir(cfg.OutDir),
		}
		g.Go(func() error {
			return watcher.Run(ctx)
		})
	}
	return g.Wait()
}

// watchPaths returns the configured source directories that exist.
func watchPaths(dirs ...string) []string {
	var paths []string
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(dir); err == nil {
			paths = append(paths, dir)
		}
	}
	return paths
}

// underDir reports whether a path lies inside dir.
func underDir(dir string) func(string) bool {
	root, err := filepath.Abs(dir)
	if err != nil {
		root = filepath.Clean(dir)
	}
	return func(p string) bool {
		abs, err := filepath.Abs(p)
		if err != nil {
			return false
		}
		return abs == root || strings.HasPrefix(abs, root+string(filepath.Separator))
	}
}
