// Package pipeline provides the high-level orchestration for building the site.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rohitlokhande/portfolio/internal/content"
	"github.com/rohitlokhande/portfolio/internal/observability"
	"github.com/rohitlokhande/portfolio/internal/rendering"
	"github.com/rohitlokhande/portfolio/internal/types"
	"github.com/rohitlokhande/portfolio/internal/validation"
)

// Step names reported in progress events.
const (
	StepContent  = "content"
	StepValidate = "validate"
	StepRender   = "render"
	StepWrite    = "write"
	StepCompress = "precompress"
	StepAudit    = "audit"
)

const totalSteps = 6

// ProgressEvent represents a progress update during a build
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	BuildID string `json:"build_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when build progress occurs
type ProgressCallback func(event ProgressEvent)

// Options holds configuration for a build
type Options struct {
	OutDir      string
	StaticDir   string // Optional; copied into OutDir when it exists
	TemplateDir string // Optional; overrides the built-in templates
	SiteTitle   string
	Description string
	Environment string // "development" or "production"
	AssetPrefix string
	Blog        content.BlogSource
	Precompress bool
	Workers     int // Precompression concurrency; 0 uses DefaultWorkers
	Verbose     bool
	Stdout      io.Writer        // Progress output; defaults to os.Stdout
	Now         func() time.Time // Defaults to time.Now
	OnProgress  ProgressCallback
}

// BuildResult is what a finished build produced
type BuildResult struct {
	OutDir     string
	Manifest   *types.BuildManifest
	Feed       content.BlogFeed
	Violations *types.Violations
}

// AuditError is returned alongside the result when the built site fails the audit
type AuditError struct {
	Violations *types.Violations
}

func (e *AuditError) Error() string {
	count := 0
	for _, v := range e.Violations.Violations {
		if v.Severity == validation.SeverityError {
			count++
		}
	}
	return fmt.Sprintf("output audit failed with %d errors", count)
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *Options, step, message string, content any) {
	if opts.OnProgress != nil {
		opts.OnProgress(ProgressEvent{
			Step:    step,
			Message: message,
			Content: content,
		})
	}
}

// Build runs the whole site build: load, validate, render, write, precompress, audit.
//
//nolint:errcheck // progress output; errors are not recoverable
func Build(ctx context.Context, opts Options) (*BuildResult, error) {
	if opts.OutDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	if opts.Environment == "" {
		opts.Environment = "development"
	}
	out := opts.Stdout
	if out == nil {
		out = os.Stdout
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}
	builtAt := now().UTC()

	// Initialize observability printer for verbose output
	printer := observability.NewPrinter(out)

	fmt.Fprintf(out, "Step 1/%d: Loading content...\n", totalSteps)
	provider := content.NewProvider(opts.Blog)
	c, feed := provider.Load(ctx)
	if feed.Origin == content.OriginFallback {
		fmt.Fprintf(out, "Warning: using fallback blog posts: %v\n", feed.Err)
	}
	if opts.Verbose {
		printer.PrintContentSummary(c, string(feed.Origin))
	}
	emitProgress(&opts, StepContent,
		fmt.Sprintf("Loaded %d projects and %d blog posts (%s)", len(c.Projects), len(c.BlogPosts), feed.Origin), nil)

	fmt.Fprintf(out, "Step 2/%d: Validating content...\n", totalSteps)
	if err := content.Validate(c); err != nil {
		return nil, fmt.Errorf("content validation failed: %w", err)
	}
	emitProgress(&opts, StepValidate, "Content records are valid", nil)

	fmt.Fprintf(out, "Step 3/%d: Rendering page...\n", totalSteps)
	renderer, err := rendering.New(rendering.Options{TemplateDir: opts.TemplateDir})
	if err != nil {
		return nil, fmt.Errorf("loading templates failed: %w", err)
	}
	var page bytes.Buffer
	err = renderer.RenderPage(&page, &rendering.PageData{
		Content:     c,
		SiteTitle:   opts.SiteTitle,
		Description: opts.Description,
		AssetPrefix: opts.AssetPrefix,
		HeroImage:   findHeroImage(opts.StaticDir),
		Year:        builtAt.Year(),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering page failed: %w", err)
	}
	emitProgress(&opts, StepRender, fmt.Sprintf("Rendered %d bytes", page.Len()), nil)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "Step 4/%d: Writing output to %s...\n", totalSteps, opts.OutDir)
	if err := prepareOutDir(opts.OutDir, opts.StaticDir); err != nil {
		return nil, fmt.Errorf("preparing output directory failed: %w", err)
	}
	if opts.StaticDir != "" {
		copied, err := copyStatic(opts.StaticDir, opts.OutDir)
		if err != nil {
			return nil, fmt.Errorf("copying static assets failed: %w", err)
		}
		if opts.Verbose {
			fmt.Fprintf(out, "[VERBOSE] Copied %d static files from %s\n", copied, opts.StaticDir)
		}
	}
	if err := os.WriteFile(filepath.Join(opts.OutDir, "index.html"), page.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("writing index.html failed: %w", err)
	}
	emitProgress(&opts, StepWrite, fmt.Sprintf("Wrote site to %s", opts.OutDir), nil)

	if opts.Precompress {
		files, err := listFiles(opts.OutDir)
		if err != nil {
			return nil, fmt.Errorf("listing output failed: %w", err)
		}
		candidates := compressible(opts.OutDir, files)
		fmt.Fprintf(out, "Step 5/%d: Precompressing %d files...\n", totalSteps, len(candidates))
		if err := Precompress(ctx, opts.OutDir, candidates, opts.Workers); err != nil {
			return nil, fmt.Errorf("precompression failed: %w", err)
		}
		emitProgress(&opts, StepCompress, fmt.Sprintf("Precompressed %d files", len(candidates)), nil)
	} else {
		fmt.Fprintf(out, "Step 5/%d: Precompression disabled, skipping...\n", totalSteps)
	}

	fmt.Fprintf(out, "Step 6/%d: Writing manifest and auditing output...\n", totalSteps)
	files, err := listFiles(opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("listing output failed: %w", err)
	}
	manifest := newManifest(c, feed, opts, builtAt, files)
	if err := writeManifest(opts.OutDir, manifest); err != nil {
		return nil, err
	}
	if opts.Verbose {
		printer.PrintManifest(manifest)
	}

	violations, err := validation.AuditDir(opts.OutDir)
	if err != nil {
		return nil, fmt.Errorf("auditing output failed: %w", err)
	}
	if opts.Verbose || len(violations.Violations) > 0 {
		printer.PrintViolations(violations)
	}

	result := &BuildResult{
		OutDir:     opts.OutDir,
		Manifest:   manifest,
		Feed:       feed,
		Violations: violations,
	}
	emitProgress(&opts, StepAudit, fmt.Sprintf("Audit found %d violations", len(violations.Violations)), violations)

	if violations.HasErrors() {
		return result, &AuditError{Violations: violations}
	}

	fmt.Fprintf(out, "Done! Site written to %s (build %s).\n", opts.OutDir, manifest.BuildID)
	return result, nil
}

// heroImages are probed in order inside the static directory.
var heroImages = []string{"hero-bg.jpg", "hero-bg.png", "hero-bg.webp"}

func findHeroImage(staticDir string) string {
	if staticDir == "" {
		return ""
	}
	for _, name := range heroImages {
		if info, err := os.Stat(filepath.Join(staticDir, name)); err == nil && !info.IsDir() {
			return "/" + name
		}
	}
	return ""
}
