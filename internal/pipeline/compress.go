package pipeline

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/andybalholm/brotli"
	"golang.org/x/sync/errgroup"
)

// MinCompressSize is the smallest file worth precompressing.
const MinCompressSize = 256

// DefaultWorkers bounds concurrent compression when Options.Workers is zero.
var DefaultWorkers = runtime.NumCPU()

var compressibleExts = map[string]bool{
	".html": true,
	".css":  true,
	".js":   true,
	".json": true,
	".svg":  true,
	".xml":  true,
	".txt":  true,
	".map":  true,
}

// compressible filters files down to text assets of at least MinCompressSize bytes.
func compressible(dir string, files []string) []string {
	var out []string
	for _, name := range files {
		if !compressibleExts[path.Ext(name)] {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name)))
		if err != nil || info.Size() < MinCompressSize {
			continue
		}
		out = append(out, name)
	}
	return out
}

// Precompress writes name.br and name.gz next to each file, at most workers at a time.
func Precompress(ctx context.Context, dir string, files []string, workers int) error {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, name := range files {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			src := filepath.Join(dir, filepath.FromSlash(name))
			if err := compressFile(src, src+".br", newBrotliWriter); err != nil {
				return fmt.Errorf("brotli %s: %w", name, err)
			}
			if err := compressFile(src, src+".gz", newGzipWriter); err != nil {
				return fmt.Errorf("gzip %s: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}

func newBrotliWriter(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(w, brotli.BestCompression), nil
}

func newGzipWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, gzip.BestCompression)
}

func compressFile(src, dst string, newWriter func(io.Writer) (io.WriteCloser, error)) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	zw, err := newWriter(out)
	if err != nil {
		_ = out.Close()
		return err
	}
	if _, err := io.Copy(zw, in); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
