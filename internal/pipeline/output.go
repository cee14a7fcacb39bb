package pipeline

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// prepareOutDir empties dir, refusing paths that would delete the project or the static sources.
func prepareOutDir(dir, staticDir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to clean filesystem root %s", abs)
	}
	if cwd, err := os.Getwd(); err == nil && abs == cwd {
		return fmt.Errorf("refusing to clean the working directory %s", abs)
	}
	if staticDir != "" {
		staticAbs, err := filepath.Abs(staticDir)
		if err == nil && (staticAbs == abs || isWithin(staticAbs, abs)) {
			return fmt.Errorf("output directory %s would remove static directory %s", abs, staticAbs)
		}
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("failed to clean %s: %w", abs, err)
	}
	if err := os.MkdirAll(abs, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", abs, err)
	}
	return nil
}

// isWithin reports whether path lies inside dir.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// copyStatic copies src into dst and returns the number of files copied.
// A missing src is not an error.
func copyStatic(src, dst string) (int, error) {
	info, err := os.Stat(src)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", src, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("static path %s is not a directory", src)
	}

	copied := 0
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		copied++
		return nil
	})
	return copied, err
}

// copyFile copies a single file, keeping its permissions.
func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer func() { _ = srcF.Close() }()

	srcInfo, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}

	if _, err := io.Copy(dstF, srcF); err != nil {
		_ = dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}

// listFiles returns every regular file under dir as a sorted slash-separated relative path.
func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
