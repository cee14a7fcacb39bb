// Package deploy uploads a built site to a remote host over SFTP.
package deploy

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// RemoteFS is the subset of an SFTP client the uploader needs.
type RemoteFS interface {
	MkdirAll(dir string) error
	Create(name string) (io.WriteCloser, error)
}

// Upload maps one local file to its remote destination.
type Upload struct {
	Local  string
	Remote string
}

// lastFiles are uploaded after every other file so the live page never references missing assets.
var lastFiles = map[string]int{
	"index.html": 1,
	"build.json": 2,
}

// Plan lists every file under localDir with its path under remoteDir.
// Assets come first in lexical order, then index.html, then build.json.
func Plan(localDir, remoteDir string) ([]Upload, error) {
	info, err := os.Stat(localDir)
	if err != nil {
		return nil, fmt.Errorf("output directory %s not found: %w", localDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output path %s is not a directory", localDir)
	}

	var rels []string
	err = filepath.WalkDir(localDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(localDir, p)
		if err != nil {
			return err
		}
		rels = append(rels, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", localDir, err)
	}

	sort.SliceStable(rels, func(i, j int) bool {
		ri, rj := lastFiles[rels[i]], lastFiles[rels[j]]
		if ri != rj {
			return ri < rj
		}
		return rels[i] < rels[j]
	})

	uploads := make([]Upload, len(rels))
	for i, rel := range rels {
		uploads[i] = Upload{
			Local:  filepath.Join(localDir, filepath.FromSlash(rel)),
			Remote: path.Join(remoteDir, rel),
		}
	}
	return uploads, nil
}

// Run uploads files in order and returns how many were written.
func Run(ctx context.Context, remote RemoteFS, uploads []Upload) (int, error) {
	made := make(map[string]bool)
	for i, u := range uploads {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("sftp: upload canceled: %w", err)
		}

		dir := path.Dir(u.Remote)
		if !made[dir] {
			if err := remote.MkdirAll(dir); err != nil {
				return i, fmt.Errorf("sftp: mkdir %s: %w", dir, err)
			}
			made[dir] = true
		}

		if err := uploadFile(remote, u); err != nil {
			return i, err
		}
	}
	return len(uploads), nil
}

func uploadFile(remote RemoteFS, u Upload) error {
	src, err := os.Open(u.Local)
	if err != nil {
		return fmt.Errorf("sftp: open local file: %w", err)
	}
	defer func() { _ = src.Close() }()

	dst, err := remote.Create(u.Remote)
	if err != nil {
		return fmt.Errorf("sftp: create remote file %s: %w", u.Remote, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("sftp: upload copy %s: %w", u.Remote, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("sftp: close remote file %s: %w", u.Remote, err)
	}
	return nil
}
