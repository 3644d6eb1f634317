// Package fs implements the filesystem adapters: scoped temp dirs, file writes and content digests.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Workspace = (*Workspace)(nil)

// Workspace provisions per-invocation temp directories under a base directory.
type Workspace struct {
	baseDir string
}

// NewWorkspace creates a Workspace rooted at baseDir. An empty baseDir uses os.TempDir.
func NewWorkspace(baseDir string) *Workspace {
	return &Workspace{baseDir: baseDir}
}

// WithTempDir creates a directory named stylegen-<uuid>-*, passes it to fn and
// removes it recursively on every exit path, panics included. A removal failure
// is joined onto fn's error so neither is lost.
func (w *Workspace) WithTempDir(ctx context.Context, fn func(dir string) error) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	prefix := domain.TempDirPrefix + uuid.NewString() + "-"
	dir, mkErr := os.MkdirTemp(w.baseDir, prefix)
	if mkErr != nil {
		return zerr.With(zerr.Wrap(domain.ErrTempDirFailed, mkErr.Error()), domain.MetaPath, filepath.Join(w.baseDir, prefix))
	}

	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			cleanupErr := zerr.With(zerr.Wrap(domain.ErrTempDirCleanupFailed, rmErr.Error()), domain.MetaPath, dir)
			err = errors.Join(err, cleanupErr)
		}
	}()

	return fn(dir)
}

// WriteFile writes content to path with domain.FilePerm.
func (w *Workspace) WriteFile(ctx context.Context, path, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	//nolint:gosec // Path is chosen by the caller
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), domain.MetaPath, path)
	}
	return nil
}
