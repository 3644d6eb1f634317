package fs

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/stylegen/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.OutputWriter = (*OutputWriter)(nil)

// OutputWriter writes generated stylesheets, skipping writes that would not change the file.
type OutputWriter struct {
	hasher *Hasher
	force  bool
}

// NewOutputWriter creates an OutputWriter. With force set every call writes.
func NewOutputWriter(hasher *Hasher, force bool) *OutputWriter {
	return &OutputWriter{hasher: hasher, force: force}
}

// WriteIfChanged writes content to path unless the existing file has the same digest.
func (o *OutputWriter) WriteIfChanged(ctx context.Context, path, content string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if !o.force {
		existing, ok, err := o.hasher.ComputeFileHash(path)
		if err != nil {
			return false, err
		}
		if ok && existing == o.hasher.HashString(content) {
			return false, nil
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return false, zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), domain.MetaPath, dir)
		}
	}

	//nolint:gosec // Output path is chosen by the user
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrFileWriteFailed, err.Error()), domain.MetaPath, path)
	}
	return true, nil
}
