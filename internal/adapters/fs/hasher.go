package fs

import (
	"errors"
	"io"
	iofs "io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/stylegen/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes xxhash digests of files and strings.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash computes the xxhash of a file's content.
// A missing file reports ok=false without error.
func (h *Hasher) ComputeFileHash(path string) (sum uint64, ok bool, err error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return 0, false, nil
		}
		return 0, false, zerr.With(zerr.Wrap(domain.ErrFileReadFailed, err.Error()), domain.MetaPath, path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return 0, false, zerr.With(zerr.Wrap(domain.ErrFileHashFailed, err.Error()), domain.MetaPath, path)
	}

	return digest.Sum64(), true, nil
}

// HashString computes the xxhash of s.
func (h *Hasher) HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}
