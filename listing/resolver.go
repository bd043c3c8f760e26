// Package listing renders vehicle records into outbound message units,
// resolving attached images with per-image failure isolation.
package listing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrImageNotFound marks an image path that does not resolve to a resource.
// A missing image annotates the listing text; it is never fatal.
var ErrImageNotFound = errors.New("image not found")

// Resolver turns an image path from a vehicle record into the image bytes.
type Resolver interface {
	Resolve(path string) ([]byte, error)
}

// FileResolver reads images from the local filesystem, optionally rooted at a
// base directory. The zero value resolves paths as-is.
type FileResolver struct {
	BaseDir string
}

// Resolve reads the image file, wrapping a missing file in ErrImageNotFound so
// callers can tell "no such image" apart from real read failures.
func (r FileResolver) Resolve(path string) ([]byte, error) {
	full := path
	if r.BaseDir != "" {
		full = filepath.Join(r.BaseDir, path)
	}
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrImageNotFound, path)
		}
		return nil, fmt.Errorf("listing: read image %s: %w", path, err)
	}
	return data, nil
}
