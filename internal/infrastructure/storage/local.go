// Package storage implements the product image store on the local
// filesystem. Files are served back under a fixed URL prefix by the HTTP
// layer's static route.
package storage

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// URLPrefix is the public path uploaded images are served under.
const URLPrefix = "/uploads/products/"

// LocalStore persists uploads under a single directory. Stored names carry
// a timestamp plus a random suffix so concurrent uploads of the same
// filename never collide.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the upload directory if needed and returns the
// store.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Save writes content to disk under a generated name and returns the public
// URL. filename must already be sanitized by the caller.
func (s *LocalStore) Save(filename string, content io.Reader) (string, error) {
	stored := storedName(filename)
	dst := filepath.Join(s.dir, stored)

	f, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create upload: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		_ = os.Remove(dst)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("close upload: %w", err)
	}

	return URLPrefix + stored, nil
}

// Remove deletes the file behind a public URL. A missing file counts as
// success so cleanup stays idempotent; URLs outside the prefix are ignored.
func (s *LocalStore) Remove(url string) error {
	if !strings.HasPrefix(url, URLPrefix) {
		return nil
	}

	// path.Base strips any traversal attempt baked into a stored URL.
	name := path.Base(strings.TrimPrefix(url, URLPrefix))
	if name == "" || name == "." || name == "/" {
		return nil
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload: %w", err)
	}
	return nil
}

// Dir returns the root directory, for wiring the static file route.
func (s *LocalStore) Dir() string {
	return s.dir
}

func storedName(filename string) string {
	suffix := make([]byte, 4)
	if _, err := rand.Read(suffix); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%s_%08X_%s",
			time.Now().UTC().Format("20060102_150405"),
			time.Now().UnixNano()&0xFFFFFFFF,
			filename)
	}
	return fmt.Sprintf("%s_%08X_%s",
		time.Now().UTC().Format("20060102_150405"),
		suffix,
		filename)
}
