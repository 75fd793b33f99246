package ports

import "io"

// FileStore abstracts where uploaded product images live. Save returns the
// public URL the stored file is served under; Remove takes that same URL
// back and must be idempotent (removing an already-missing file succeeds),
// so post-mutation cleanup can be retried safely.
type FileStore interface {
	Save(filename string, content io.Reader) (string, error)
	Remove(url string) error
}
