// internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// BlobStore persists uploaded binary assets (profile photos, documents, QR
// images) and returns a stable public retrieval URL for each object.
type BlobStore interface {
	Save(ctx context.Context, objectPath string, data []byte) (string, error)
}

// LocalStore writes blobs under a directory served as static files. The
// returned URL is baseURL joined with the object path.
type LocalStore struct {
	root    string
	baseURL string
}

func NewLocalStore(root, baseURL string) *LocalStore {
	return &LocalStore{
		root:    root,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *LocalStore) Save(_ context.Context, objectPath string, data []byte) (string, error) {
	objectPath = path.Clean("/" + objectPath)[1:]
	if objectPath == "" || objectPath == "." {
		return "", fmt.Errorf("empty object path")
	}

	full := filepath.Join(s.root, filepath.FromSlash(objectPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("failed to create blob directory: %w", err)
	}
	if err := os.WriteFile(full, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}

	return s.baseURL + "/" + objectPath, nil
}
