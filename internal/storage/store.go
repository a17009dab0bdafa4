package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fireside/internal/config"
)

// MediaStore writes uploaded media to a storage backend. Writes are
// synchronous; concurrent writes to the same resolved path race and the
// last write wins.
type MediaStore interface {
	Save(ctx context.Context, path string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, path string) error
}

// NewMediaStore builds the media store selected by the configuration.
func NewMediaStore(cfg *config.Config) (MediaStore, error) {
	switch cfg.MediaBackend {
	case "minio":
		return NewMinioStore(cfg)
	case "local":
		return NewLocalStore(cfg.MediaRoot), nil
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.MediaBackend)
	}
}

// LocalStore writes media below a configured root directory on disk.
type LocalStore struct {
	root string
}

// NewLocalStore returns a LocalStore rooted at the given directory.
func NewLocalStore(root string) *LocalStore {
	return &LocalStore{root: root}
}

func (s *LocalStore) Save(_ context.Context, path string, r io.Reader, _ int64, _ string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("create media directory: %w", err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("create media file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("write media file: %w", err)
	}
	return f.Close()
}

func (s *LocalStore) Remove(_ context.Context, path string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
