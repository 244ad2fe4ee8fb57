package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"metalflow/internal/port"
)

type localStorage struct {
	dir string
}

// NewLocalStorage creates an ObjectStorage backed by a directory on
// disk. The default backend; keys map directly to filenames.
func NewLocalStorage(dir string) (port.ObjectStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &localStorage{dir: dir}, nil
}

func (s *localStorage) Save(_ context.Context, key, _ string, body io.Reader) error {
	path := filepath.Join(s.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("local save mkdir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("local save create: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, body); err != nil {
		return fmt.Errorf("local save write: %w", err)
	}
	return nil
}

func (s *localStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.dir, key))
	if err != nil {
		return nil, fmt.Errorf("local open: %w", err)
	}
	return f, nil
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("local delete: %w", err)
	}
	return nil
}
