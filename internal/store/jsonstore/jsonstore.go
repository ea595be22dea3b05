package jsonstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/endurance/internal/store"
)

// JSON-backed storage. One human-readable file per key, replaced atomically.
// No locking; the last writer wins, which is fine for a local single-user app.

const fileExt = ".json"

// Backend stores each key as <Dir>/<key>.json.
type Backend struct {
	Dir string
}

func New(dir string) (*Backend, error) {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return nil, errors.New("jsonstore: missing dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir: %w", err)
	}
	return &Backend{Dir: dir}, nil
}

// Path is the file holding key.
func (b *Backend) Path(key string) string {
	return filepath.Join(b.Dir, key+fileExt)
}

func (b *Backend) Get(_ context.Context, key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, store.ErrNotFound
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

func (b *Backend) Put(_ context.Context, key string, value []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	f, err := os.CreateTemp(b.Dir, key+fileExt+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(value); err != nil {
		_ = f.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close file: %w", err)
	}
	_ = os.Chmod(tmp, 0o644)
	if err := os.Rename(tmp, b.Path(key)); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}

func (b *Backend) Close() error { return nil }

func checkKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("jsonstore: invalid key %q", key)
	}
	return nil
}
