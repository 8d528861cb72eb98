package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"medical-store/internal/domain"
)

// FileRepository stores the collection as <dir>/<key>.json.
type FileRepository struct {
	path string
}

// NewFileRepository creates dir if needed.
func NewFileRepository(dir, key string) (*FileRepository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &FileRepository{path: filepath.Join(dir, key+".json")}, nil
}

// Path is the file the collection is written to.
func (r *FileRepository) Path() string {
	return r.path
}

func (r *FileRepository) Load(ctx context.Context) ([]domain.InventoryItem, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoData
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", r.path, err)
	}
	return decodeItems(data)
}

// Save writes to a temp file in the same directory and renames it over the
// target so a crash never leaves a half-written file.
func (r *FileRepository) Save(ctx context.Context, items []domain.InventoryItem) error {
	data, err := encodeItems(items)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", r.path, err)
	}
	return nil
}

func (r *FileRepository) Close() error {
	return nil
}
