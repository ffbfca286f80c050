// Package persistence implements the inventory Store on top of a single
// JSON file. Reads always hit the disk so that external edits to the file
// show up on the next request.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/storemap/backend/internal/domain/inventory"
)

// FileStore reads and overwrites the inventory document at a fixed path.
type FileStore struct {
	path string
}

var _ inventory.Store = (*FileStore)(nil)

// NewFileStore creates a FileStore for the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the document from disk. A missing file yields the default
// empty inventory without error; a corrupt file is an error.
func (s *FileStore) Load(ctx context.Context) (*inventory.Inventory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return inventory.NewDefault(), nil
		}
		return nil, fmt.Errorf("read inventory file: %w", err)
	}

	var inv inventory.Inventory
	if err := json.Unmarshal(b, &inv); err != nil {
		return nil, fmt.Errorf("parse inventory file: %w", err)
	}
	inv.Normalize()
	return &inv, nil
}

// Save overwrites the document atomically: the JSON is written to a temp
// file in the same directory and renamed into place, so concurrent
// readers never observe a half-written file.
func (s *FileStore) Save(ctx context.Context, inv *inventory.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal inventory: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".inventory-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace inventory file: %w", err)
	}
	return nil
}
