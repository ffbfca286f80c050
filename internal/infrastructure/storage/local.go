package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalLogoStorage writes the logo into the static dir so the HTTP server
// serves it directly under /static.
type LocalLogoStorage struct {
	dir      string
	filename string
}

var _ LogoStorage = (*LocalLogoStorage)(nil)

// NewLocalLogoStorage creates a LocalLogoStorage rooted at dir. filename
// is the fixed stored name, e.g. "logo.png".
func NewLocalLogoStorage(dir, filename string) *LocalLogoStorage {
	return &LocalLogoStorage{dir: dir, filename: filename}
}

// Save stores the logo under the fixed name, replacing any previous file.
// The write goes through a temp file and rename so a concurrent page load
// never sees a truncated image.
func (s *LocalLogoStorage) Save(ctx context.Context, r io.Reader, ext string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, _, err := ValidateExtension(ext); err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create static dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, ".logo-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write logo: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close logo file: %w", err)
	}

	if err := os.Rename(tmpName, s.path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace logo: %w", err)
	}
	return nil
}

// URL returns the static URL of the logo when the file exists.
func (s *LocalLogoStorage) URL(ctx context.Context) string {
	if _, err := os.Stat(s.path()); err != nil {
		return ""
	}
	return "/static/" + s.filename
}

func (s *LocalLogoStorage) path() string {
	return filepath.Join(s.dir, s.filename)
}
