// Package storage provides logo storage implementations: the local
// filesystem (served straight from the static dir) and any S3-compatible
// object store.
package storage

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"github.com/storemap/backend/internal/domain/shared"
)

// LogoStorage stores the uploaded store logo under a fixed name,
// overwriting any previous logo.
type LogoStorage interface {
	// Save persists the logo content. ext is the original file extension
	// (with or without leading dot) and only decides the content type; the
	// stored name is fixed.
	Save(ctx context.Context, r io.Reader, ext string) error
	// URL returns the public URL of the current logo, or "" when none
	// exists yet.
	URL(ctx context.Context) string
}

// allowedExtensions lists the accepted upload extensions. Validation is
// by extension only; content is not sniffed.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// ErrUnsupportedExtension rejects uploads with an extension outside the
// allowed image set.
var ErrUnsupportedExtension = shared.NewDomainError(
	"INVALID_INPUT",
	"Unsupported image type; use png, jpg, jpeg, gif or webp",
)

// ValidateExtension normalizes an extension and checks it against the
// allowed set, returning the canonical extension and content type.
func ValidateExtension(ext string) (string, string, error) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", "", ErrUnsupportedExtension
	}
	return ext, contentType, nil
}

// ExtensionOf extracts the lowercased extension from an uploaded filename.
func ExtensionOf(filename string) string {
	return strings.ToLower(filepath.Ext(filename))
}
