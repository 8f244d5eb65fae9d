// Package imagestore keeps uploaded images on an afero filesystem.
package imagestore

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"strings"

	"github.com/goliatone/go-slug"
	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/SscSPs/news_management_app/internal/apperrors"
)

// MaxImageBytes bounds a single upload.
const MaxImageBytes int64 = 5 << 20

var (
	// ErrUnsupportedFormat is returned for files that are not jpg, png, gif or webp images.
	ErrUnsupportedFormat = fmt.Errorf("%w: unsupported image format", apperrors.ErrValidation)
	// ErrTooLarge is returned for uploads above MaxImageBytes.
	ErrTooLarge = fmt.Errorf("%w: image exceeds %d bytes", apperrors.ErrValidation, MaxImageBytes)
	// ErrInvalidPublicID is returned for ids outside the store folder.
	ErrInvalidPublicID = fmt.Errorf("%w: invalid image id", apperrors.ErrValidation)
)

var allowedExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Store writes images below folder and serves them under baseURL.
type Store struct {
	fs      afero.Fs
	folder  string
	baseURL string
}

// New creates a Store on fs.
func New(fs afero.Fs, folder, baseURL string) *Store {
	folder = strings.Trim(path.Clean("/"+folder), "/")
	if folder == "" {
		folder = "images"
	}
	return &Store{fs: fs, folder: folder, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewOnDisk creates a Store rooted at dir on the OS filesystem.
func NewOnDisk(dir, folder, baseURL string) *Store {
	return New(afero.NewBasePathFs(afero.NewOsFs(), dir), folder, baseURL)
}

// FileSystem exposes the store for static serving.
func (s *Store) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs)
}

// Save stores the content of r and returns its public id, "<folder>/<slug>-<uuid><ext>".
func (s *Store) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	contentType, ok := allowedExtensions[ext]
	if !ok {
		return "", ErrUnsupportedFormat
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > MaxImageBytes {
		return "", ErrTooLarge
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty image", apperrors.ErrValidation)
	}
	if sniffed := http.DetectContentType(data); sniffed != contentType && !(ext == ".webp" && sniffed == "application/octet-stream") {
		return "", ErrUnsupportedFormat
	}

	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name, err := slug.Normalize(base)
	if err != nil || name == "" {
		name = "image"
	}
	publicID := path.Join(s.folder, name+"-"+uuid.NewString()[:8]+ext)

	if err := s.fs.MkdirAll(s.folder, 0o755); err != nil {
		return "", fmt.Errorf("failed to create image folder: %w", err)
	}
	if err := afero.WriteFile(s.fs, publicID, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", publicID, err)
	}
	return publicID, nil
}

// Remove deletes the image stored under publicID. It reports false when there was none.
func (s *Store) Remove(publicID string) (bool, error) {
	key, err := s.key(publicID)
	if err != nil {
		return false, err
	}
	exists, err := afero.Exists(s.fs, key)
	if err != nil {
		return false, fmt.Errorf("failed to stat image %s: %w", key, err)
	}
	if !exists {
		return false, nil
	}
	if err := s.fs.Remove(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("failed to remove image %s: %w", key, err)
	}
	return true, nil
}

// URL returns the public URL of publicID.
func (s *Store) URL(publicID string) string {
	return s.baseURL + "/" + publicID
}

// PublicID extracts the id from a URL produced by URL. Bare ids are returned unchanged.
func (s *Store) PublicID(urlOrID string) string {
	id := strings.TrimPrefix(urlOrID, s.baseURL+"/")
	return strings.TrimPrefix(id, "/")
}

// key validates that publicID stays inside the store folder.
func (s *Store) key(publicID string) (string, error) {
	cleaned := path.Clean("/" + s.PublicID(publicID))
	key := strings.TrimPrefix(cleaned, "/")
	if !strings.HasPrefix(key, s.folder+"/") || key == s.folder+"/" {
		return "", ErrInvalidPublicID
	}
	return key, nil
}
