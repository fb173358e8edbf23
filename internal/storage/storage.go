package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrNotImage = errors.New("file is not an image")
	ErrTooLarge = errors.New("file exceeds the size limit")
)

// extensions we accept for payment proofs and QR codes
var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Store saves uploaded images on local disk and serves them back under
// a public base URL. File names are random so uploads cannot collide
// or be guessed.
type Store struct {
	dir      string
	baseURL  string
	maxBytes int64
}

func NewStore(dir, baseURL string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Store{
		dir:      dir,
		baseURL:  strings.TrimRight(baseURL, "/"),
		maxBytes: maxBytes,
	}, nil
}

// SaveImage validates and persists one uploaded image, returning its
// public URL.
func (s *Store) SaveImage(header *multipart.FileHeader) (string, error) {
	if s.maxBytes > 0 && header.Size > s.maxBytes {
		return "", ErrTooLarge
	}
	ext, err := ImageExtension(header.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.baseURL + "/" + name, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *Store) Dir() string {
	return s.dir
}

// ImageExtension maps an image content type to a file extension,
// rejecting anything that is not a known image type.
func ImageExtension(contentType string) (string, error) {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))
	ext, ok := imageExtensions[mediaType]
	if !ok {
		return "", ErrNotImage
	}
	return ext, nil
}
