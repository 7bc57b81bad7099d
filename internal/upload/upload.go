// Package upload stores multipart file submissions under a per-entity
// directory tree and hands back the public path they will be served from.
package upload

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

const (
	CategoryImages = "images"
	CategoryFiles  = "files"

	// MaxFileSize is checked before anything touches the disk.
	MaxFileSize = 10 << 20
)

var (
	ErrBadCategory     = errors.New("category must be images or files")
	ErrTooLarge        = fmt.Errorf("file exceeds %d bytes", MaxFileSize)
	ErrUnsupportedType = errors.New("unsupported file type")
)

var imageTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

var fileTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.ms-excel": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/zip":              true,
	"application/x-rar-compressed": true,
	"application/vnd.rar":          true,
	"text/plain":                   true,
}

type Handler struct {
	// Dir is the local root of the upload tree, served back under /uploads.
	Dir string
}

type Result struct {
	FilePath     string `json:"filePath"`
	OriginalName string `json:"originalName"`
	Size         int64  `json:"size"`
}

func NewHandler(dir string) *Handler {
	return &Handler{Dir: dir}
}

// Save validates and persists one submitted file. Type and size are
// rejected before any directory or file is created.
func (h *Handler) Save(fh *multipart.FileHeader, entityName, category string) (*Result, error) {
	if category != CategoryImages && category != CategoryFiles {
		return nil, ErrBadCategory
	}
	if fh.Size > MaxFileSize {
		return nil, ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	sniffed, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, err
	}
	if !typeAllowed(category, sniffed) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, sniffed.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	entityDir := Transliterate(entityName)
	if entityDir == "" {
		entityDir = "misc"
	}
	dir := filepath.Join(h.Dir, entityDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	name := storedName(fh.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return nil, err
	}
	defer dst.Close()
	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dst.Name())
		return nil, err
	}

	return &Result{
		FilePath:     "/" + path.Join("uploads", entityDir, category, name),
		OriginalName: fh.Filename,
		Size:         size,
	}, nil
}

func typeAllowed(category string, m *mimetype.MIME) bool {
	base := m.String()
	if i := strings.IndexByte(base, ';'); i >= 0 {
		base = strings.TrimSpace(base[:i])
	}
	if category == CategoryImages {
		return imageTypes[base] || strings.HasPrefix(base, "image/")
	}
	return fileTypes[base]
}

// storedName keeps the extension and makes the base unique without a
// database round-trip: translit(base)-<unix ms>-<0..999>.
func storedName(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	base := Transliterate(strings.TrimSuffix(original, filepath.Ext(original)))
	if base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s-%d-%d%s", base, time.Now().UnixMilli(), rand.Intn(1000), ext)
}
