// Package media validates and stores uploaded image files under the
// configured directory, serving them back at /uploads/<name>.
package media

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
)

// StoredFile is the result of a successful upload.
type StoredFile struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Storage persists uploaded files on the local filesystem.
type Storage struct {
	root    string
	allowed map[string]bool
}

// NewStorage creates the upload directory if needed. allowedExts are
// compared case-insensitively, without the leading dot.
func NewStorage(root string, allowedExts []string) (*Storage, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	allowed := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &Storage{root: abs, allowed: allowed}, nil
}

// Root returns the absolute upload directory, for static serving.
func (s *Storage) Root() string { return s.root }

// Store validates the file and writes it under a fresh unique name.
// Validation order: empty content, parent-path segments, extension
// presence, extension allow-list. Nothing is written until all checks pass.
func (s *Storage) Store(filename string, content []byte) (*StoredFile, error) {
	if len(content) == 0 {
		return nil, apperr.FileStorage("Cannot store empty file")
	}
	if strings.Contains(filename, "..") {
		return nil, apperr.FileStorage("Filename contains invalid path sequence: " + filename)
	}
	ext, err := extension(filename)
	if err != nil {
		return nil, err
	}
	if !s.allowed[strings.ToLower(ext)] {
		return nil, apperr.FileStorage("File type not allowed. Allowed types: " + s.allowedList())
	}

	name := uuid.New().String() + "." + ext
	if err := os.WriteFile(filepath.Join(s.root, name), content, 0o644); err != nil {
		return nil, apperr.Wrap(apperr.KindFileStorage, "Could not store file "+filename, err)
	}

	zap.S().Infow("file stored", "filename", name, "bytes", len(content))
	return &StoredFile{URL: "/uploads/" + name, Filename: name}, nil
}

func extension(filename string) (string, error) {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return "", apperr.FileStorage("File must have an extension")
	}
	return filename[idx+1:], nil
}

func (s *Storage) allowedList() string {
	exts := make([]string, 0, len(s.allowed))
	for ext := range s.allowed {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return strings.Join(exts, ", ")
}
