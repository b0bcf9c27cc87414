package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

// DiskStore writes uploaded files below a base directory, one subdirectory
// per document category.
type DiskStore struct {
	baseDir  string
	maxBytes int64
}

// NewDiskStore constructs the store.
func NewDiskStore(baseDir string, maxBytes int64) *DiskStore {
	return &DiskStore{baseDir: baseDir, maxBytes: maxBytes}
}

var documentExtensions = map[string]struct{}{
	".pdf": {}, ".doc": {}, ".docx": {}, ".xls": {}, ".xlsx": {}, ".txt": {},
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".webp": {}, ".svg": {},
}

var imageExtensions = map[string]struct{}{
	".jpg": {}, ".jpeg": {}, ".png": {}, ".gif": {}, ".bmp": {}, ".webp": {}, ".svg": {},
}

// SaveDocument stores a clinical document upload and returns its relative path.
func (s *DiskStore) SaveDocument(file *multipart.FileHeader) (string, error) {
	return s.save(file, "clinical_documents", "clinical-doc", documentExtensions)
}

// SaveImage stores a patient image upload and returns its relative path.
func (s *DiskStore) SaveImage(file *multipart.FileHeader) (string, error) {
	return s.save(file, "patient_images", "patient-img", imageExtensions)
}

func (s *DiskStore) save(file *multipart.FileHeader, category, prefix string, allowed map[string]struct{}) (string, error) {
	if file.Size > s.maxBytes {
		return "", apperrors.NewValidationError("file too large", map[string]any{"max_bytes": s.maxBytes})
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if _, ok := allowed[ext]; !ok {
		return "", apperrors.NewValidationError("unsupported file type", map[string]any{"extension": ext})
	}

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s-%s%s", prefix, uuid.NewString(), ext)
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", err
	}
	return filepath.ToSlash(dst), nil
}

// Resolve maps a stored filename back to an absolute path inside the given
// category. Filenames containing path separators are rejected.
func (s *DiskStore) Resolve(category, filename string) (string, error) {
	if filename != filepath.Base(filename) || strings.Contains(filename, "..") {
		return "", apperrors.NewValidationError("invalid filename", nil)
	}
	path := filepath.Join(s.baseDir, category, filename)
	if _, err := os.Stat(path); err != nil {
		return "", apperrors.NewNotFound("file", map[string]any{"filename": filename})
	}
	return path, nil
}

// Remove deletes a stored file, ignoring missing files.
func (s *DiskStore) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.FromSlash(relPath))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
