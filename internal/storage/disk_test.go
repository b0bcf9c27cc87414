package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/spec-kit/clinic-service/pkg/util"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func TestSaveDocumentAndResolve(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 1<<20)

	path, err := store.SaveDocument(makeFileHeader(t, "consent.pdf", []byte("%PDF-1.4")))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))
	assert.Contains(t, path, "clinical_documents")

	saved, err := os.ReadFile(filepath.FromSlash(path))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), saved)

	resolved, err := store.Resolve("clinical_documents", filepath.Base(path))
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash(path), resolved)
}

func TestSaveRejectsUnsupportedExtension(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 1<<20)

	_, err := store.SaveDocument(makeFileHeader(t, "malware.exe", []byte("MZ")))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	// documents accept pdf but images do not
	_, err = store.SaveImage(makeFileHeader(t, "scan.pdf", []byte("%PDF")))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)

	_, err = store.SaveImage(makeFileHeader(t, "xray.png", []byte("png-bytes")))
	require.NoError(t, err)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 4)

	_, err := store.SaveDocument(makeFileHeader(t, "big.pdf", []byte("more than four bytes")))
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestResolveRejectsTraversal(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 1<<20)

	for _, name := range []string{"../secret", "..%2fsecret", "a/../../b", "sub/dir.pdf"} {
		_, err := store.Resolve("clinical_documents", name)
		require.Error(t, err, name)
	}
}

func TestResolveMissingFile(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 1<<20)

	_, err := store.Resolve("patient_images", "nope.png")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestRemove(t *testing.T) {
	store := NewDiskStore(t.TempDir(), 1<<20)

	path, err := store.SaveImage(makeFileHeader(t, "photo.jpg", []byte("jpg")))
	require.NoError(t, err)

	require.NoError(t, store.Remove(path))
	_, statErr := os.Stat(filepath.FromSlash(path))
	assert.True(t, os.IsNotExist(statErr))

	// removing again is not an error
	require.NoError(t, store.Remove(path))
	require.NoError(t, store.Remove(""))
}
