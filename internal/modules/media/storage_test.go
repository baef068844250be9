package media

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
)

func newTestStorage(t *testing.T) (*Storage, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStorage(dir, []string{"jpg", "jpeg", "png", "gif"})
	require.NoError(t, err)
	return s, dir
}

func TestStoreRejections(t *testing.T) {
	testCases := []struct {
		name     string
		filename string
		content  []byte
	}{
		{"empty content", "photo.png", nil},
		{"path traversal", "../../etc/passwd", []byte("x")},
		{"traversal with valid extension", "../evil.png", []byte("x")},
		{"no extension", "photo", []byte("x")},
		{"trailing dot", "photo.", []byte("x")},
		{"disallowed extension", "script.exe", []byte("x")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, dir := newTestStorage(t)

			_, err := s.Store(tc.filename, tc.content)
			require.Error(t, err)
			assert.Equal(t, apperr.KindFileStorage, apperr.KindOf(err))

			// nothing may be written on rejection
			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestStoreSuccess(t *testing.T) {
	s, dir := newTestStorage(t)

	stored, err := s.Store("photo.png", []byte("fake image bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(stored.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(stored.Filename, ".png"))
	assert.NotEqual(t, "photo.png", stored.Filename, "a fresh unique name is generated")
	assert.Equal(t, "/uploads/"+stored.Filename, stored.URL)

	content, err := os.ReadFile(filepath.Join(dir, stored.Filename))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake image bytes"), content)
}

func TestStoreExtensionCaseInsensitive(t *testing.T) {
	s, _ := newTestStorage(t)

	stored, err := s.Store("SCAN.JPG", []byte("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Filename, ".JPG"))
}

func TestStoreUniqueNames(t *testing.T) {
	s, _ := newTestStorage(t)

	first, err := s.Store("photo.png", []byte("a"))
	require.NoError(t, err)
	second, err := s.Store("photo.png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)
}

func TestNewStorageCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	s, err := NewStorage(dir, []string{"png"})
	require.NoError(t, err)

	info, err := os.Stat(s.Root())
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
