package imagestore_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/imagestore"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

func newStore() (*imagestore.Store, afero.Fs) {
	fs := afero.NewMemMapFs()
	return imagestore.New(fs, "funews", "/static/"), fs
}

func TestSave_WritesUnderFolder(t *testing.T) {
	store, fs := newStore()

	id, err := store.Save("Breaking News Photo.PNG", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(id, "funews/breaking-news-photo-"), id)
	assert.True(t, strings.HasSuffix(id, ".png"), id)

	data, err := afero.ReadFile(fs, id)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
	assert.Equal(t, "/static/"+id, store.URL(id))
}

func TestSave_RejectsUnsupportedExtension(t *testing.T) {
	store, _ := newStore()

	_, err := store.Save("script.sh", strings.NewReader("#!/bin/sh"))
	assert.ErrorIs(t, err, imagestore.ErrUnsupportedFormat)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestSave_RejectsMismatchedContent(t *testing.T) {
	store, _ := newStore()

	_, err := store.Save("photo.jpg", strings.NewReader("<html>not an image</html>"))
	assert.ErrorIs(t, err, imagestore.ErrUnsupportedFormat)
}

func TestSave_RejectsOversized(t *testing.T) {
	store, _ := newStore()
	big := append(append([]byte{}, pngHeader...), make([]byte, imagestore.MaxImageBytes)...)

	_, err := store.Save("big.png", bytes.NewReader(big))
	assert.ErrorIs(t, err, imagestore.ErrTooLarge)
}

func TestSave_RejectsEmpty(t *testing.T) {
	store, _ := newStore()

	_, err := store.Save("empty.png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRemove(t *testing.T) {
	store, fs := newStore()
	id, err := store.Save("a.png", bytes.NewReader(pngHeader))
	require.NoError(t, err)

	removed, err := store.Remove(store.URL(id))
	require.NoError(t, err)
	assert.True(t, removed)

	exists, err := afero.Exists(fs, id)
	require.NoError(t, err)
	assert.False(t, exists)

	removed, err = store.Remove(id)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestRemove_RejectsPathsOutsideFolder(t *testing.T) {
	store, fs := newStore()
	require.NoError(t, afero.WriteFile(fs, "secret.txt", []byte("x"), 0o644))

	for _, id := range []string{"../secret.txt", "funews/../secret.txt", "other/a.png", "funews/"} {
		_, err := store.Remove(id)
		assert.ErrorIs(t, err, imagestore.ErrInvalidPublicID, id)
	}

	exists, _ := afero.Exists(fs, "secret.txt")
	assert.True(t, exists)
}
