package services

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"defensa_juridica_web/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	dir := t.TempDir()
	storage := NewLocalStorage(dir)
	ctx := context.Background()
	content := "fake-webp"

	result, err := storage.Put(ctx, strings.NewReader(content), "/slides/./portada.webp", "image/webp", int64(len(content)))
	require.NoError(t, err)
	assert.Equal(t, &StorageResult{
		Key:         "slides/portada.webp",
		Size:        int64(len(content)),
		ContentType: "image/webp",
		URL:         "/media/slides/portada.webp",
	}, result)

	onDisk, err := os.ReadFile(filepath.Join(dir, "slides", "portada.webp"))
	require.NoError(t, err)
	assert.Equal(t, content, string(onDisk))

	body, contentType, err := storage.Get(ctx, "slides/portada.webp")
	require.NoError(t, err)
	got, _ := io.ReadAll(body)
	body.Close()
	assert.Equal(t, content, string(got))
	assert.Equal(t, "image/webp", contentType)

	_, _, err = storage.Get(ctx, "slides/none.webp")
	assert.ErrorIs(t, err, ErrMediaNotFound)

	_, _, err = storage.Get(ctx, "../secret.txt")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = storage.Put(ctx, strings.NewReader("x"), "slides/../../x", "text/plain", 1)
	assert.ErrorIs(t, err, ErrInvalidKey)
}

func TestCleanMediaKey(t *testing.T) {
	valid := map[string]string{
		"slides/a.webp":    "slides/a.webp",
		"/slides/./a.webp": "slides/a.webp",
		"slides//a.webp":   "slides/a.webp",
		" a.webp ":         "a.webp",
	}
	for in, want := range valid {
		got, err := CleanMediaKey(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "/", "..", "../etc/passwd", "a/../../b"} {
		_, err := CleanMediaKey(in)
		assert.ErrorIs(t, err, ErrInvalidKey, in)
	}
}

func TestContentTypeFor(t *testing.T) {
	assert.Equal(t, "image/webp", ContentTypeFor("a.WEBP"))
	assert.Equal(t, "image/avif", ContentTypeFor("slides/b.avif"))
	assert.Equal(t, "image/jpeg", ContentTypeFor("a.jpeg"))
	assert.Equal(t, "application/octet-stream", ContentTypeFor("notes.txt"))
}

func TestR2PublicURL(t *testing.T) {
	public := &R2Storage{bucket: "media", publicURL: "https://cdn.example.com/"}
	assert.Equal(t, "https://cdn.example.com/slides/a.webp", public.PublicURL("slides/a.webp"))

	private := &R2Storage{bucket: "media"}
	assert.Equal(t, "/media/slides/a.webp", private.PublicURL("slides/a.webp"))
}

func TestInitializeStorageWithoutR2(t *testing.T) {
	saved := Storage
	t.Cleanup(func() { Storage = saved })

	dir := t.TempDir()
	InitializeStorage(&config.Config{MediaDir: dir, R2AccountID: "acct"})
	local, ok := Storage.(*LocalStorage)
	require.True(t, ok)
	assert.Equal(t, dir, local.baseDir)
}
