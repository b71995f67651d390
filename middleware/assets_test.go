package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	require.NoError(t, os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644))

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Equal(t, "", computeFileHash("non_existent_file.css"))
}

func TestInitAssetVersions(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "js"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("css"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "js", "slider.js"), []byte("js"), 0644))

	InitAssetVersions(dir)

	ctx := context.Background()
	assert.Len(t, GetAssetVersion(ctx, "css/style.css"), 8)
	assert.Len(t, GetAssetVersion(ctx, "js/slider.js"), 8)
	assert.Equal(t, "1", GetAssetVersion(ctx, "js/map.js"), "missing file falls back")
	assert.Equal(t, "1", GetAssetVersion(ctx, "js/unknown.js"))

	assert.Equal(t, "/static/css/style.css?v="+GetAssetVersion(ctx, "css/style.css"), AssetURL(ctx, "css/style.css"))
}
