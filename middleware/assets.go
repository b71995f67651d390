package middleware

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Assets referenced by the page layout, relative to the static directory
var versionedAssets = []string{
	"css/style.css",
	"js/slider.js",
	"js/map.js",
	"js/contact.js",
	"images/favicon.png",
}

var (
	assetVersions   map[string]string
	assetVersionsMu sync.RWMutex
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	versions := make(map[string]string, len(versionedAssets))
	for _, name := range versionedAssets {
		version := computeFileHash(filepath.Join(staticDir, filepath.FromSlash(name)))
		if version == "" {
			version = "1"
		}
		versions[name] = version
	}

	assetVersionsMu.Lock()
	assetVersions = versions
	assetVersionsMu.Unlock()

	log.Printf("[INFO] Asset versions initialized: %d files", len(versions))
}

// computeFileHash returns the first 8 characters of the MD5 hash of a file
func computeFileHash(path string) string {
	file, err := os.Open(path)
	if err != nil {
		log.Printf("[WARNING] Failed to open file for hashing %s: %v", path, err)
		return ""
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		log.Printf("[WARNING] Failed to hash file %s: %v", path, err)
		return ""
	}

	return hex.EncodeToString(hash.Sum(nil))[:8]
}

// GetAssetVersion returns the version hash of a static asset, "1" when unknown.
// ctx keeps the signature in line with the other template helpers.
func GetAssetVersion(ctx context.Context, name string) string {
	assetVersionsMu.RLock()
	defer assetVersionsMu.RUnlock()

	if version, ok := assetVersions[name]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the cache-busted URL of a static asset
func AssetURL(ctx context.Context, name string) string {
	return "/static/" + name + "?v=" + GetAssetVersion(ctx, name)
}
