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

// versionedAssets are the files under the static directory that get cache-busting hashes
var versionedAssets = []string{
	"css/style.css",
	"js/app.js",
	"images/favicon.svg",
}

var (
	assetVersions     map[string]string
	assetVersionsOnce sync.Once
)

// InitAssetVersions computes file hashes for cache busting at startup
func InitAssetVersions(staticDir string) {
	assetVersionsOnce.Do(func() {
		assetVersions = computeAssetVersions(staticDir, versionedAssets)
		log.Printf("[INFO] Asset versions initialized: %d files", len(assetVersions))
	})
}

func computeAssetVersions(staticDir string, files []string) map[string]string {
	versions := make(map[string]string, len(files))
	for _, file := range files {
		version := computeFileHash(filepath.Join(staticDir, filepath.FromSlash(file)))
		if version == "" {
			version = "1"
		}
		versions[file] = version
	}
	return versions
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

// GetAssetVersion returns the version hash of a static file, "1" when unknown.
// ctx is unused; it keeps the signature in line with the other template helpers.
func GetAssetVersion(ctx context.Context, file string) string {
	if version, ok := assetVersions[file]; ok {
		return version
	}
	return "1"
}

// AssetURL returns the public URL of a static file with its version query
func AssetURL(ctx context.Context, file string) string {
	return "/static/" + file + "?v=" + GetAssetVersion(ctx, file)
}
