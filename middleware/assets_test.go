package middleware

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeFileHash(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.css")
	if err := os.WriteFile(tmpFile, []byte("body { color: red; }"), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	hash := computeFileHash(tmpFile)
	assert.Len(t, hash, 8)

	assert.Equal(t, "", computeFileHash("non_existent_file.css"))
}

func TestComputeAssetVersions(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "css"), 0755)
	os.WriteFile(filepath.Join(dir, "css", "style.css"), []byte("css"), 0644)

	versions := computeAssetVersions(dir, []string{"css/style.css", "js/missing.js"})
	assert.Len(t, versions["css/style.css"], 8)
	assert.Equal(t, "1", versions["js/missing.js"])
}

func TestAssetURL(t *testing.T) {
	ctx := context.Background()

	assert.Equal(t, "1", GetAssetVersion(ctx, "js/unknown.js"))
	assert.Equal(t, "/static/js/unknown.js?v=1", AssetURL(ctx, "js/unknown.js"))

	InitAssetVersions(filepath.Join("..", "static"))
	v := GetAssetVersion(ctx, "css/style.css")
	assert.NotEmpty(t, v)
	assert.Equal(t, "/static/css/style.css?v="+v, AssetURL(ctx, "css/style.css"))
}
