package cli

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnerr0/tubereport/internal/config"
	"github.com/runnerr0/tubereport/internal/videocache"
)

func seedCache(t *testing.T, dir, name string, published ...string) {
	t.Helper()
	c := videocache.New()
	items := make([]videocache.Item, len(published))
	for i, p := range published {
		ts, err := time.Parse(time.RFC3339, p)
		require.NoError(t, err)
		items[i] = videocache.Item{ID: name + "-" + p, Duration: "PT1M", PublishedAt: ts}
	}
	c.Merge(items)
	require.NoError(t, c.Save(filepath.Join(dir, "video_cache_"+name+".json")))
}

func TestStatus_NoCaches(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CacheDir = t.TempDir()

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "dev"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	assert.Contains(t, output, "tubereport Status")
	assert.Contains(t, output, "dev")
	assert.Contains(t, output, "No channel caches found.")
	assert.Contains(t, output, "not written yet")
}

func TestStatus_ListsCaches(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir, "Alpha", "2023-11-02T00:00:00Z", "2024-02-10T00:00:00Z")
	seedCache(t, dir, "Beta", "2024-01-01T00:00:00Z")

	cfg := config.DefaultConfig()
	cfg.CacheDir = dir

	cmd := &StatusCommand{globals: &GlobalFlags{}, version: "dev"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	assert.Contains(t, output, "video_cache_Alpha.json")
	assert.Contains(t, output, "video_cache_Beta.json")
	assert.Contains(t, output, "2023-11 .. 2024-02")
	assert.Contains(t, output, "cursor 2024-02-10T00:00:00Z")
}

func TestStatus_JSON(t *testing.T) {
	dir := t.TempDir()
	seedCache(t, dir, "Alpha", "2024-01-01T00:00:00Z", "2024-03-05T00:00:00Z")

	cfg := config.DefaultConfig()
	cfg.CacheDir = dir

	cmd := &StatusCommand{globals: &GlobalFlags{JSON: true}, version: "dev"}
	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithConfig(cfg))
	})

	var got statusJSON
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, "dev", got.Version)
	require.Len(t, got.Caches, 1)
	assert.Equal(t, "video_cache_Alpha.json", got.Caches[0].File)
	assert.Equal(t, 2, got.Caches[0].Videos)
	assert.Equal(t, "2024-01", got.Caches[0].OldestMonth)
	assert.Equal(t, "2024-03", got.Caches[0].NewestMonth)
	assert.Equal(t, "2024-03-05T00:00:00Z", got.Caches[0].Cursor)
}
