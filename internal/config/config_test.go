package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{
	"INTERACT_RANGE", "USE_SPHERE_CAST", "SPHERE_RADIUS",
	"INTERACT_KEY", "DESTROY_KEY", "INVENTORY_KEY",
	"HOLD_TIME", "DESTROY_RADIUS", "REMOVAL_DELAY",
	"INVENTORY_WIDTH", "INVENTORY_HEIGHT",
	"ASSET_ROOT", "ASSET_CACHE_SIZE",
	"LOG_LEVEL", "LOG_FORMAT", "METRICS_ADDR",
}

// isolate runs the test from an empty directory with none of our vars set.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range keys {
		if old, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { os.Setenv(k, old) })
		}
	}
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, float32(3), cfg.InteractRange)
	assert.True(t, cfg.UseSphereCast)
	assert.Equal(t, float32(0.2), cfg.SphereRadius)
	assert.Equal(t, "E", cfg.InteractKey)
	assert.Equal(t, "H", cfg.DestroyKey)
	assert.Equal(t, "I", cfg.InventoryKey)
	assert.Equal(t, 1500*time.Millisecond, cfg.HoldTime)
	assert.Equal(t, float32(3), cfg.DestroyRadius)
	assert.Equal(t, 2*time.Second, cfg.RemovalDelay)
	assert.Equal(t, 8, cfg.InventoryWidth)
	assert.Equal(t, 6, cfg.InventoryHeight)
	assert.Equal(t, "assets/images", cfg.AssetRoot)
	assert.Equal(t, 64, cfg.AssetCacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)

	assert.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("INTERACT_RANGE", "5.5")
	t.Setenv("USE_SPHERE_CAST", "false")
	t.Setenv("INTERACT_KEY", "f")
	t.Setenv("HOLD_TIME", "2")
	t.Setenv("REMOVAL_DELAY", "250ms")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("METRICS_ADDR", "localhost:9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, float32(5.5), cfg.InteractRange)
	assert.False(t, cfg.UseSphereCast)
	assert.Equal(t, "F", cfg.InteractKey)
	assert.Equal(t, 2*time.Second, cfg.HoldTime)
	assert.Equal(t, 250*time.Millisecond, cfg.RemovalDelay)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoadReadsDotEnv(t *testing.T) {
	isolate(t)
	dir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("INVENTORY_WIDTH=4\nASSET_ROOT=/tmp/art\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("INVENTORY_WIDTH")
		os.Unsetenv("ASSET_ROOT")
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.InventoryWidth)
	assert.Equal(t, "/tmp/art", cfg.AssetRoot)
}

func TestLoadReportsEveryParseError(t *testing.T) {
	isolate(t)
	t.Setenv("INTERACT_RANGE", "far")
	t.Setenv("INVENTORY_WIDTH", "eight")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INTERACT_RANGE")
	assert.Contains(t, err.Error(), "INVENTORY_WIDTH")
}

func TestValidateFlagsOutOfRange(t *testing.T) {
	isolate(t)
	t.Setenv("INTERACT_RANGE", "0")
	t.Setenv("DESTROY_KEY", "E")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := Load()
	require.NoError(t, err, "parses fine, only the ranges are wrong")

	violations := Violations(cfg.Validate())
	require.Len(t, violations, 3)
	assert.Contains(t, violations[0], "InteractRange")
	assert.Contains(t, violations[1], "DestroyKey")
	assert.Contains(t, violations[2], "LogLevel")
}

func TestViolationsNil(t *testing.T) {
	assert.Nil(t, Violations(nil))
}
