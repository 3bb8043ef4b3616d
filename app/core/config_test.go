package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pearlmap.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
[camera]
max_scale = 4.0

[motion]
float_amplitude = 12.0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, float32(4.0), cfg.Camera.MaxScale)
	assert.Equal(t, float32(12.0), cfg.Motion.FloatAmplitude)

	// Untouched fields keep their defaults.
	def := DefaultConfig()
	assert.Equal(t, def.Camera.MinScale, cfg.Camera.MinScale)
	assert.Equal(t, def.Layout.RingRadii, cfg.Layout.RingRadii)
	assert.Equal(t, def.Gestures.TapSlop, cfg.Gestures.TapSlop)
}

func TestLoadConfig_RingOverride(t *testing.T) {
	path := writeConfig(t, `
[layout]
ring_capacities = [4]
ring_radii = [100.0, 200.0]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, cfg.Layout.RingCapacities)
	assert.Equal(t, []float32{100, 200}, cfg.Layout.RingRadii)
}

func TestLoadConfig_MalformedTOML(t *testing.T) {
	path := writeConfig(t, `[camera`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsMissingOverflowRing(t *testing.T) {
	// As many capacities as radii leaves no ring for the remainder.
	path := writeConfig(t, `
[layout]
ring_capacities = [6, 10]
ring_radii = [140.0, 250.0]
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadScaleBounds(t *testing.T) {
	path := writeConfig(t, `
[camera]
min_scale = 3.0
max_scale = 1.0
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsZeroCapacity(t *testing.T) {
	path := writeConfig(t, `
[layout]
ring_capacities = [0, 10]
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnitZoomStep(t *testing.T) {
	path := writeConfig(t, `
[camera]
zoom_step = 1.0
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
