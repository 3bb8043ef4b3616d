package core

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds every tunable constant of the canvas. Everything has a
// compiled-in default; a TOML file can override any subset.
type Config struct {
	Layout   LayoutConfig  `toml:"layout"`
	Camera   CameraConfig  `toml:"camera"`
	Motion   MotionConfig  `toml:"motion"`
	Gestures GestureConfig `toml:"gestures"`
}

// LayoutConfig controls node placement.
type LayoutConfig struct {
	// RingCapacities[i] is the maximum node count of ring i. Nodes beyond
	// the listed capacities all land on the last ring.
	RingCapacities []int     `toml:"ring_capacities"`
	RingRadii      []float32 `toml:"ring_radii"`
	// Each ring's starting angle is rotated by RingAngleOffset * ringIndex
	// so rings don't line up radially.
	RingAngleOffset float32 `toml:"ring_angle_offset"`
	NodeRadius      float32 `toml:"node_radius"`
	AnchorRadius    float32 `toml:"anchor_radius"`
}

// CameraConfig controls the viewport transform.
type CameraConfig struct {
	MinScale float32 `toml:"min_scale"`
	MaxScale float32 `toml:"max_scale"`
	// Multiplicative step applied by the zoom buttons.
	ZoomStep float32 `toml:"zoom_step"`
	// Per-second exponential decay rate of pan momentum.
	PanDecay float32 `toml:"pan_decay"`
	// Angular frequency of the critically damped reset/zoom-button spring.
	SpringOmega float32 `toml:"spring_omega"`
}

// MotionConfig controls per-node ambient motion and drag physics.
type MotionConfig struct {
	FloatAmplitude float32 `toml:"float_amplitude"`
	FloatPeriod    float32 `toml:"float_period"` // seconds
	// Per-node start delay so nodes don't begin oscillating in unison.
	FloatStagger float32 `toml:"float_stagger"` // seconds per layout index
	// Angular frequency of the drag settle spring.
	SettleOmega float32 `toml:"settle_omega"`
	// Offsets and velocities below these magnitudes count as settled.
	SettleEpsilon float32 `toml:"settle_epsilon"`
}

// GestureConfig controls touch routing thresholds.
type GestureConfig struct {
	// A press that moves further than TapSlop (screen px) becomes a drag.
	TapSlop float32 `toml:"tap_slop"`
	// A press held longer than TapMaxDuration (seconds) is not a tap.
	TapMaxDuration float32 `toml:"tap_max_duration"`
	// Hit-test circle radius around a node's composed position.
	HitRadius float32 `toml:"hit_radius"`
}

// DefaultConfig returns the compiled-in constants.
func DefaultConfig() Config {
	return Config{
		Layout: LayoutConfig{
			RingCapacities:  []int{6, 10},
			RingRadii:       []float32{140, 250, 360},
			RingAngleOffset: 0.35,
			NodeRadius:      30,
			AnchorRadius:    40,
		},
		Camera: CameraConfig{
			MinScale:    0.5,
			MaxScale:    2.5,
			ZoomStep:    1.3,
			PanDecay:    4.0,
			SpringOmega: 10.0,
		},
		Motion: MotionConfig{
			FloatAmplitude: 8,
			FloatPeriod:    3.2,
			FloatStagger:   0.12,
			SettleOmega:    8.0,
			SettleEpsilon:  0.05,
		},
		Gestures: GestureConfig{
			TapSlop:        8,
			TapMaxDuration: 0.25,
			HitRadius:      38,
		},
	}
}

// LoadConfig reads a TOML file over the defaults. A missing file is not an
// error; a malformed one is.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if len(c.Layout.RingRadii) == 0 {
		return fmt.Errorf("layout.ring_radii must not be empty")
	}
	if len(c.Layout.RingCapacities) >= len(c.Layout.RingRadii) {
		// The last ring has no capacity: it absorbs the remainder.
		return fmt.Errorf("layout needs one more ring radius than capacities")
	}
	for _, capacity := range c.Layout.RingCapacities {
		if capacity <= 0 {
			return fmt.Errorf("ring capacities must be positive")
		}
	}
	if c.Camera.MinScale <= 0 || c.Camera.MaxScale < c.Camera.MinScale {
		return fmt.Errorf("camera scale bounds are inverted")
	}
	if c.Camera.ZoomStep <= 1 {
		return fmt.Errorf("camera.zoom_step must be > 1")
	}
	return nil
}
