package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	LevelRingSize = 8192

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Card layout
	CardMargin  = 20
	CardSpacing = 24

	// Wave parameters
	NumWaves          = 12
	TimeStep          = 0.02
	SampleStride      = 5
	Overscan          = 10
	StrokeAlpha       = 180
	CompactBreakpoint = 768
	CompactHeight     = 250
	WideHeight        = 300

	// Ambient field
	ParticleCount = 80
	PulseSpeed    = 0.01

	StorageKey = "elinaWishes"
)

// Noise sources accepted by Config.Noise.
const (
	NoisePerlin  = "perlin"
	NoiseSimplex = "simplex"
)

// Config is the runtime configuration. Zero fields in a config file keep
// their defaults.
type Config struct {
	DBPath    string `yaml:"db"`
	TrackDir  string `yaml:"tracks"`
	Noise     string `yaml:"noise"`
	Ephemeral bool   `yaml:"ephemeral"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
}

func Default() Config {
	return Config{
		DBPath:   "wishes.db",
		TrackDir: ".",
		Noise:    NoisePerlin,
		Width:    WindowWidth,
		Height:   WindowHeight,
	}
}

// Load reads a YAML config file over the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Noise {
	case NoisePerlin, NoiseSimplex:
	default:
		return fmt.Errorf("unknown noise source %q", c.Noise)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// SurfaceHeight is the responsive height rule for a wave surface.
func SurfaceHeight(width int) int {
	if width <= CompactBreakpoint {
		return CompactHeight
	}
	return WideHeight
}
