package game

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/marshcrawl/internal/logger"
	"github.com/samdwyer/marshcrawl/internal/systems"
	"github.com/samdwyer/marshcrawl/internal/world"
)

// Map generators.
const (
	GeneratorRooms   = "rooms"
	GeneratorScatter = "scatter"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible dungeon generation.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	Map        MapConfig        `yaml:"map"`
	Visibility VisibilityConfig `yaml:"visibility"`
	AI         AIConfig         `yaml:"ai"`
	Player     PlayerConfig     `yaml:"player"`
	Log        LogConfig        `yaml:"log"`
}

// MapConfig selects and sizes the map generator.
type MapConfig struct {
	Generator     string `yaml:"generator"` // "rooms" or "scatter"
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	MaxRooms      int    `yaml:"max_rooms"`
	MinSize       int    `yaml:"min_size"`
	MaxSize       int    `yaml:"max_size"` // exclusive
	CorridorWidth int    `yaml:"corridor_width"`
	Obstacles     int    `yaml:"obstacles"` // scatter only
}

// GenConfig converts the map section into generator parameters.
func (m MapConfig) GenConfig() world.GenConfig {
	return world.GenConfig{
		Width:         m.Width,
		Height:        m.Height,
		MaxRooms:      m.MaxRooms,
		MinSize:       m.MinSize,
		MaxSize:       m.MaxSize,
		CorridorWidth: m.CorridorWidth,
	}
}

// VisibilityConfig selects when viewsheds are recomputed.
type VisibilityConfig struct {
	Policy string `yaml:"policy"` // "dirty" or "always"
}

// AIConfig tunes the monster AI.
type AIConfig struct {
	WanderChecksBlocked bool `yaml:"wander_checks_blocked"`
	SightRange          int  `yaml:"sight_range"` // 0 uses each monster kind's range
}

// PlayerConfig tunes the player.
type PlayerConfig struct {
	SightRange int `yaml:"sight_range"` // 0 uses the player template's range
}

// LogConfig configures the log file.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Options converts the section into logger options.
func (l LogConfig) Options() logger.Options {
	return logger.Options{Level: l.Level, Format: l.Format, File: l.File}
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	gen := world.DefaultGenConfig()
	return &Config{
		Map: MapConfig{
			Generator:     GeneratorRooms,
			Width:         gen.Width,
			Height:        gen.Height,
			MaxRooms:      gen.MaxRooms,
			MinSize:       gen.MinSize,
			MaxSize:       gen.MaxSize,
			CorridorWidth: gen.CorridorWidth,
			Obstacles:     world.DefaultObstacles,
		},
		Visibility: VisibilityConfig{Policy: systems.PolicyOnDirty.String()},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			File:   logger.DefaultFile,
		},
	}
}

// LoadConfig reads the YAML file at path over the defaults.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadConfigFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadConfigFromReader decodes YAML from r over the defaults and validates
// the result. Unknown keys are rejected.
func LoadConfigFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate returns a joined error listing every problem found.
func (c *Config) Validate() error {
	var errs []error

	m := c.Map
	switch m.Generator {
	case GeneratorRooms, GeneratorScatter:
	default:
		errs = append(errs, fmt.Errorf("map.generator %q is invalid; valid values: rooms, scatter", m.Generator))
	}
	if m.Width < 3 || m.Height < 3 {
		errs = append(errs, fmt.Errorf("map size %dx%d is too small; minimum is 3x3", m.Width, m.Height))
	}
	if m.MaxRooms < 0 {
		errs = append(errs, fmt.Errorf("map.max_rooms must not be negative, got %d", m.MaxRooms))
	}
	if m.Generator == GeneratorRooms {
		if m.MinSize < 1 || m.MaxSize <= m.MinSize {
			errs = append(errs, fmt.Errorf("map room sizes need 1 <= min_size < max_size, got %d and %d", m.MinSize, m.MaxSize))
		}
		if m.MaxSize >= m.Width || m.MaxSize >= m.Height {
			errs = append(errs, fmt.Errorf("map.max_size %d does not fit a %dx%d map", m.MaxSize, m.Width, m.Height))
		}
		if m.CorridorWidth != 1 && m.CorridorWidth != 2 {
			errs = append(errs, fmt.Errorf("map.corridor_width must be 1 or 2, got %d", m.CorridorWidth))
		}
	}
	if m.Obstacles < 0 {
		errs = append(errs, fmt.Errorf("map.obstacles must not be negative, got %d", m.Obstacles))
	}

	if _, err := systems.ParsePolicy(c.Visibility.Policy); err != nil {
		errs = append(errs, fmt.Errorf("visibility.policy: %w", err))
	}
	if c.AI.SightRange < 0 {
		errs = append(errs, fmt.Errorf("ai.sight_range must not be negative, got %d", c.AI.SightRange))
	}
	if c.Player.SightRange < 0 {
		errs = append(errs, fmt.Errorf("player.sight_range must not be negative, got %d", c.Player.SightRange))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q is invalid; valid values: text, json", c.Log.Format))
	}

	return errors.Join(errs...)
}
