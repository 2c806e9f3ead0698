package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Engine holds all configuration for the visibility engine and its tools.
type Engine struct {
	Log   LogConfig   `yaml:"log"`
	View  ViewConfig  `yaml:"view"`
	Flow  FlowConfig  `yaml:"flow"`
	Light LightConfig `yaml:"light"`
	Sim   SimConfig   `yaml:"sim"`

	// TerrainFile is an optional terrain catalog (.yaml or .toml).
	// Empty selects the built-in catalog.
	TerrainFile string `yaml:"terrain_file"`
	// LevelsDir holds level description files.
	LevelsDir string `yaml:"levels_dir"`
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
	// File redirects output away from stderr.
	File string `yaml:"file"`
}

// ViewConfig tunes field of view.
type ViewConfig struct {
	MaxSight int `yaml:"max_sight"`
	// FeelingThreshold is the number of FEEL cells the player must see
	// before the level feeling is announced.
	FeelingThreshold int `yaml:"feeling_threshold"`
	// TorchLighting reports cells in view that are not permanently lit as
	// torch-lit rather than line-of-sight lit.
	TorchLighting bool `yaml:"torch_lighting"`
}

// FlowConfig tunes the monster flow field.
type FlowConfig struct {
	Depth     int `yaml:"depth"`
	QueueSize int `yaml:"queue_size"`
}

// LightConfig tunes room lighting.
type LightConfig struct {
	// RoomCapacity is the initial size of the room flood-fill set.
	RoomCapacity int `yaml:"room_capacity"`
}

// SimConfig drives cmd/cavesim.
type SimConfig struct {
	Turns   int    `yaml:"turns"`
	Seed    uint64 `yaml:"seed"`
	Workers int    `yaml:"workers"`
}

// DefaultEngine returns Engine config with sensible defaults.
func DefaultEngine() Engine {
	return Engine{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		View: ViewConfig{
			MaxSight:         20,
			FeelingThreshold: 10,
			TorchLighting:    true,
		},
		Flow: FlowConfig{
			Depth:     32,
			QueueSize: 2048,
		},
		Light: LightConfig{
			RoomCapacity: 200,
		},
		Sim: SimConfig{
			Turns:   200,
			Seed:    1,
			Workers: 4,
		},
		LevelsDir: "levels",
	}
}

// LoadEngine loads engine config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Engine) Validate() error {
	var errs []error
	if c.View.MaxSight <= 0 {
		errs = append(errs, fmt.Errorf("view.max_sight must be positive, got %d", c.View.MaxSight))
	}
	if c.View.FeelingThreshold <= 0 {
		errs = append(errs, fmt.Errorf("view.feeling_threshold must be positive, got %d", c.View.FeelingThreshold))
	}
	if c.Flow.Depth <= 0 || c.Flow.Depth > 255 {
		errs = append(errs, fmt.Errorf("flow.depth must be in 1..255, got %d", c.Flow.Depth))
	}
	if c.Flow.QueueSize < 8 {
		errs = append(errs, fmt.Errorf("flow.queue_size must be at least 8, got %d", c.Flow.QueueSize))
	}
	if c.Light.RoomCapacity <= 0 {
		errs = append(errs, fmt.Errorf("light.room_capacity must be positive, got %d", c.Light.RoomCapacity))
	}
	if c.Sim.Workers <= 0 {
		errs = append(errs, fmt.Errorf("sim.workers must be positive, got %d", c.Sim.Workers))
	}
	return errors.Join(errs...)
}
