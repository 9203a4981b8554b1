// Package config loads the game settings from a YAML file.
// Missing files fall back to defaults; missing keys keep their default value.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/endofdayz/internal/anim"
	"chosenoffset.com/endofdayz/internal/dayz"
)

// DefaultPath is where the game looks for its settings.
const DefaultPath = "endofdayz.yaml"

// Config holds every tunable setting
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	World     WorldConfig     `yaml:"world"`
	Timing    TimingConfig    `yaml:"timing"`
	Animation AnimationConfig `yaml:"animation"`
}

// WindowConfig defines the window layout
type WindowConfig struct {
	Title          string `yaml:"title"`
	CellSize       int    `yaml:"cell_size"`       // Pixel size of one grid cell
	InventoryWidth int    `yaml:"inventory_width"` // Width of the inventory panel
	StatusHeight   int    `yaml:"status_height"`   // Height of the status bar
}

// WorldConfig selects the map and art
type WorldConfig struct {
	Map       string `yaml:"map"`        // Map file; empty uses the embedded default
	Atlas     string `yaml:"atlas"`      // Atlas JSON; empty uses placeholder tiles
	Seed      uint64 `yaml:"seed"`       // Zombie RNG seed; 0 picks one at startup
	MaxStates int    `yaml:"max_states"` // Steps the time machine can rewind
}

// TimingConfig defines the game clock
type TimingConfig struct {
	StepInterval    time.Duration `yaml:"step_interval"`    // Time between world steps
	MessageDuration time.Duration `yaml:"message_duration"` // How long messages stay on screen
}

// AnimationConfig tunes the crossbow and rewind effects
type AnimationConfig struct {
	ProjectileSprite   string        `yaml:"projectile_sprite"`
	ProjectileStep     float64       `yaml:"projectile_step"` // Pixels per frame
	ProjectileInterval time.Duration `yaml:"projectile_interval"`
	ReplayBudget       time.Duration `yaml:"replay_budget"` // Total rewind duration
}

// Default returns the settings used when no file is present
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:          "EndOfDayz",
			CellSize:       60,
			InventoryWidth: 200,
			StatusHeight:   60,
		},
		World: WorldConfig{
			Map:       dayz.DefaultMap,
			MaxStates: dayz.DefaultMaxStates,
		},
		Timing: TimingConfig{
			StepInterval:    time.Second,
			MessageDuration: 3 * time.Second,
		},
		Animation: AnimationConfig{
			ProjectileSprite:   anim.DefaultProjectileSprite,
			ProjectileStep:     anim.DefaultProjectileStep,
			ProjectileInterval: anim.DefaultProjectileInterval,
			ReplayBudget:       anim.DefaultReplayBudget,
		},
	}
}

// Load reads settings from a YAML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// Return defaults if file doesn't exist
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML settings over the defaults and validates them
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	switch {
	case c.Window.CellSize <= 0:
		return fmt.Errorf("invalid cell_size: %d", c.Window.CellSize)
	case c.Window.InventoryWidth < 0:
		return fmt.Errorf("invalid inventory_width: %d", c.Window.InventoryWidth)
	case c.Window.StatusHeight < 0:
		return fmt.Errorf("invalid status_height: %d", c.Window.StatusHeight)
	case c.World.MaxStates <= 0:
		return fmt.Errorf("invalid max_states: %d", c.World.MaxStates)
	case c.Timing.StepInterval <= 0:
		return fmt.Errorf("invalid step_interval: %v", c.Timing.StepInterval)
	case c.Animation.ProjectileStep <= 0:
		return fmt.Errorf("invalid projectile_step: %v", c.Animation.ProjectileStep)
	case c.Animation.ProjectileInterval <= 0:
		return fmt.Errorf("invalid projectile_interval: %v", c.Animation.ProjectileInterval)
	}
	return nil
}

// Projectile returns the crossbow bolt settings.
func (c *Config) Projectile() anim.ProjectileConfig {
	return anim.ProjectileConfig{
		Sprite:   c.Animation.ProjectileSprite,
		StepSize: c.Animation.ProjectileStep,
		Interval: c.Animation.ProjectileInterval,
	}
}
