// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Weapon    WeaponConfig    `yaml:"weapon"`
	Spawner   SpawnerConfig   `yaml:"spawner"`
	Roster    RosterConfig    `yaml:"roster"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
// The play-field is the viewport: width and height are in world units.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// PhysicsConfig holds tick timing parameters.
type PhysicsConfig struct {
	DT    float64 `yaml:"dt"`     // fixed step for headless runs
	MaxDT float64 `yaml:"max_dt"` // clamp for variable frame times
}

// FootprintConfig is the pixel size of a sprite, used to size collision proxies.
type FootprintConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig holds ship handling parameters.
type PlayerConfig struct {
	Acceleration   float64         `yaml:"acceleration"` // units/s^2 while thrusting
	StrafeSpeed    float64         `yaml:"strafe_speed"` // velocity impulse per strafe press
	Footprint      FootprintConfig `yaml:"footprint"`
	FallbackRadius float64         `yaml:"fallback_radius"`
	Scale          float64         `yaml:"scale"`
}

// WeaponConfig holds the player's weapon and its projectile.
type WeaponConfig struct {
	Name               string          `yaml:"name"`
	RateOfFire         float64         `yaml:"rate_of_fire"` // shots per second
	BulletSpeed        float64         `yaml:"bullet_speed"`
	Footprint          FootprintConfig `yaml:"footprint"`
	FallbackRadius     float64         `yaml:"fallback_radius"`
	ProjectileLifetime float64         `yaml:"projectile_lifetime"` // seconds, <= 0 disables expiry
}

// SpawnerConfig holds obstacle spawning parameters.
type SpawnerConfig struct {
	Cooldown       float64         `yaml:"cooldown"` // seconds between obstacles
	Footprint      FootprintConfig `yaml:"footprint"`
	FallbackRadius float64         `yaml:"fallback_radius"`
	Scale          float64         `yaml:"scale"`
}

// RosterConfig holds the one-shot weapon roster report.
type RosterConfig struct {
	Delay float64 `yaml:"delay"` // seconds after start, <= 0 disables
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
	PerfWindow  int     `yaml:"perf_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW     float64 // Screen.Width as float64
	ScreenH     float64 // Screen.Height as float64
	Fingerprint uint64  // xxhash of the effective YAML
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %v", c.Physics.DT)
	}
	if c.Spawner.Cooldown <= 0 {
		return fmt.Errorf("spawner.cooldown must be positive, got %v", c.Spawner.Cooldown)
	}
	if c.Physics.MaxDT < c.Physics.DT {
		c.Physics.MaxDT = c.Physics.DT
	}
	if c.Player.Scale == 0 {
		c.Player.Scale = 1
	}
	if c.Spawner.Scale == 0 {
		c.Spawner.Scale = 1
	}

	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	c.Derived.Fingerprint = xxhash.Sum64(data)
	return nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
