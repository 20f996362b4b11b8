// pkg/config/config.go
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-duel/pkg/physics"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// RequiredShips is the number of ships a duel is played with.
const RequiredShips = 2

// GameConfig contains configuration for a duel
type GameConfig struct {
	Arena            ArenaConfig     `yaml:"arena"`
	RefreshRate      float64         `yaml:"refreshRate"` // ticks per second
	MoveUnits        float64         `yaml:"moveUnits"`
	ShowLines        bool            `yaml:"showLines"`
	Seed             uint64          `yaml:"seed"`
	StatusIntervalMS float64         `yaml:"statusIntervalMs"`
	MarkerColor      string          `yaml:"markerColor"`
	Telemetry        TelemetryConfig `yaml:"telemetry"`
	Ships            []ShipConfig    `yaml:"ships"`
}

// ArenaConfig is the size of the play area
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TelemetryConfig controls CSV output and its circuit breaker
type TelemetryConfig struct {
	Dir                    string        `yaml:"dir"`
	MaxConsecutiveFailures uint32        `yaml:"maxConsecutiveFailures"`
	BreakerTimeout         time.Duration `yaml:"breakerTimeout"`
}

// ShipConfig contains configuration for one ship. X and Y are fractions of
// the arena size.
type ShipConfig struct {
	Name       string  `yaml:"name"`
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Degrees    float64 `yaml:"degrees"`
	Radius     float64 `yaml:"radius"`
	Color      string  `yaml:"color"`
	FireRate   float64 `yaml:"fireRate"` // shots per second
	SpeedCoeff float64 `yaml:"speedCoeff"`
	AngleCoeff float64 `yaml:"angleCoeff"`
	Controlled bool    `yaml:"controlled"`
}

// PhysicsArena returns the read-only context passed to per-tick operations.
func (c *GameConfig) PhysicsArena() physics.Arena {
	return physics.Arena{
		Width:       c.Arena.Width,
		Height:      c.Arena.Height,
		RefreshRate: c.RefreshRate,
	}
}

// ShipSpeed is the distance a ship covers per tick.
func (c *GameConfig) ShipSpeed(s ShipConfig) float64 {
	return s.SpeedCoeff * c.MoveUnits / c.RefreshRate
}

// ShipRotationSpeed is the degrees a ship turns per tick.
func (c *GameConfig) ShipRotationSpeed(s ShipConfig) float64 {
	return s.AngleCoeff * 360 / c.RefreshRate
}

// ShipPosition converts the ship's arena fractions to coordinates.
func (c *GameConfig) ShipPosition(s ShipConfig) physics.Vector2D {
	return physics.Vector2D{X: s.X * c.Arena.Width, Y: s.Y * c.Arena.Height}
}

// LoadConfig loads a configuration from a YAML file. Fields missing from the
// file keep their default values; a ships list replaces the default ships.
func LoadConfig(path string) (*GameConfig, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a YAML file
func SaveConfig(config *GameConfig, path string) error {
	if config == nil {
		return fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate reports the first setting that would break the simulation.
func (c *GameConfig) Validate() error {
	switch {
	case !positive(c.Arena.Width) || !positive(c.Arena.Height):
		return fmt.Errorf("%w: arena must have positive size, got %vx%v", ErrInvalidConfig, c.Arena.Width, c.Arena.Height)
	case !positive(c.RefreshRate):
		return fmt.Errorf("%w: refresh rate must be positive, got %v", ErrInvalidConfig, c.RefreshRate)
	case !nonNegative(c.MoveUnits):
		return fmt.Errorf("%w: move units must be non-negative, got %v", ErrInvalidConfig, c.MoveUnits)
	case !nonNegative(c.StatusIntervalMS):
		return fmt.Errorf("%w: status interval must be non-negative, got %v", ErrInvalidConfig, c.StatusIntervalMS)
	case len(c.Ships) != RequiredShips:
		return fmt.Errorf("%w: expected %d ships, got %d", ErrInvalidConfig, RequiredShips, len(c.Ships))
	}

	if err := ValidateColor(c.MarkerColor); err != nil {
		return fmt.Errorf("%w: marker color: %v", ErrInvalidConfig, err)
	}

	names := make(map[string]bool)
	controlled := 0
	for i, ship := range c.Ships {
		if err := ship.validate(); err != nil {
			return fmt.Errorf("%w: ship %d: %v", ErrInvalidConfig, i, err)
		}
		// a ship wider than the arena cannot be clamped inside it
		if 2*ship.Radius > min(c.Arena.Width, c.Arena.Height) {
			return fmt.Errorf("%w: ship %d: diameter %v exceeds arena %vx%v",
				ErrInvalidConfig, i, 2*ship.Radius, c.Arena.Width, c.Arena.Height)
		}
		if names[ship.Name] {
			return fmt.Errorf("%w: duplicate ship name %q", ErrInvalidConfig, ship.Name)
		}
		names[ship.Name] = true
		if ship.Controlled {
			controlled++
		}
	}
	if controlled > 1 {
		return fmt.Errorf("%w: at most one ship may be controlled, got %d", ErrInvalidConfig, controlled)
	}

	return nil
}

func (s ShipConfig) validate() error {
	if _, err := ValidateShipName(s.Name); err != nil {
		return err
	}
	if err := ValidateColor(s.Color); err != nil {
		return err
	}
	switch {
	case !positive(s.Radius):
		return fmt.Errorf("radius must be positive, got %v", s.Radius)
	case !positive(s.FireRate):
		return fmt.Errorf("fire rate must be positive, got %v", s.FireRate)
	case !nonNegative(s.SpeedCoeff) || !nonNegative(s.AngleCoeff):
		return fmt.Errorf("speed and angle coefficients must be non-negative")
	case !fraction(s.X) || !fraction(s.Y):
		return fmt.Errorf("spawn position must be arena fractions in [0, 1], got (%v, %v)", s.X, s.Y)
	case math.IsNaN(s.Degrees) || math.IsInf(s.Degrees, 0):
		return fmt.Errorf("heading must be finite")
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}

func fraction(v float64) bool {
	return v >= 0 && v <= 1
}

// DefaultConfig returns a default duel configuration
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Arena: ArenaConfig{
			Width:  1200,
			Height: 700,
		},
		RefreshRate:      120,
		MoveUnits:        50,
		ShowLines:        false,
		Seed:             1,
		StatusIntervalMS: 100,
		MarkerColor:      "#FF0000",
		Telemetry: TelemetryConfig{
			MaxConsecutiveFailures: 3,
			BreakerTimeout:         5 * time.Second,
		},
		Ships: []ShipConfig{
			{
				Name:       "player",
				X:          0.5,
				Y:          0.85,
				Degrees:    45,
				Radius:     80,
				Color:      "#00FF00",
				FireRate:   10,
				SpeedCoeff: 5,
				AngleCoeff: 1,
				Controlled: true,
			},
			{
				Name:       "enemy",
				X:          1.0 / 3,
				Y:          0.35,
				Degrees:    300,
				Radius:     80,
				Color:      "#FFFF00",
				FireRate:   10,
				SpeedCoeff: 5,
				AngleCoeff: 1,
			},
		},
	}
}
