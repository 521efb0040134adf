// Package config provides YAML/TOML game configuration loading and
// difficulty selection for Flappy Bird.
package config

import (
	"fmt"
	"strings"
)

// FlappyConfig contains all tuning for the game.
type FlappyConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield" toml:"playfield"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Physics    PhysicsConfig    `yaml:"physics" toml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
}

// PlayfieldConfig sizes the playfield once at startup:
// width = min(max_width, viewport_ratio * viewport), height = aspect_ratio * width.
type PlayfieldConfig struct {
	MaxWidth      int     `yaml:"max_width" toml:"max_width"`
	ViewportRatio float64 `yaml:"viewport_ratio" toml:"viewport_ratio"`
	AspectRatio   float64 `yaml:"aspect_ratio" toml:"aspect_ratio"`
}

// PlayerConfig places and sizes the bird.
type PlayerConfig struct {
	X      float64 `yaml:"x" toml:"x"`
	StartY float64 `yaml:"start_y" toml:"start_y"`
	Width  float64 `yaml:"width" toml:"width"`
	Height float64 `yaml:"height" toml:"height"`
}

// PhysicsConfig holds the per-tick kinematics constants.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse" toml:"jump_impulse"` // negative = up
}

// ObstacleConfig defines the shared obstacle constants.
type ObstacleConfig struct {
	Width        float64 `yaml:"width" toml:"width"`
	SpawnEvery   int     `yaml:"spawn_every" toml:"spawn_every"` // ticks between spawns
	TopMargin    int     `yaml:"top_margin" toml:"top_margin"`
	BottomMargin int     `yaml:"bottom_margin" toml:"bottom_margin"`
}

// DifficultyConfig is the enumerated difficulty table plus the level
// selected at startup.
type DifficultyConfig struct {
	Default string            `yaml:"default" toml:"default"`
	Levels  []DifficultyLevel `yaml:"levels" toml:"levels"`
}

// DifficultyLevel is one row of the table. Values are copied, never shared.
type DifficultyLevel struct {
	Name        string  `yaml:"name" toml:"name"`
	GapHeight   int     `yaml:"gap_height" toml:"gap_height"`
	ScrollSpeed float64 `yaml:"scroll_speed" toml:"scroll_speed"`
}

// Difficulty names a row of the difficulty table.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalises a user-supplied difficulty name.
// "normal" is accepted as an alias for medium.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return DifficultyEasy, nil
	case "medium", "normal":
		return DifficultyMedium, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
	}
}

// Level looks up a table row by name.
func (d DifficultyConfig) Level(name Difficulty) (DifficultyLevel, bool) {
	for _, l := range d.Levels {
		if Difficulty(l.Name) == name {
			return l, true
		}
	}
	return DifficultyLevel{}, false
}

// Validate reports the first setting that would break the simulation.
func (c FlappyConfig) Validate() error {
	p := c.Playfield
	if p.MaxWidth <= 0 {
		return fmt.Errorf("config: playfield.max_width must be positive (got %d)", p.MaxWidth)
	}
	if p.ViewportRatio <= 0 || p.ViewportRatio > 1 {
		return fmt.Errorf("config: playfield.viewport_ratio must be in (0, 1] (got %v)", p.ViewportRatio)
	}
	if p.AspectRatio <= 0 {
		return fmt.Errorf("config: playfield.aspect_ratio must be positive (got %v)", p.AspectRatio)
	}

	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: player size must be positive (got %vx%v)", c.Player.Width, c.Player.Height)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("config: physics.gravity must not be negative (got %v)", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		return fmt.Errorf("config: physics.jump_impulse must be negative (got %v)", c.Physics.JumpImpulse)
	}

	o := c.Obstacles
	if o.Width <= 0 {
		return fmt.Errorf("config: obstacles.width must be positive (got %v)", o.Width)
	}
	if o.SpawnEvery <= 0 {
		return fmt.Errorf("config: obstacles.spawn_every must be positive (got %d)", o.SpawnEvery)
	}
	if o.TopMargin <= 0 || o.BottomMargin <= 0 {
		return fmt.Errorf("config: obstacle margins must be positive (got %d/%d)", o.TopMargin, o.BottomMargin)
	}

	if len(c.Difficulty.Levels) == 0 {
		return fmt.Errorf("config: difficulty.levels is empty")
	}
	seen := make(map[string]bool, len(c.Difficulty.Levels))
	for _, l := range c.Difficulty.Levels {
		if l.Name == "" {
			return fmt.Errorf("config: difficulty level without a name")
		}
		if seen[l.Name] {
			return fmt.Errorf("config: duplicate difficulty level %q", l.Name)
		}
		seen[l.Name] = true
		if l.GapHeight <= 0 {
			return fmt.Errorf("config: difficulty %q gap_height must be positive (got %d)", l.Name, l.GapHeight)
		}
		if l.ScrollSpeed <= 0 {
			return fmt.Errorf("config: difficulty %q scroll_speed must be positive (got %v)", l.Name, l.ScrollSpeed)
		}
	}
	if _, ok := c.Difficulty.Level(Difficulty(c.Difficulty.Default)); !ok {
		return fmt.Errorf("config: difficulty.default %q is not in the table", c.Difficulty.Default)
	}

	return nil
}

// CheckPlayfieldHeight reports the first difficulty whose gap, with both
// obstacle margins, does not fit a playfield of height h.
func (c FlappyConfig) CheckPlayfieldHeight(h int) error {
	for _, l := range c.Difficulty.Levels {
		need := l.GapHeight + c.Obstacles.TopMargin + c.Obstacles.BottomMargin
		if need > h {
			return fmt.Errorf("config: playfield height %d is too short for difficulty %q (needs %d)", h, l.Name, need)
		}
	}
	return nil
}
