package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// It must stay in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Playfield: PlayfieldConfig{
			MaxWidth:      320,
			ViewportRatio: 0.9,
			AspectRatio:   1.5,
		},
		Player: PlayerConfig{
			X:      50,
			StartY: 150,
			Width:  20,
			Height: 20,
		},
		Physics: PhysicsConfig{
			Gravity:     0.6,
			JumpImpulse: -10,
		},
		Obstacles: ObstacleConfig{
			Width:        30,
			SpawnEvery:   90,
			TopMargin:    10,
			BottomMargin: 10,
		},
		Difficulty: DifficultyConfig{
			Default: string(DifficultyEasy),
			Levels: []DifficultyLevel{
				{Name: string(DifficultyEasy), GapHeight: 200, ScrollSpeed: 2},
				{Name: string(DifficultyMedium), GapHeight: 130, ScrollSpeed: 3},
				{Name: string(DifficultyHard), GapHeight: 100, ScrollSpeed: 4},
			},
		},
	}
}
