package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Colours and HUD placement.
const (
	PlayerColor   = core.ColorYellow
	ObstacleColor = core.ColorGreen
	ScoreColor    = core.ColorWhite

	ScoreX = 10
	ScoreY = 25
)

// Render paints a snapshot: clear, bird, obstacle pairs, score.
// It only reads s and only writes to c.
func Render(s Snapshot, c core.Canvas) {
	c.Clear()

	c.FillRect(s.Player, PlayerColor)

	for _, o := range s.Obstacles {
		c.FillRect(o.TopRect(s.ObstacleWidth), ObstacleColor)
		c.FillRect(o.BottomRect(s.ObstacleWidth, s.Field.H), ObstacleColor)
	}

	c.FillText(ScoreX, ScoreY, ScoreText(s.Score), ScoreColor)
}

// ScoreText formats the score overlay.
func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
