//go:build !ebiten

package canvas

import (
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// ViewportWidth always reports that the ebiten build tag is missing.
func ViewportWidth() (int, error) {
	return 0, ErrNoWindow
}

// Run always reports that the ebiten build tag is missing.
func Run(*flappy.Game, core.RuntimeConfig, Options) error {
	return ErrNoWindow
}
