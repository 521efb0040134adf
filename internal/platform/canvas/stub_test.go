//go:build !ebiten

package canvas

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestStubReportsMissingTag(t *testing.T) {
	if _, err := ViewportWidth(); !errors.Is(err, ErrNoWindow) {
		t.Errorf("ViewportWidth error = %v, expected ErrNoWindow", err)
	}

	game := flappy.New(config.DefaultFlappyConfig(), core.Size{W: 320, H: 480})
	if err := Run(game, core.DefaultConfig(), Options{}); !errors.Is(err, ErrNoWindow) {
		t.Errorf("Run error = %v, expected ErrNoWindow", err)
	}
}
