package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/canvas"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a pixel window",
	Long: `Start the game in a native window drawn with ebiten.

The window is only available in binaries built with the ebiten tag:

  go build -tags ebiten ./cmd/flappy

The playfield is sized from the monitor width. Click the difficulty labels
below the playfield to switch levels; the keyboard controls match 'play'.`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	viewportW, err := canvas.ViewportWidth()
	if err != nil {
		s.logger.Error("window unavailable", "error", err)
		return err
	}

	field := flappy.PlayfieldFor(s.cfg, viewportW)
	if err := s.cfg.CheckPlayfieldHeight(field.H); err != nil {
		s.logger.Error("screen too small", "viewport", viewportW, "playfield", field, "error", err)
		return err
	}
	game := flappy.New(s.cfg, field)
	s.logger.Info("starting window game", "viewport", viewportW, "playfield", field, "difficulty", game.Difficulty())

	if err := canvas.Run(game, runtimeConfig(field.W, field.H), canvas.Options{Logger: s.logger}); err != nil {
		s.logger.Error("window game failed", "error", err)
		return err
	}
	return nil
}
