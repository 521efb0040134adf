package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal right away.

Controls:
  Space/Up/W, click  - Flap
  R/Enter, click     - Replay (after game over)
  1/2/3              - Easy, medium, hard
  D                  - Cycle difficulty
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

The playfield is sized once from the terminal width when the game starts.
Resizing the terminal rescales the view but never changes the playfield.

Examples:
  flappy play
  flappy play --difficulty hard --fps 30
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	return playTerminal(s)
}

// runMenu shows the start menu unless a difficulty was given, then plays.
func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if flagDifficulty == "" {
		width, height := terminalSize()
		result, err := tui.RunMenu(s.cfg.Difficulty, config.Difficulty(s.cfg.Difficulty.Default), runtimeConfig(width, height))
		if err != nil {
			s.logger.Error("menu failed", "error", err)
			return err
		}
		if result.Quit {
			return nil
		}
		s.cfg.Difficulty.Default = string(result.Difficulty)
	}

	return playTerminal(s)
}

// playTerminal sizes the playfield from the terminal width and runs the game.
func playTerminal(s *session) error {
	width, height := terminalSize()
	viewportW := int(float64(width) * core.CellPixelW)
	field := flappy.PlayfieldFor(s.cfg, viewportW)
	if err := s.cfg.CheckPlayfieldHeight(field.H); err != nil {
		s.logger.Error("terminal too narrow", "cols", width, "playfield", field, "error", err)
		return fmt.Errorf("%w: widen the terminal", err)
	}
	game := flappy.New(s.cfg, field)

	s.logger.Info("starting terminal game",
		"cols", width,
		"rows", height,
		"playfield", field,
		"difficulty", game.Difficulty())

	opts := tui.Options{Logger: s.logger}
	if err := tui.Run(game, runtimeConfig(width, height), opts); err != nil {
		s.logger.Error("terminal game failed", "error", err)
		return err
	}
	return nil
}

// terminalSize returns the terminal size, or 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
