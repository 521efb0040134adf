package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// session bundles what every command needs: the loaded config and a logger.
type session struct {
	cfg      config.FlappyConfig
	source   string
	logger   *log.Logger
	closeLog func() error
}

// openSession sets up logging and loads the configuration from the global flags.
func openSession() (*session, error) {
	if flagFPS <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	if err != nil {
		return nil, err
	}

	cfg, source, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		logger.Error("config load failed", "error", err)
		//nolint:errcheck // Already failing
		closeLog()
		return nil, err
	}
	logger.Info("config loaded", "source", source, "difficulty", cfg.Difficulty.Default)

	return &session{
		cfg:      cfg,
		source:   source,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

func (s *session) close() {
	//nolint:errcheck // Best-effort close on exit
	s.closeLog()
}

// loadConfig loads the game config and applies the difficulty override.
func loadConfig(path, difficulty string) (config.FlappyConfig, string, error) {
	cfg, source, err := config.LoadFlappy(path)
	if err != nil {
		return cfg, source, err
	}
	if err := config.ApplyDifficulty(&cfg, difficulty); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// newLogger opens the log file. The terminal belongs to the game, so logs
// never go to stdout or stderr. An empty path discards logs.
func newLogger(path string, debug bool) (*log.Logger, func() error, error) {
	opts := log.Options{
		ReportTimestamp: true,
		Prefix:          "flappy",
	}
	if debug {
		opts.Level = log.DebugLevel
	}

	if path == "" {
		return log.NewWithOptions(io.Discard, opts), func() error { return nil }, nil
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, nil, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("log: cannot create directory %s: %w", dir, err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("log: cannot open %s: %w", path, err)
	}
	return log.NewWithOptions(f, opts), f.Close, nil
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// runtimeConfig builds the runtime settings from the global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
