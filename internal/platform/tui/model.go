package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// statusHeight is the number of rows below the playfield: status and help.
const statusHeight = 2

// Options configures the terminal front end.
type Options struct {
	Logger        *log.Logger // Defaults to a discarding logger
	ScreenshotDir string      // Defaults to ~/.flappy/screenshots
}

// Model is the Bubble Tea model for running the game.
//
// Ticks are scheduled only while the game is running. The tick that ends a
// run does not schedule another one; a replay starts the chain again.
type Model struct {
	game          *flappy.Game
	screen        *core.Screen
	canvas        *core.ScreenCanvas
	keyMapper     *KeyMapper
	help          help.Model
	logger        *log.Logger
	config        core.RuntimeConfig
	screenshotDir string
	inputFrame    core.InputFrame
	gameState     core.GameState
	ticking       bool
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game and resets it.
func NewModel(game *flappy.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-statusHeight, 3))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        screen,
		canvas:        core.NewScreenCanvas(screen, game.Field()),
		keyMapper:     NewKeyMapper(),
		help:          h,
		logger:        logger,
		config:        cfg,
		screenshotDir: opts.ScreenshotDir,
		inputFrame:    core.NewInputFrame(),
		gameState:     game.State(),
		ticking:       true,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.screenshot()
		return m, nil
	}

	if idx, ok := m.keyMapper.MapDifficulty(msg); ok {
		levels := m.game.Difficulties()
		if idx < len(levels) && m.game.SelectDifficulty(levels[idx]) {
			m.logger.Info("difficulty selected", "difficulty", levels[idx])
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionFlap:
		if !m.gameState.GameOver() {
			m.inputFrame.Set(core.ActionFlap)
		}
	case core.ActionNextMode:
		d := m.game.NextDifficulty()
		m.logger.Info("difficulty selected", "difficulty", d)
	case core.ActionRestart:
		return m.replay()
	}

	return m, nil
}

// handleMouse maps a left press on the framed playfield to a flap, or to a
// replay once the game is over. Presses on the status and help rows are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.canvas.Viewport().Grow(1).Contains(msg.X, msg.Y) {
		return m, nil
	}
	if m.gameState.GameOver() {
		return m.replay()
	}
	m.inputFrame.Set(core.ActionFlap)
	return m, nil
}

// handleResize refits the playfield projection. The playfield keeps the size
// it was given at startup.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-statusHeight, 3))
	m.canvas.Fit()
	m.help.Width = msg.Width

	m.logger.Debug("terminal resized", "cols", msg.Width, "rows", msg.Height, "viewport", m.canvas.Viewport())
	return m, nil
}

// handleTick advances the simulation by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking || m.gameState.GameOver() {
		m.ticking = false
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()
	m.gameState = result.State
	m.logEvents(result)

	if result.State.GameOver() {
		m.ticking = false
		m.keyMapper.SetGameOver(true)
		return m, nil
	}

	return m, tickCmd(m.config.TickRate)
}

// replay starts a new run after a game over and restarts the tick loop.
func (m Model) replay() (tea.Model, tea.Cmd) {
	if !m.gameState.GameOver() {
		return m, nil
	}

	m.game.Replay()
	m.gameState = m.game.State()
	m.inputFrame.Clear()
	m.keyMapper.SetGameOver(false)
	m.logger.Info("replay", "difficulty", m.game.Difficulty())

	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventGameOver:
			m.logger.Info("game over",
				"score", result.State.Score,
				"ticks", result.State.Ticks,
				"difficulty", m.game.Difficulty())
		default:
			m.logger.Debug(e.Kind.String(), "tick", e.Tick, "score", result.State.Score)
		}
	}
}

// screenshot saves the current frame and logs the outcome.
func (m *Model) screenshot() {
	path, err := m.saveScreenshot()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot dir: %w", err)
		}
		dir = filepath.Join(home, ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// draw renders the game and, after a crash, the replay box into the buffer.
func (m Model) draw() {
	m.game.Render(m.canvas)
	if m.gameState.GameOver() {
		drawGameOver(m.screen, m.canvas.Viewport(), m.gameState.Score)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()

	status := renderStatus(m.game.Difficulties(), m.game.Difficulty(), m.gameState.GameOver(), m.screen.Width())
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		status,
		m.help.View(m.keyMapper.Keys()),
	)
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for game.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks flap and replay
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
