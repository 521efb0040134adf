package canvas

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Controller turns window input into game actions. It steps the simulation
// once per Tick while the run is live and stops stepping once it is over,
// until a replay. It knows nothing about ebiten, so the window only has to
// read its devices and forward them.
type Controller struct {
	game   *flappy.Game
	field  core.Size
	logger *log.Logger

	input core.InputFrame
	state core.GameState
}

// NewController resets the game and wraps it.
func NewController(game *flappy.Game, cfg core.RuntimeConfig, logger *log.Logger) *Controller {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return &Controller{
		game:   game,
		field:  game.Field(),
		logger: logger,
		input:  core.NewInputFrame(),
		state:  game.State(),
	}
}

// State returns the state after the last tick or replay.
func (c *Controller) State() core.GameState {
	return c.state
}

// Flap queues a flap for the next tick. Ignored while over.
func (c *Controller) Flap() {
	if c.state.GameOver() {
		return
	}
	c.input.Set(core.ActionFlap)
}

// Press handles a mouse or touch press at logical window coordinates.
// The status strip selects a difficulty and never flaps; the playfield flaps
// while running and replays once over.
func (c *Controller) Press(x, y float64) {
	if y >= float64(c.field.H) {
		if i := HitButton(LevelButtons(c.field, c.game.Difficulties()), x, y); i >= 0 {
			c.SelectLevel(i)
		}
		return
	}
	if c.state.GameOver() {
		c.Replay()
		return
	}
	c.Flap()
}

// SelectLevel switches to the i-th difficulty of the table.
func (c *Controller) SelectLevel(i int) {
	levels := c.game.Difficulties()
	if i >= 0 && i < len(levels) && c.game.SelectDifficulty(levels[i]) {
		c.logger.Info("difficulty selected", "difficulty", levels[i])
	}
}

// NextDifficulty cycles to the next level.
func (c *Controller) NextDifficulty() {
	c.logger.Info("difficulty selected", "difficulty", c.game.NextDifficulty())
}

// Replay starts a new run. It does nothing while a run is live.
func (c *Controller) Replay() {
	if !c.state.GameOver() {
		return
	}
	c.game.Replay()
	c.state = c.game.State()
	c.input.Clear()
	c.logger.Info("replay", "difficulty", c.game.Difficulty())
}

// Tick advances the simulation by one step unless the run is over.
// Queued input is consumed either way.
func (c *Controller) Tick() {
	if c.state.GameOver() {
		c.input.Clear()
		return
	}

	result := c.game.Step(c.input)
	c.input.Clear()
	c.state = result.State
	c.logEvents(result)
}

func (c *Controller) logEvents(result core.StepResult) {
	for _, e := range result.Events {
		switch e.Kind {
		case core.EventGameOver:
			c.logger.Info("game over",
				"score", result.State.Score,
				"ticks", result.State.Ticks,
				"difficulty", c.game.Difficulty())
		default:
			c.logger.Debug(e.Kind.String(), "tick", e.Tick, "score", result.State.Score)
		}
	}
}
