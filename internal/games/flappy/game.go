// Package flappy implements a Flappy Bird-style game.
// The player keeps a falling bird airborne with flaps and must pass through
// the gaps of obstacles scrolling in from the right.
package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Title is the display name for the game.
const Title = "Flappy Bird"

// Player is the bird. X is fixed; Y and Vel change every tick.
type Player struct {
	X, Y float64
	Vel  float64
	W, H float64
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.NewRectF(p.X, p.Y, p.W, p.H)
}

// Game owns the whole simulation state. Front ends hold one Game and call
// its methods from a single goroutine.
type Game struct {
	cfg        config.FlappyConfig
	field      core.Size
	difficulty *config.DifficultyManager

	player    Player
	obstacles *ObstacleQueue
	score     int
	phase     core.Phase
	tick      int // Ticks since the last reset; drives the spawn cadence
}

// PlayfieldFor sizes the playfield for a viewport width in pixels.
func PlayfieldFor(cfg config.FlappyConfig, viewportW int) core.Size {
	p := cfg.Playfield
	return core.PlayfieldSize(viewportW, p.MaxWidth, p.ViewportRatio, p.AspectRatio)
}

// New creates a game on a fixed playfield. Call Reset before stepping.
func New(cfg config.FlappyConfig, field core.Size) *Game {
	g := &Game{
		cfg:        cfg,
		field:      field,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	g.obstacles = NewObstacleQueue(0, cfg.Obstacles.Width, cfg.Obstacles.TopMargin, cfg.Obstacles.BottomMargin)
	g.Replay()
	return g
}

// Reset reseeds the obstacle generator and starts a fresh run.
// The selected difficulty is kept.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.obstacles.Reseed(rt.Seed)
	g.Replay()
}

// Replay returns to the start of a run: bird at its start position with
// zero velocity, no obstacles, score and tick counter zeroed, phase Running.
// The difficulty selection survives a replay.
func (g *Game) Replay() {
	pc := g.cfg.Player
	g.player = Player{X: pc.X, Y: pc.StartY, W: pc.Width, H: pc.Height}
	g.obstacles.Clear()
	g.score = 0
	g.tick = 0
	g.phase = core.PhaseRunning
}

// Flap sets the bird's velocity to the jump impulse. It is an absolute
// assignment, so repeated flaps never compound. Ignored once the game is over.
func (g *Game) Flap() bool {
	if g.phase != core.PhaseRunning {
		return false
	}
	g.player.Vel = g.cfg.Physics.JumpImpulse
	return true
}

// SelectDifficulty switches the difficulty row. Scroll speed applies to every
// obstacle from the next tick; gap height only to obstacles spawned later.
func (g *Game) SelectDifficulty(d config.Difficulty) bool {
	return g.difficulty.Select(d)
}

// NextDifficulty cycles to the following difficulty row.
func (g *Game) NextDifficulty() config.Difficulty {
	g.difficulty.Next()
	return g.difficulty.Selected()
}

// Difficulty returns the selected difficulty name.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty.Selected()
}

// Difficulties lists the selectable difficulty names in table order.
func (g *Game) Difficulties() []config.Difficulty {
	return g.difficulty.Names()
}

// Field returns the playfield size.
func (g *Game) Field() core.Size {
	return g.field
}

// Step applies one frame of input and advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionNextMode) {
		g.NextDifficulty()
	}
	if in.Has(core.ActionRestart) && g.phase == core.PhaseOver {
		g.Replay()
	}
	if g.phase == core.PhaseOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFlap) {
		g.Flap()
	}
	return g.advance()
}

// advance runs one tick: integrate, floor check, spawn, scroll, retire, collide.
func (g *Game) advance() core.StepResult {
	var events []core.Event
	tick := g.tick
	g.tick++

	g.player.Vel += g.cfg.Physics.Gravity
	g.player.Y += g.player.Vel

	if g.player.Y+g.player.H > float64(g.field.H) {
		events = g.end(events, tick)
		return core.StepResult{State: g.State(), Events: events}
	}

	level := g.difficulty.Current()

	if tick%g.cfg.Obstacles.SpawnEvery == 0 {
		g.obstacles.Spawn(g.field, level.GapHeight)
		events = append(events, core.Event{Kind: core.EventSpawn, Tick: tick})
	}

	g.obstacles.Advance(level.ScrollSpeed)

	for range g.obstacles.Retire() {
		g.score++
		events = append(events, core.Event{Kind: core.EventScore, Tick: tick})
	}

	if g.obstacles.Hits(g.player.Rect()) > 0 {
		events = g.end(events, tick)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// end moves the game to Over. Further calls in the same phase are no-ops.
func (g *Game) end(events []core.Event, tick int) []core.Event {
	if g.phase == core.PhaseOver {
		return events
	}
	g.phase = core.PhaseOver
	return append(events, core.Event{Kind: core.EventGameOver, Tick: tick})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Phase: g.phase,
		Ticks: g.tick,
	}
}

// Snapshot is a read-only copy of everything the renderer needs.
type Snapshot struct {
	Field         core.Size
	Player        core.RectF
	Obstacles     []Obstacle
	ObstacleWidth float64
	Score         int
	Phase         core.Phase
	Difficulty    config.Difficulty
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Field:         g.field,
		Player:        g.player.Rect(),
		Obstacles:     g.obstacles.Obstacles(),
		ObstacleWidth: g.cfg.Obstacles.Width,
		Score:         g.score,
		Phase:         g.phase,
		Difficulty:    g.difficulty.Selected(),
	}
}

// Render draws the current state onto c.
func (g *Game) Render(c core.Canvas) {
	Render(g.Snapshot(), c)
}
