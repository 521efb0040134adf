package flappy

import (
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

var defaultField = core.Size{W: 320, H: 480}

func newTestGame(t *testing.T, cfg config.FlappyConfig, field core.Size, seed int64) *Game {
	t.Helper()
	g := New(cfg, field)
	g.Reset(core.RuntimeConfig{Seed: seed, TickRate: 60})
	return g
}

// floatingConfig disables gravity and widens the easy gap so the bird
// sits inside every gap and survives indefinitely.
func floatingConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	cfg.Difficulty.Levels[0].GapHeight = 460
	return cfg
}

func noInput() core.InputFrame {
	return core.NewInputFrame()
}

func countEvents(r core.StepResult, kind core.EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestPlayfieldFor(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	if got := PlayfieldFor(cfg, 640); got != (core.Size{W: 320, H: 480}) {
		t.Errorf("PlayfieldFor(640) = %+v", got)
	}
	if got := PlayfieldFor(cfg, 200); got != (core.Size{W: 180, H: 270}) {
		t.Errorf("PlayfieldFor(200) = %+v", got)
	}
}

func TestGameInitialState(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)

	if g.player.Y != 150 || g.player.Vel != 0 || g.player.X != 50 {
		t.Errorf("player = %+v, expected x=50 y=150 vel=0", g.player)
	}
	if g.obstacles.Len() != 0 || g.score != 0 || g.tick != 0 {
		t.Error("a fresh game has no obstacles, score or ticks")
	}
	if g.phase != core.PhaseRunning {
		t.Errorf("phase = %v, expected running", g.phase)
	}
	if g.Difficulty() != config.DifficultyEasy {
		t.Errorf("difficulty = %q, expected easy", g.Difficulty())
	}
}

func TestGravityAccumulation(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), core.Size{W: 320, H: 100000}, 7)

	for i := 0; i < 60; i++ {
		before := g.player.Vel
		g.Step(noInput())
		if g.phase != core.PhaseRunning {
			t.Fatalf("tick %d: game ended unexpectedly", i)
		}
		if g.player.Vel != before+0.6 {
			t.Fatalf("tick %d: velocity %v, expected %v", i, g.player.Vel, before+0.6)
		}
	}
}

func TestNinetyTickFreeFall(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), core.Size{W: 320, H: 100000}, 3)

	spawns := 0
	for i := 0; i < 90; i++ {
		spawns += countEvents(g.Step(noInput()), core.EventSpawn)
	}

	if g.phase != core.PhaseRunning {
		t.Fatal("bird should still be falling on a tall playfield")
	}
	if spawns != 1 || g.obstacles.Len() != 1 {
		t.Fatalf("spawns = %d, live obstacles = %d, expected exactly one", spawns, g.obstacles.Len())
	}

	// Spawned at the right edge on tick 0, then scrolled 90 times at easy speed.
	if x := g.obstacles.items[0].X; x != 320-90*2 {
		t.Errorf("obstacle x = %v, expected %v", x, 320-90*2)
	}

	// Per-tick integration law.
	vel, y := 0.0, 150.0
	for i := 0; i < 90; i++ {
		vel += 0.6
		y += vel
	}
	if g.player.Y != y {
		t.Errorf("player.Y = %v, expected %v", g.player.Y, y)
	}

	// Closed form: 150 + 0.6*(1+2+...+90).
	closed := 150 + 0.6*float64(90*91/2)
	if math.Abs(g.player.Y-closed) > 1e-6 {
		t.Errorf("player.Y = %v, expected about %v", g.player.Y, closed)
	}
	if g.State().Ticks != 90 {
		t.Errorf("ticks = %d, expected 90", g.State().Ticks)
	}
}

func TestFlapIsAbsolute(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), core.Size{W: 320, H: 100000}, 1)

	// Fall for a while to build up downward velocity.
	for i := 0; i < 20; i++ {
		g.Step(noInput())
	}
	if g.player.Vel <= 0 {
		t.Fatalf("bird should be falling, vel=%v", g.player.Vel)
	}

	if !g.Flap() {
		t.Fatal("Flap should apply while running")
	}
	if g.player.Vel != -10 {
		t.Errorf("velocity after flap = %v, expected exactly -10", g.player.Vel)
	}

	// Rapid repeated input does not compound.
	g.Flap()
	g.Flap()
	if g.player.Vel != -10 {
		t.Errorf("velocity after repeated flaps = %v, expected -10", g.player.Vel)
	}

	// The next tick adds gravity on top of the impulse.
	g.Step(noInput())
	if g.player.Vel != -10+0.6 {
		t.Errorf("velocity one tick after flap = %v, expected %v", g.player.Vel, -10+0.6)
	}
}

func TestFlapThroughInputFrame(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)
	initialY := g.player.Y

	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	g.Step(in)

	if g.player.Y >= initialY {
		t.Errorf("flap should move the bird up, was %v, now %v", initialY, g.player.Y)
	}
	if g.player.Vel >= 0 {
		t.Errorf("velocity should be upward after a flap, got %v", g.player.Vel)
	}
}

func TestFloorEndsGameBeforeObstacles(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)
	g.player.Y = 470
	g.player.Vel = 5

	result := g.Step(noInput())

	if !result.State.GameOver() {
		t.Fatal("hitting the floor should end the game")
	}
	if countEvents(result, core.EventGameOver) != 1 {
		t.Errorf("expected one game over event, got %+v", result.Events)
	}
	if result.Has(core.EventSpawn) || g.obstacles.Len() != 0 {
		t.Error("no obstacle work should happen on the tick the bird hits the floor")
	}
}

func TestTouchingFloorIsNotOver(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	g := newTestGame(t, cfg, defaultField, 1)
	g.player.Y = 460 // bottom edge exactly on the floor

	if g.Step(noInput()).State.GameOver() {
		t.Error("only crossing the bottom edge ends the game")
	}
}

func TestCeilingIsOpen(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	g := newTestGame(t, cfg, defaultField, 1)
	g.tick = 1 // skip the first spawn
	g.player.Y = -50

	if g.Step(noInput()).State.GameOver() {
		t.Error("flying above the playfield is not a terminal condition")
	}
}

func TestObstacleCollision(t *testing.T) {
	tests := []struct {
		name     string
		obstacle Obstacle
		playerY  float64
		over     bool
	}{
		{"inside the gap", Obstacle{X: 45, GapY: 100, GapHeight: 100}, 150, false},
		{"above the gap", Obstacle{X: 45, GapY: 160, GapHeight: 100}, 150, true},
		{"below the gap", Obstacle{X: 45, GapY: 50, GapHeight: 100}, 150, true},
		{"flush with gap edges", Obstacle{X: 45, GapY: 150, GapHeight: 20}, 150, false},
		{"left of the bird", Obstacle{X: 18, GapY: 300, GapHeight: 100}, 150, false},
		{"touching the bird's right edge", Obstacle{X: 72, GapY: 300, GapHeight: 100}, 150, false},
		{"overlapping the bird's right edge", Obstacle{X: 71, GapY: 300, GapHeight: 100}, 150, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultFlappyConfig()
			cfg.Physics.Gravity = 0
			g := newTestGame(t, cfg, defaultField, 1)
			g.tick = 1 // skip the first spawn
			g.player.Y = tc.playerY
			g.obstacles.items = append(g.obstacles.items, tc.obstacle)

			// The obstacle scrolls 2px before the collision check.
			result := g.Step(noInput())
			if result.State.GameOver() != tc.over {
				t.Errorf("GameOver = %v, expected %v", result.State.GameOver(), tc.over)
			}
		})
	}
}

func TestMultipleCollisionsEndOnce(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	g := newTestGame(t, cfg, defaultField, 1)
	g.tick = 1
	g.obstacles.items = append(g.obstacles.items,
		Obstacle{Seq: 0, X: 40, GapY: 300, GapHeight: 100},
		Obstacle{Seq: 1, X: 55, GapY: 300, GapHeight: 100},
	)

	result := g.Step(noInput())

	if g.obstacles.Hits(g.player.Rect()) != 2 {
		t.Fatalf("both obstacles should overlap the bird")
	}
	if countEvents(result, core.EventGameOver) != 1 {
		t.Errorf("expected exactly one game over event, got %+v", result.Events)
	}

	// Further steps are no-ops.
	before := g.Snapshot()
	result = g.Step(noInput())
	if len(result.Events) != 0 {
		t.Errorf("steps while over should emit nothing, got %+v", result.Events)
	}
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("steps while over must not change state")
	}
}

func TestScoringOnRetirement(t *testing.T) {
	g := newTestGame(t, floatingConfig(), defaultField, 9)

	// Spawned on tick 0 at x=320 and scrolled 2px per tick, the first
	// obstacle's trailing edge passes x=0 after 176 advances.
	prev := 0
	for i := 0; i < 400; i++ {
		liveBefore := g.Snapshot().Obstacles
		result := g.Step(noInput())
		if result.State.GameOver() {
			t.Fatalf("tick %d: floating bird should survive", i)
		}

		delta := result.State.Score - prev
		if delta < 0 || delta > 1 {
			t.Fatalf("tick %d: score jumped by %d", i, delta)
		}
		if delta != countEvents(result, core.EventScore) {
			t.Fatalf("tick %d: score delta %d does not match events %+v", i, delta, result.Events)
		}
		if delta == 1 {
			head := liveBefore[0]
			if head.X-2+30 >= 0 {
				t.Fatalf("tick %d: scored before the head's trailing edge left (x=%v)", i, head.X)
			}
		}

		switch i {
		case 174:
			if result.State.Score != 0 {
				t.Fatalf("score should still be 0 at tick 174")
			}
		case 175:
			if result.State.Score != 1 {
				t.Fatalf("score should be 1 at tick 175, got %d", result.State.Score)
			}
		}
		prev = result.State.Score
	}

	// Obstacles spawned at ticks 0, 90, 180 and 270 have all retired by tick 399.
	if prev != 3 {
		t.Errorf("final score = %d, expected 3", prev)
	}
}

func TestObstacleQueueFIFO(t *testing.T) {
	q := NewObstacleQueue(5, 30, 10, 10)

	var retired []int
	for tick := 0; tick < 1000; tick++ {
		if tick%90 == 0 {
			q.Spawn(defaultField, 130)
		}
		q.Advance(3)
		for _, o := range q.Retire() {
			retired = append(retired, o.Seq)
		}
	}

	if len(retired) == 0 {
		t.Fatal("expected obstacles to retire")
	}
	for i, seq := range retired {
		if seq != i {
			t.Fatalf("retirement order %v is not spawn order", retired)
		}
	}

	// Nothing left in the queue has already retired.
	for _, o := range q.Obstacles() {
		if o.Seq < len(retired) {
			t.Errorf("obstacle %d retired twice", o.Seq)
		}
	}
}

func TestObstacleQueueRetiresSeveralAtOnce(t *testing.T) {
	q := NewObstacleQueue(1, 30, 10, 10)
	q.items = append(q.items,
		Obstacle{Seq: 0, X: -40},
		Obstacle{Seq: 1, X: -35},
		Obstacle{Seq: 2, X: -10},
		Obstacle{Seq: 3, X: 100},
	)

	retired := q.Retire()

	if len(retired) != 2 || retired[0].Seq != 0 || retired[1].Seq != 1 {
		t.Fatalf("retired = %+v, expected the two expired head obstacles", retired)
	}
	if q.Len() != 2 || q.items[0].Seq != 2 {
		t.Errorf("remaining = %+v", q.items)
	}
	if again := q.Retire(); len(again) != 0 {
		t.Errorf("second Retire should be empty, got %+v", again)
	}
}

func TestGapPlacementBounds(t *testing.T) {
	fields := []core.Size{{W: 320, H: 480}, {W: 270, H: 405}, {W: 180, H: 270}}
	gaps := []int{100, 130, 200}

	for seed := int64(1); seed <= 20; seed++ {
		for _, field := range fields {
			for _, gap := range gaps {
				q := NewObstacleQueue(seed, 30, 10, 10)
				for i := 0; i < 50; i++ {
					o := q.Spawn(field, gap)
					if o.GapY < 10 || o.GapY > field.H-gap-10 {
						t.Fatalf("seed %d field %+v gap %d: GapY %d outside [10, %d]",
							seed, field, gap, o.GapY, field.H-gap-10)
					}
					if o.X != float64(field.W) {
						t.Fatalf("obstacle should spawn at the right edge, got x=%v", o.X)
					}
					if o.GapHeight != gap {
						t.Fatalf("gap height = %d, expected %d", o.GapHeight, gap)
					}
				}
			}
		}
	}
}

func TestGapPlacementUsesWholeRange(t *testing.T) {
	q := NewObstacleQueue(42, 30, 10, 10)
	field := core.Size{W: 320, H: 140}

	// Gap 100 on a 140px field leaves GapY in [10, 30].
	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		seen[q.Spawn(field, 100).GapY] = true
	}
	if !seen[10] || !seen[30] {
		t.Errorf("both ends of the range should be reachable, saw %v", seen)
	}
	if len(seen) != 21 {
		t.Errorf("expected 21 distinct positions, got %d", len(seen))
	}
}

func TestNarrowPlayfield(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	tests := []struct {
		viewport int
		fits     bool
	}{
		{160, false}, // 144x216: easy needs 220
		{163, false}, // 146x219
		{164, true},  // 147x220: easy fits exactly
		{200, true},
		{640, true},
	}

	for _, tc := range tests {
		field := PlayfieldFor(cfg, tc.viewport)
		err := cfg.CheckPlayfieldHeight(field.H)
		if (err == nil) != tc.fits {
			t.Errorf("viewport %d (%+v): err = %v, expected fits=%v", tc.viewport, field, err, tc.fits)
			continue
		}
		if err != nil {
			continue
		}

		for _, l := range cfg.Difficulty.Levels {
			q := NewObstacleQueue(int64(tc.viewport), cfg.Obstacles.Width, cfg.Obstacles.TopMargin, cfg.Obstacles.BottomMargin)
			limit := field.H - l.GapHeight - cfg.Obstacles.BottomMargin
			for i := 0; i < 50; i++ {
				o := q.Spawn(field, l.GapHeight)
				if o.GapY < cfg.Obstacles.TopMargin || o.GapY > limit {
					t.Fatalf("viewport %d %s: GapY %d outside [%d, %d]",
						tc.viewport, l.Name, o.GapY, cfg.Obstacles.TopMargin, limit)
				}
			}
		}
	}
}

func TestHardModeMidGame(t *testing.T) {
	g := newTestGame(t, floatingConfig(), defaultField, 11)

	g.Step(noInput()) // spawns the first obstacle with the easy gap
	first := g.obstacles.items[0]
	if first.GapHeight != 460 {
		t.Fatalf("first gap = %d, expected the easy gap 460", first.GapHeight)
	}

	if !g.SelectDifficulty(config.DifficultyHard) {
		t.Fatal("hard should be selectable")
	}

	g.Step(noInput())
	after := g.obstacles.items[0]
	if first.X-after.X != 4 {
		t.Errorf("existing obstacle moved %v px, expected the hard speed 4", first.X-after.X)
	}
	if after.GapHeight != 460 {
		t.Errorf("existing gap changed to %d; it must keep its spawn-time height", after.GapHeight)
	}

	for !g.Step(noInput()).Has(core.EventSpawn) {
	}
	if fresh := g.obstacles.items[g.obstacles.Len()-1]; fresh.GapHeight != 100 {
		t.Errorf("new obstacle gap = %d, expected the hard gap 100", fresh.GapHeight)
	}
}

func TestNextDifficultyThroughInput(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)

	in := core.NewInputFrame()
	in.Set(core.ActionNextMode)
	g.Step(in)

	if g.Difficulty() != config.DifficultyMedium {
		t.Errorf("difficulty = %q, expected medium", g.Difficulty())
	}
	if g.SelectDifficulty("impossible") {
		t.Error("unknown difficulty must be ignored")
	}
	if g.Difficulty() != config.DifficultyMedium {
		t.Error("ignored selection changed the difficulty")
	}
}

func TestEventsWhileOverAreIgnored(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)
	g.player.Y = 479
	g.Step(noInput())
	if g.phase != core.PhaseOver {
		t.Fatal("setup: game should be over")
	}

	vel := g.player.Vel
	if g.Flap() {
		t.Error("Flap should report it was ignored")
	}
	if g.player.Vel != vel {
		t.Error("Flap must not change velocity while over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionFlap)
	before := g.Snapshot()
	g.Step(in)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("flap input while over must not change state")
	}
}

func TestReplayAfterOver(t *testing.T) {
	g := newTestGame(t, floatingConfig(), defaultField, 1)
	for i := 0; i < 200; i++ {
		g.Step(noInput())
	}
	g.SelectDifficulty(config.DifficultyHard)
	g.player.Y = 479
	g.player.Vel = 3
	g.Step(noInput())
	if g.phase != core.PhaseOver || g.score == 0 || g.obstacles.Len() == 0 {
		t.Fatalf("setup: expected an ended game with progress, got %+v", g.State())
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	result := g.Step(in)

	// The restart frame also runs the first tick of the new game.
	if result.State.GameOver() {
		t.Fatal("restart should resume the game")
	}
	if result.State.Score != 0 || result.State.Ticks != 1 {
		t.Errorf("state after restart = %+v", result.State)
	}
	if g.obstacles.Len() != 1 || g.obstacles.items[0].Seq != 0 {
		t.Errorf("obstacles after restart = %+v, expected a single fresh spawn", g.obstacles.items)
	}
	if g.Difficulty() != config.DifficultyHard {
		t.Error("difficulty should survive a replay")
	}
}

func TestReplayRestoresInitialState(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 1)
	for i := 0; i < 100; i++ {
		g.Step(noInput())
	}

	g.Replay()

	if g.player.Y != 150 || g.player.Vel != 0 {
		t.Errorf("player = %+v, expected y=150 vel=0", g.player)
	}
	if g.obstacles.Len() != 0 || g.score != 0 || g.tick != 0 {
		t.Errorf("state = %+v, obstacles=%d", g.State(), g.obstacles.Len())
	}
	if g.phase != core.PhaseRunning {
		t.Error("replay should return to running")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultFlappyConfig()

	run := func() Snapshot {
		g := newTestGame(t, cfg, defaultField, 12345)
		for i := 0; i < 300; i++ {
			in := core.NewInputFrame()
			if i%18 == 0 {
				in.Set(core.ActionFlap)
			}
			if g.Step(in).State.GameOver() {
				break
			}
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and inputs gave different results:\n%+v\n%+v", a, b)
	}
}

func TestResetReseeds(t *testing.T) {
	g := newTestGame(t, config.DefaultFlappyConfig(), defaultField, 77)
	g.Step(noInput())
	first := g.obstacles.items[0].GapY

	g.Reset(core.RuntimeConfig{Seed: 77})
	g.Step(noInput())
	if again := g.obstacles.items[0].GapY; again != first {
		t.Errorf("same seed should give the same first gap, got %d and %d", first, again)
	}
}
