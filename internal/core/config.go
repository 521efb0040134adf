package core

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the game's top-level state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// GameState summarises the game for the platform layer.
type GameState struct {
	Score int
	Phase Phase
	Ticks int // Ticks simulated since the last reset
}

// GameOver reports whether the game has ended.
func (s GameState) GameOver() bool {
	return s.Phase == PhaseOver
}

// EventKind classifies something notable that happened during a tick.
type EventKind int

const (
	EventSpawn    EventKind = iota // An obstacle entered at the right edge
	EventScore                     // An obstacle retired past the left edge
	EventGameOver                  // The run ended this tick
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventScore:
		return "score"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by a simulation tick.
type Event struct {
	Kind EventKind
	Tick int
}

// StepResult is returned by Step after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
