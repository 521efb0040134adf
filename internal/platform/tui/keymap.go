package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMap holds the key bindings for the game screen.
// It implements help.KeyMap so the status bar can render it.
type KeyMap struct {
	Flap       key.Binding
	Replay     key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	Cycle      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings. Replay starts disabled and is
// enabled by the model only while the game is over.
func DefaultKeyMap() KeyMap {
	km := KeyMap{
		Flap: key.NewBinding(
			key.WithKeys(" ", "space", "up", "w"),
			key.WithHelp("space/↑", "flap"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r/enter", "replay"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-3", "difficulty"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "cycle"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
	km.Replay.SetEnabled(false)
	return km
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flap, k.Replay, k.Easy, k.Cycle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Flap, k.Replay},
		{k.Easy, k.Cycle},
		{k.Screenshot, k.Quit},
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys    KeyMap
	restart key.Binding // Replay keys, matched even while the help entry is hidden
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	keys := DefaultKeyMap()
	return &KeyMapper{
		keys:    keys,
		restart: key.NewBinding(key.WithKeys(keys.Replay.Keys()...)),
	}
}

// Keys returns the bindings, e.g. for rendering help.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// SetGameOver toggles the bindings that only make sense after a crash.
func (km *KeyMapper) SetGameOver(over bool) {
	km.keys.Replay.SetEnabled(over)
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Replay keys map to ActionRestart regardless of phase; the game ignores a
// restart while running.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Flap):
		return core.ActionFlap, false
	case key.Matches(msg, km.restart):
		return core.ActionRestart, false
	case key.Matches(msg, km.keys.Cycle):
		return core.ActionNextMode, false
	}
	return core.ActionNone, false
}

// MapDifficulty returns the difficulty table index picked by a number key.
func (km *KeyMapper) MapDifficulty(msg tea.KeyMsg) (index int, ok bool) {
	switch {
	case key.Matches(msg, km.keys.Easy):
		return 0, true
	case key.Matches(msg, km.keys.Medium):
		return 1, true
	case key.Matches(msg, km.keys.Hard):
		return 2, true
	}
	return 0, false
}

// IsScreenshot reports whether msg requests a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.keys.Quit) {
		return MenuActionQuit
	}

	switch msg.String() {
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}

	return MenuActionNone
}
