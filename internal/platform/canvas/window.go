//go:build ebiten

package canvas

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	statusBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff}
	levelBackground  = color.RGBA{R: 0x40, G: 0x40, B: 0x48, A: 0xff}
	buttonBackground = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xe0}
)

// Window adapts a flappy.Game to the ebiten.Game interface. It reads the
// keyboard, mouse and touch devices and forwards them to a Controller.
type Window struct {
	game  *flappy.Game
	field core.Size
	ctrl  *Controller
}

// NewWindow constructs a Window and resets the game.
func NewWindow(game *flappy.Game, cfg core.RuntimeConfig, opts Options) *Window {
	return &Window{
		game:  game,
		field: game.Field(),
		ctrl:  NewController(game, cfg, opts.Logger),
	}
}

// Update handles per-frame input and advances the simulation.
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	w.readKeys()
	w.readPointers()
	w.ctrl.Tick()
	return nil
}

func (w *Window) readKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
		inpututil.IsKeyJustPressed(ebiten.KeyW) {
		w.ctrl.Flap()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		w.ctrl.Replay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		w.ctrl.NextDifficulty()
	}
	for i, k := range []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3} {
		if inpututil.IsKeyJustPressed(k) {
			w.ctrl.SelectLevel(i)
		}
	}
}

func (w *Window) readPointers() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		w.ctrl.Press(float64(x), float64(y))
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		w.ctrl.Press(float64(x), float64(y))
	}
}

// Draw renders the playfield, the replay button while over, and the status strip.
func (w *Window) Draw(screen *ebiten.Image) {
	w.game.Render(NewImageCanvas(screen, w.field))

	if w.ctrl.State().GameOver() {
		b := ReplayButton(w.field)
		vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonBackground, false)
		label := "Replay"
		tx := int(b.X + (b.W-float64(len(label)*glyphW))/2)
		ty := int(b.Y + b.H/2 + 4)
		text.Draw(screen, label, basicfont.Face7x13, tx, ty, RGBA(core.ColorWhite))
	}

	w.drawStatus(screen)
}

func (w *Window) drawStatus(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, float32(w.field.H), float32(w.field.W), StatusHeight, statusBackground, false)

	names := w.game.Difficulties()
	selected := w.game.Difficulty()
	for i, b := range LevelButtons(w.field, names) {
		fg := RGBA(core.ColorGray)
		if names[i] == selected {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), levelBackground, false)
			fg = RGBA(core.ColorBrightYellow)
		}
		text.Draw(screen, string(names[i]), basicfont.Face7x13, int(b.X)+4, int(b.Bottom())-4, fg)
	}
}

// Layout returns the logical screen size: the playfield plus the status strip.
func (w *Window) Layout(_, _ int) (int, int) {
	return WindowSize(w.field)
}

// ViewportWidth returns the monitor width used to size the playfield.
func ViewportWidth() (int, error) {
	width, _ := ebiten.ScreenSizeInFullscreen()
	if width <= 0 {
		return 0, errors.New("canvas: screen size unavailable")
	}
	return width, nil
}

// Run opens the window and blocks until it is closed.
func Run(game *flappy.Game, cfg core.RuntimeConfig, opts Options) error {
	win := NewWindow(game, cfg, opts)

	title := opts.Title
	if title == "" {
		title = flappy.Title
	}
	tps := cfg.TickRate
	if tps <= 0 {
		tps = core.DefaultConfig().TickRate
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(WindowSize(win.field))

	if err := ebiten.RunGame(win); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("canvas: %w", err)
	}
	return nil
}
