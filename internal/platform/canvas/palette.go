// Package canvas is the pixel front end: an ebiten window that draws the
// playfield at its native size, one playfield pixel per window pixel.
//
// The window is compiled only with the ebiten build tag. Without it, Run and
// ViewportWidth return ErrNoWindow so the rest of the program still builds
// on machines without a graphics stack.
package canvas

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ErrNoWindow is returned by builds without the ebiten tag.
var ErrNoWindow = errors.New("canvas: window support not compiled in (build with -tags ebiten)")

// Background is the playfield fill colour.
var Background = color.RGBA{R: 0x70, G: 0xc5, B: 0xce, A: 0xff}

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorRed:          {R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
	core.ColorGreen:        {R: 0x00, G: 0x80, B: 0x00, A: 0xff},
	core.ColorYellow:       {R: 0xff, G: 0xff, B: 0x00, A: 0xff},
	core.ColorBlue:         {R: 0x40, G: 0x60, B: 0xe0, A: 0xff},
	core.ColorCyan:         {R: 0x40, G: 0xe0, B: 0xe0, A: 0xff},
	core.ColorWhite:        {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBrightGreen:  {R: 0x60, G: 0xff, B: 0x60, A: 0xff},
	core.ColorBrightYellow: {R: 0xff, G: 0xf0, B: 0x80, A: 0xff},
	core.ColorGray:         {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
}

// RGBA maps a semantic colour to a pixel colour. Unknown colours are white.
func RGBA(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorDefault]
}

// Options configures the window.
type Options struct {
	Logger *log.Logger // Defaults to a discarding logger
	Title  string
}
