//go:build ebiten

package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ImageCanvas draws playfield primitives onto an ebiten image.
type ImageCanvas struct {
	dst  *ebiten.Image
	size core.Size
}

// NewImageCanvas wraps dst. Only the top-left size pixels are touched.
func NewImageCanvas(dst *ebiten.Image, size core.Size) *ImageCanvas {
	return &ImageCanvas{dst: dst, size: size}
}

func (c *ImageCanvas) Bounds() core.Size { return c.size }

func (c *ImageCanvas) Clear() {
	vector.DrawFilledRect(c.dst, 0, 0, float32(c.size.W), float32(c.size.H), Background, false)
}

func (c *ImageCanvas) FillRect(r core.RectF, col core.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), RGBA(col), false)
}

func (c *ImageCanvas) FillText(x, y float64, s string, col core.Color) {
	text.Draw(c.dst, s, basicfont.Face7x13, int(x), int(y), RGBA(col))
}
