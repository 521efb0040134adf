package core

import "math"

// Canvas is a fixed-size 2D drawing surface addressed in playfield pixels.
// Renderers emit drawing commands to it; implementations decide how pixels
// reach the user (terminal cells, an ebiten image, a recorded command list).
type Canvas interface {
	// Bounds returns the playfield size the canvas represents.
	Bounds() Size
	// Clear wipes the whole surface.
	Clear()
	// FillRect paints a filled rectangle.
	FillRect(r RectF, c Color)
	// FillText draws text with its baseline at (x, y).
	FillText(x, y float64, text string, c Color)
}

// DrawOp identifies a recorded drawing command.
type DrawOp int

const (
	OpClear DrawOp = iota
	OpFillRect
	OpFillText
)

// DrawCmd is one recorded drawing command.
type DrawCmd struct {
	Op    DrawOp
	Rect  RectF   // OpFillRect
	X, Y  float64 // OpFillText baseline origin
	Text  string  // OpFillText
	Color Color
}

// DrawList is a Canvas that records commands instead of painting them.
// Replay forwards the recording to another canvas.
type DrawList struct {
	size Size
	Cmds []DrawCmd
}

// NewDrawList creates an empty recording canvas of the given size.
func NewDrawList(size Size) *DrawList {
	return &DrawList{size: size}
}

func (d *DrawList) Bounds() Size { return d.size }

func (d *DrawList) Clear() {
	d.Cmds = append(d.Cmds[:0], DrawCmd{Op: OpClear})
}

func (d *DrawList) FillRect(r RectF, c Color) {
	d.Cmds = append(d.Cmds, DrawCmd{Op: OpFillRect, Rect: r, Color: c})
}

func (d *DrawList) FillText(x, y float64, text string, c Color) {
	d.Cmds = append(d.Cmds, DrawCmd{Op: OpFillText, X: x, Y: y, Text: text, Color: c})
}

// Rects returns the recorded rectangles painted with colour c.
func (d *DrawList) Rects(c Color) []RectF {
	var out []RectF
	for _, cmd := range d.Cmds {
		if cmd.Op == OpFillRect && cmd.Color == c {
			out = append(out, cmd.Rect)
		}
	}
	return out
}

// Replay sends every recorded command to dst in order.
func (d *DrawList) Replay(dst Canvas) {
	for _, cmd := range d.Cmds {
		switch cmd.Op {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(cmd.Rect, cmd.Color)
		case OpFillText:
			dst.FillText(cmd.X, cmd.Y, cmd.Text, cmd.Color)
		}
	}
}

// Nominal terminal cell size in pixels. Cells are about twice as tall as wide.
const (
	CellPixelW = 8.0
	CellPixelH = 16.0
)

// FillRune is the glyph used for filled playfield pixels.
const FillRune = '█'

// ScreenCanvas projects a playfield onto a Screen. The playfield is scaled
// uniformly to fit inside a one-cell frame and centered.
type ScreenCanvas struct {
	dst      *Screen
	size     Size
	viewport Rect
	sx, sy   float64 // cells per playfield pixel
}

// NewScreenCanvas fits a playfield of the given size onto dst.
func NewScreenCanvas(dst *Screen, size Size) *ScreenCanvas {
	c := &ScreenCanvas{dst: dst, size: size}
	c.Fit()
	return c
}

// Fit recomputes the projection after the underlying screen was resized.
// The playfield size itself never changes.
func (c *ScreenCanvas) Fit() {
	availW := float64(Max(c.dst.Width()-2, 1))
	availH := float64(Max(c.dst.Height()-2, 1))
	fw := float64(Max(c.size.W, 1))
	fh := float64(Max(c.size.H, 1))

	scale := math.Min(availW*CellPixelW/fw, availH*CellPixelH/fh)
	c.sx = scale / CellPixelW
	c.sy = scale / CellPixelH

	vw := Max(int(math.Round(fw*c.sx)), 1)
	vh := Max(int(math.Round(fh*c.sy)), 1)
	c.viewport = NewRect((c.dst.Width()-vw)/2, (c.dst.Height()-vh)/2, vw, vh)
}

// Viewport returns the cell rectangle the playfield occupies.
func (c *ScreenCanvas) Viewport() Rect {
	return c.viewport
}

func (c *ScreenCanvas) Bounds() Size { return c.size }

// Clear blanks the screen and frames the viewport.
func (c *ScreenCanvas) Clear() {
	c.dst.Clear()
	v := c.viewport
	c.dst.DrawBox(NewRect(v.X-1, v.Y-1, v.W+2, v.H+2), ColorGray)
}

func (c *ScreenCanvas) FillRect(r RectF, col Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0 := int(math.Round(r.X * c.sx))
	x1 := int(math.Round(r.Right() * c.sx))
	y0 := int(math.Round(r.Y * c.sy))
	y1 := int(math.Round(r.Bottom() * c.sy))
	if x1 == x0 {
		x1 = x0 + 1
	}
	if y1 == y0 {
		y1 = y0 + 1
	}

	x0 = Clamp(x0, 0, c.viewport.W)
	x1 = Clamp(x1, 0, c.viewport.W)
	y0 = Clamp(y0, 0, c.viewport.H)
	y1 = Clamp(y1, 0, c.viewport.H)

	cells := NewRect(c.viewport.X+x0, c.viewport.Y+y0, x1-x0, y1-y0)
	if cells.Empty() {
		return
	}
	c.dst.FillRect(cells, FillRune, col)
}

func (c *ScreenCanvas) FillText(x, y float64, text string, col Color) {
	cx := int(math.Floor(x * c.sx))
	cy := Clamp(int(math.Floor(y*c.sy)), 0, c.viewport.H-1)

	// Clip to the viewport so text never overwrites the frame.
	runes := []rune(text)
	room := c.viewport.W - cx
	if room <= 0 {
		return
	}
	if len(runes) > room {
		runes = runes[:room]
	}
	c.dst.DrawText(c.viewport.X+cx, c.viewport.Y+cy, string(runes), col)
}
