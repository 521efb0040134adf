package canvas

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// StatusHeight is the strip below the playfield that shows the difficulty.
const StatusHeight = 20

// glyphW is the advance of basicfont.Face7x13.
const glyphW = 7

// WindowSize returns the logical window size for a playfield.
func WindowSize(field core.Size) (w, h int) {
	return field.W, field.H + StatusHeight
}

// ReplayButton returns the replay button box, centred on the playfield.
func ReplayButton(field core.Size) core.RectF {
	w := float64(core.Min(120, field.W))
	h := float64(core.Min(32, field.H))
	return core.NewRectF((float64(field.W)-w)/2, (float64(field.H)-h)/2, w, h)
}

// LevelButtons lays out one clickable label per difficulty in the status strip.
func LevelButtons(field core.Size, names []config.Difficulty) []core.RectF {
	out := make([]core.RectF, 0, len(names))
	x := 4.0
	y := float64(field.H) + 2
	for _, n := range names {
		w := float64(len([]rune(string(n)))*glyphW + 8)
		out = append(out, core.NewRectF(x, y, w, StatusHeight-4))
		x += w + 4
	}
	return out
}

// HitButton returns the index of the box under (x, y), or -1.
func HitButton(boxes []core.RectF, x, y float64) int {
	for i, b := range boxes {
		if Contains(b, x, y) {
			return i
		}
	}
	return -1
}

// Contains reports whether the point lies inside r.
func Contains(r core.RectF, x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}
