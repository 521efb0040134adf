package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a vertical barrier pair with a passable gap.
type Obstacle struct {
	Seq       int     // Spawn order, starting at 0 after each reset
	X         float64 // Left edge; decreases every tick
	GapY      int     // Top of the gap, fixed at spawn
	GapHeight int     // Gap size copied from the difficulty at spawn
}

// TopRect returns the segment from the playfield top to the gap.
func (o Obstacle) TopRect(width float64) core.RectF {
	return core.NewRectF(o.X, 0, width, float64(o.GapY))
}

// BottomRect returns the segment from the gap end to the playfield bottom.
func (o Obstacle) BottomRect(width float64, fieldH int) core.RectF {
	gapEnd := float64(o.GapY + o.GapHeight)
	return core.NewRectF(o.X, gapEnd, width, float64(fieldH)-gapEnd)
}

// Blocks reports whether the player box hits this obstacle: the boxes
// overlap horizontally and the player is not fully inside the gap.
// A player above the playfield still hits the top segment.
func (o Obstacle) Blocks(player core.RectF, width float64) bool {
	span := core.NewRectF(o.X, 0, width, 0)
	if !player.OverlapsX(span) {
		return false
	}
	return player.Y < float64(o.GapY) || player.Bottom() > float64(o.GapY+o.GapHeight)
}

// Expired reports whether the trailing edge has crossed the left boundary.
func (o Obstacle) Expired(width float64) bool {
	return o.X+width < 0
}

// ObstacleQueue holds live obstacles in spawn order. New obstacles are
// appended at the tail and expired ones leave from the head; uniform speed
// keeps the head the oldest and leftmost.
type ObstacleQueue struct {
	items        []Obstacle
	rng          *rand.Rand
	width        float64
	topMargin    int
	bottomMargin int
	spawned      int
}

// NewObstacleQueue creates an empty queue with the given RNG seed.
func NewObstacleQueue(seed int64, width float64, topMargin, bottomMargin int) *ObstacleQueue {
	return &ObstacleQueue{
		items:        make([]Obstacle, 0, 8),
		rng:          rand.New(rand.NewSource(seed)),
		width:        width,
		topMargin:    topMargin,
		bottomMargin: bottomMargin,
	}
}

// Reseed restarts the gap sequence from seed.
func (q *ObstacleQueue) Reseed(seed int64) {
	q.rng = rand.New(rand.NewSource(seed))
}

// Clear removes every obstacle and restarts spawn numbering.
// The RNG keeps its position so a replay gets fresh gaps.
func (q *ObstacleQueue) Clear() {
	q.items = q.items[:0]
	q.spawned = 0
}

// Spawn appends an obstacle at the right edge of a field with a gap of
// gapHeight placed uniformly in [topMargin, fieldH-gapHeight-bottomMargin].
func (q *ObstacleQueue) Spawn(field core.Size, gapHeight int) Obstacle {
	lo := q.topMargin
	hi := field.H - gapHeight - q.bottomMargin

	gapY := lo
	if hi > lo {
		gapY = lo + q.rng.Intn(hi-lo+1)
	}

	o := Obstacle{
		Seq:       q.spawned,
		X:         float64(field.W),
		GapY:      gapY,
		GapHeight: gapHeight,
	}
	q.spawned++
	q.items = append(q.items, o)
	return o
}

// Advance moves every obstacle left by speed.
func (q *ObstacleQueue) Advance(speed float64) {
	for i := range q.items {
		q.items[i].X -= speed
	}
}

// Retire removes expired obstacles from the head and returns them.
// Expiry is decided first, then the slice is compacted once.
func (q *ObstacleQueue) Retire() []Obstacle {
	n := 0
	for n < len(q.items) && q.items[n].Expired(q.width) {
		n++
	}
	if n == 0 {
		return nil
	}

	retired := append([]Obstacle(nil), q.items[:n]...)
	q.items = append(q.items[:0], q.items[n:]...)
	return retired
}

// Hits counts the obstacles the player box collides with.
func (q *ObstacleQueue) Hits(player core.RectF) int {
	hits := 0
	for _, o := range q.items {
		if o.Blocks(player, q.width) {
			hits++
		}
	}
	return hits
}

// Len returns the number of live obstacles.
func (q *ObstacleQueue) Len() int {
	return len(q.items)
}

// Obstacles returns a copy of the live obstacles, head first.
func (q *ObstacleQueue) Obstacles() []Obstacle {
	return append([]Obstacle(nil), q.items...)
}
