package maze

import (
	"github.com/ayudkin/tui-maze/internal/core"
)

// Overlay holds the mutable per-attempt state layered over a Board: which
// collectibles have been consumed and where the obstacles sit. Restarting
// an attempt is a cheap Reset, never a mutation of the Level definition.
type Overlay struct {
	collectibles map[core.Point]bool // position -> consumed
	obstacles    map[core.Point]bool
}

// NewOverlay creates the overlay for one attempt of the given level.
func NewOverlay(level *Level) *Overlay {
	o := &Overlay{
		collectibles: make(map[core.Point]bool, len(level.Collectibles)),
		obstacles:    make(map[core.Point]bool, len(level.Obstacles)),
	}
	for _, p := range level.Collectibles {
		o.collectibles[p] = false
	}
	for _, p := range level.Obstacles {
		o.obstacles[p] = true
	}
	return o
}

// CollectibleAt reports whether an unconsumed collectible sits at p.
func (o *Overlay) CollectibleAt(p core.Point) bool {
	consumed, ok := o.collectibles[p]
	return ok && !consumed
}

// Consume marks the collectible at p as consumed.
// Returns true only the first time; consuming twice is a no-op.
func (o *Overlay) Consume(p core.Point) bool {
	consumed, ok := o.collectibles[p]
	if !ok || consumed {
		return false
	}
	o.collectibles[p] = true
	return true
}

// ObstacleAt reports whether an obstacle occupies p.
func (o *Overlay) ObstacleAt(p core.Point) bool {
	return o.obstacles[p]
}

// Reset restores every collectible to unconsumed for a fresh attempt.
func (o *Overlay) Reset() {
	for p := range o.collectibles {
		o.collectibles[p] = false
	}
}

// Remaining returns the number of collectibles not yet consumed.
func (o *Overlay) Remaining() int {
	n := 0
	for _, consumed := range o.collectibles {
		if !consumed {
			n++
		}
	}
	return n
}
