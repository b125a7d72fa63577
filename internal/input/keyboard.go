package input

import (
	"github.com/ayudkin/tui-maze/internal/core"
)

// Feeder is implemented by sources that consume platform input frames.
// The game adapter checks for it once at construction time; sensor-backed
// sources simply don't implement it.
type Feeder interface {
	Feed(frame core.InputFrame)
}

// Keyboard derives directional intent from platform key actions.
// When several directional actions arrive in the same frame, a fixed
// priority resolves them to a single direction: Up, Down, Left, Right.
type Keyboard struct {
	pending Direction
}

// NewKeyboard creates a keyboard input source with no pending direction.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Feed records the directional actions of one input frame.
// The resolved direction is held until the next Poll.
func (k *Keyboard) Feed(frame core.InputFrame) {
	switch {
	case frame.Has(core.ActionUp):
		k.pending = Up
	case frame.Has(core.ActionDown):
		k.pending = Down
	case frame.Has(core.ActionLeft):
		k.pending = Left
	case frame.Has(core.ActionRight):
		k.pending = Right
	}
}

// Poll returns the pending direction and clears it, so a single key press
// moves the player exactly one cell.
func (k *Keyboard) Poll() Direction {
	d := k.pending
	k.pending = None
	return d
}

func init() {
	Register("keyboard", func() (Source, error) {
		return NewKeyboard(), nil
	})
}
