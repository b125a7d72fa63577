package input

import (
	"testing"

	"github.com/ayudkin/tui-maze/internal/core"
)

func TestKeyboardFeedPoll(t *testing.T) {
	k := NewKeyboard()

	if got := k.Poll(); got != None {
		t.Errorf("Poll on fresh keyboard = %v, want None", got)
	}

	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	k.Feed(f)
	if got := k.Poll(); got != Right {
		t.Errorf("Poll = %v, want Right", got)
	}
}

func TestKeyboardPollClearsPending(t *testing.T) {
	k := NewKeyboard()

	f := core.NewInputFrame()
	f.Set(core.ActionUp)
	k.Feed(f)

	if got := k.Poll(); got != Up {
		t.Fatalf("first Poll = %v, want Up", got)
	}
	// One press, one move: the second poll is empty.
	if got := k.Poll(); got != None {
		t.Errorf("second Poll = %v, want None", got)
	}
}

func TestKeyboardSimultaneousKeysResolveByPriority(t *testing.T) {
	cases := []struct {
		name    string
		actions []core.Action
		want    Direction
	}{
		{"up beats down", []core.Action{core.ActionDown, core.ActionUp}, Up},
		{"up beats all", []core.Action{core.ActionRight, core.ActionLeft, core.ActionDown, core.ActionUp}, Up},
		{"down beats left", []core.Action{core.ActionLeft, core.ActionDown}, Down},
		{"left beats right", []core.Action{core.ActionRight, core.ActionLeft}, Left},
		{"right alone", []core.Action{core.ActionRight}, Right},
	}

	for _, tc := range cases {
		k := NewKeyboard()
		f := core.NewInputFrame()
		for _, a := range tc.actions {
			f.Set(a)
		}
		k.Feed(f)
		if got := k.Poll(); got != tc.want {
			t.Errorf("%s: Poll = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestKeyboardNonDirectionalActionsIgnored(t *testing.T) {
	k := NewKeyboard()

	f := core.NewInputFrame()
	f.Set(core.ActionConfirm)
	f.Set(core.ActionPause)
	k.Feed(f)
	if got := k.Poll(); got != None {
		t.Errorf("Poll = %v, want None for non-directional frame", got)
	}
}

func TestKeyboardLatestFeedWins(t *testing.T) {
	k := NewKeyboard()

	f1 := core.NewInputFrame()
	f1.Set(core.ActionLeft)
	k.Feed(f1)

	f2 := core.NewInputFrame()
	f2.Set(core.ActionDown)
	k.Feed(f2)

	if got := k.Poll(); got != Down {
		t.Errorf("Poll = %v, want Down (latest feed)", got)
	}
}

func TestKeyboardEmptyFeedKeepsPending(t *testing.T) {
	k := NewKeyboard()

	f := core.NewInputFrame()
	f.Set(core.ActionRight)
	k.Feed(f)
	k.Feed(core.NewInputFrame()) // no directional actions

	if got := k.Poll(); got != Right {
		t.Errorf("Poll = %v, want Right (empty frame must not erase a press)", got)
	}
}
