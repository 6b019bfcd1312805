package ui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/chunkrunner/internal/physics"
)

// DefaultHoldWindow is how long a horizontal key counts as held after its last
// event. Terminals report key repeats but never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// InputState turns terminal key events into per-frame intents.
type InputState struct {
	hold     time.Duration
	moveX    int
	lastMove time.Time
	jump     bool
}

// NewInputState creates an input state with the given hold window.
func NewInputState(hold time.Duration) *InputState {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	return &InputState{hold: hold}
}

// HandleKey records a key event. Returns false if the key is not a movement key.
func (s *InputState) HandleKey(ev *tcell.EventKey, now time.Time) bool {
	switch ev.Key() {
	case tcell.KeyLeft:
		s.press(-1, now)
		return true
	case tcell.KeyRight:
		s.press(1, now)
		return true
	case tcell.KeyUp:
		s.jump = true
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h':
			s.press(-1, now)
			return true
		case 'd', 'D', 'l':
			s.press(1, now)
			return true
		case ' ', 'w', 'W', 'k':
			s.jump = true
			return true
		}
	}
	return false
}

func (s *InputState) press(dir int, now time.Time) {
	s.moveX = dir
	s.lastMove = now
}

// Intent returns the intent for the next simulation step.
// A pending jump is reported once and then cleared.
func (s *InputState) Intent(now time.Time) physics.Intent {
	in := physics.Intent{JumpPressed: s.jump}
	s.jump = false

	if s.moveX != 0 && now.Sub(s.lastMove) <= s.hold {
		in.MoveX = s.moveX
	} else {
		s.moveX = 0
	}
	return in
}

// Reset drops any held direction and pending jump.
func (s *InputState) Reset() {
	s.moveX = 0
	s.jump = false
}
