package terminal

import "ebiten-pong/systems"

// Key is one of the four logical movement keys
type Key int

const (
	KeyPlayer1Up Key = iota
	KeyPlayer1Down
	KeyPlayer2Up
	KeyPlayer2Down
	keyCount
)

// KeyLatch turns key presses into held keys.
// Terminals send repeated presses while a key is down but never a release,
// so a key stays held for a fixed number of frames after its last press.
type KeyLatch struct {
	hold      int
	remaining [keyCount]int
}

// NewKeyLatch creates a latch holding each press for hold frames
func NewKeyLatch(hold int) *KeyLatch {
	if hold < 1 {
		hold = 1
	}
	return &KeyLatch{hold: hold}
}

// Press marks k as held for the next frames
func (l *KeyLatch) Press(k Key) {
	l.remaining[k] = l.hold
}

// Release forgets every pending press
func (l *KeyLatch) Release() {
	l.remaining = [keyCount]int{}
}

// Frame returns the keys held for this frame and ages every press by one frame
func (l *KeyLatch) Frame() systems.FrameInput {
	input := systems.FrameInput{
		Player1Up:   l.remaining[KeyPlayer1Up] > 0,
		Player1Down: l.remaining[KeyPlayer1Down] > 0,
		Player2Up:   l.remaining[KeyPlayer2Up] > 0,
		Player2Down: l.remaining[KeyPlayer2Down] > 0,
	}
	for k := range l.remaining {
		if l.remaining[k] > 0 {
			l.remaining[k]--
		}
	}
	return input
}
