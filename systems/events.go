package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/events"
)

// Event type constants
const (
	EventPaddleHit  events.Type = "paddle_hit"
	EventWallBounce events.Type = "wall_bounce"
	EventGameOver   events.Type = "game_over"
)

// PaddleID names which paddle was involved in an event
type PaddleID int

const (
	PaddleNone PaddleID = iota
	PaddlePlayer1
	PaddlePlayer2
)

// PaddleHitEvent is emitted when the ball is deflected by a paddle
type PaddleHitEvent struct {
	Frame    uint64
	Paddle   PaddleID
	Offset   float64         // normalised distance between paddle and ball centres
	Velocity components.Vec2 // ball velocity after the hit
}

// Type returns the event type
func (e PaddleHitEvent) Type() events.Type {
	return EventPaddleHit
}

// WallBounceEvent is emitted when the ball bounces off the top or bottom wall
type WallBounceEvent struct {
	Frame    uint64
	Velocity components.Vec2
}

// Type returns the event type
func (e WallBounceEvent) Type() events.Type {
	return EventWallBounce
}

// GameOverEvent is emitted on the frame the ball leaves the field
type GameOverEvent struct {
	Frame  uint64
	Result FrameResult
}

// Type returns the event type
func (e GameOverEvent) Type() events.Type {
	return EventGameOver
}
