package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/events"
)

// FrameInput is the state of the four movement keys for one frame
type FrameInput struct {
	Player1Up   bool
	Player1Down bool
	Player2Up   bool
	Player2Down bool
}

// WindowSize is the playing field in pixels
type WindowSize struct {
	Width  int
	Height int
}

// FrameResult tells the host whether to keep running frames
type FrameResult int

const (
	Continue FrameResult = iota
	Player1Wins
	Player2Wins
)

// Finished reports whether the match is over
func (r FrameResult) Finished() bool {
	return r != Continue
}

// Message returns the text announced when the match ends
func (r FrameResult) Message() string {
	switch r {
	case Player1Wins:
		return "Player 1 wins!"
	case Player2Wins:
		return "Player 2 wins!"
	default:
		return ""
	}
}

func (r FrameResult) String() string {
	switch r {
	case Player1Wins:
		return "player1_wins"
	case Player2Wins:
		return "player2_wins"
	default:
		return "continue"
	}
}

// Renderable is one sprite to draw and where to draw it
type Renderable struct {
	Sprite   components.Sprite
	Position components.Vec2
}

// GameLoop advances a GameState one fixed frame at a time.
// It is not safe for concurrent use.
type GameLoop struct {
	state   *GameState
	physics config.Physics
	events  *events.Manager
	result  FrameResult
	frame   uint64
}

// NewGameLoop creates a loop driving state. em may be nil.
func NewGameLoop(state *GameState, physics config.Physics, em *events.Manager) *GameLoop {
	return &GameLoop{
		state:   state,
		physics: physics,
		events:  em,
	}
}

// Frame returns the number of frames advanced so far
func (l *GameLoop) Frame() uint64 {
	return l.frame
}

// Result returns the outcome of the last advanced frame
func (l *GameLoop) Result() FrameResult {
	return l.result
}

// Advance runs one frame: paddles, ball, paddle hits, walls, then the win check.
// Once a player has won, Advance keeps returning that result and leaves the
// bodies untouched.
func (l *GameLoop) Advance(input FrameInput, window WindowSize) FrameResult {
	if l.result.Finished() {
		return l.result
	}
	l.frame++

	height := float64(window.Height)
	movePaddle(l.state.Player1, input.Player1Up, input.Player1Down, l.physics.PaddleSpeed, height)
	movePaddle(l.state.Player2, input.Player2Up, input.Player2Down, l.physics.PaddleSpeed, height)

	moveBall(l.state.Ball)

	if paddle, id := l.paddleHit(); paddle != nil {
		offset := deflectBall(l.state.Ball, paddle, l.physics)
		l.events.Emit(PaddleHitEvent{
			Frame:    l.frame,
			Paddle:   id,
			Offset:   offset,
			Velocity: l.state.Ball.Velocity,
		})
	}

	if bounceOffWalls(l.state.Ball, height) {
		l.events.Emit(WallBounceEvent{
			Frame:    l.frame,
			Velocity: l.state.Ball.Velocity,
		})
	}

	l.result = checkWinner(l.state.Ball, float64(window.Width))
	if l.result.Finished() {
		l.events.Emit(GameOverEvent{Frame: l.frame, Result: l.result})
	}
	return l.result
}

// paddleHit returns the paddle the ball overlaps, player 1 first
func (l *GameLoop) paddleHit() (*components.Body, PaddleID) {
	ball := l.state.Ball.Bounds()
	switch {
	case ball.Intersects(l.state.Player1.Bounds()):
		return l.state.Player1, PaddlePlayer1
	case ball.Intersects(l.state.Player2.Bounds()):
		return l.state.Player2, PaddlePlayer2
	default:
		return nil, PaddleNone
	}
}

// RenderState returns player 1, player 2 and the ball in draw order
func (l *GameLoop) RenderState() []Renderable {
	bodies := []*components.Body{l.state.Player1, l.state.Player2, l.state.Ball}
	out := make([]Renderable, 0, len(bodies))
	for _, b := range bodies {
		out = append(out, Renderable{Sprite: b.Sprite, Position: b.Position})
	}
	return out
}
