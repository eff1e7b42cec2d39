package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/config"
)

// Sprites holds the three images the bodies are sized from
type Sprites struct {
	Player1 components.Sprite
	Player2 components.Sprite
	Ball    components.Sprite
}

// GameState owns the three bodies of a match
type GameState struct {
	Player1 *components.Body // left paddle
	Player2 *components.Body // right paddle
	Ball    *components.Body
}

// NewGameState places both paddles at the vertical centre of their side and
// serves the ball from the middle of the window towards player 1.
func NewGameState(window WindowSize, sprites Sprites, physics config.Physics) *GameState {
	w, h := window.Width, window.Height

	p1 := sprites.Player1.Bounds().Size()
	player1Position := components.NewVec2(
		config.PaddleMargin,
		float64(h-p1.Y)/2,
	)

	p2 := sprites.Player2.Bounds().Size()
	player2Position := components.NewVec2(
		float64(w-config.PaddleMargin-p2.X),
		float64(h-p2.Y)/2,
	)

	b := sprites.Ball.Bounds().Size()
	ballPosition := components.NewVec2(
		float64(w)/2-float64(b.X)/2,
		float64(h)/2-float64(b.Y)/2,
	)
	ballVelocity := components.NewVec2(-physics.BallSpeed, 0)

	return &GameState{
		Player1: components.NewBody(sprites.Player1, player1Position),
		Player2: components.NewBody(sprites.Player2, player2Position),
		Ball:    components.NewBodyWithVelocity(sprites.Ball, ballPosition, ballVelocity),
	}
}
