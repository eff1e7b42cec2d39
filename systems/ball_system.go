package systems

import (
	"ebiten-pong/components"
	"ebiten-pong/config"
)

// moveBall advances the ball by one frame of velocity
func moveBall(ball *components.Body) {
	ball.Position = ball.Position.Add(ball.Velocity)
}

// deflectBall sends the ball back from paddle, slightly faster, with spin
// depending on where it struck. Returns the normalised hit offset.
func deflectBall(ball, paddle *components.Body, physics config.Physics) float64 {
	vx := ball.Velocity.X
	ball.Velocity.X = -(vx + physics.BallAcc*components.Sign(vx))

	offset := (paddle.Centre().Y - ball.Centre().Y) / paddle.Height()
	ball.Velocity.Y += physics.PaddleSpin * -offset
	return offset
}

// bounceOffWalls flips vertical velocity when the ball touches the top or bottom
func bounceOffWalls(ball *components.Body, height float64) bool {
	if ball.Position.Y <= 0 || ball.Position.Y+ball.Height() >= height {
		ball.Velocity.Y = -ball.Velocity.Y
		return true
	}
	return false
}

// checkWinner reports a win once the ball has left the field horizontally
func checkWinner(ball *components.Body, width float64) FrameResult {
	if ball.Position.X < 0 {
		return Player2Wins
	}
	if ball.Position.X > width {
		return Player1Wins
	}
	return Continue
}
