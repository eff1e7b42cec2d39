package systems

import (
	"math"

	"ebiten-pong/components"
)

// movePaddle moves a paddle by speed and keeps it inside [0, height-paddle.Height()].
// Up is applied before down, so holding both ends on the down result.
func movePaddle(paddle *components.Body, up, down bool, speed, height float64) {
	if up {
		paddle.Position.Y = math.Max(0, paddle.Position.Y-speed)
	}
	if down {
		maxY := height - paddle.Height()
		paddle.Position.Y = math.Min(maxY, paddle.Position.Y+speed)
	}
}
