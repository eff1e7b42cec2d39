package systems

import (
	"fmt"
	"log/slog"

	"ebiten-pong/events"
)

// MessageLog stores recent game messages for the debug overlay
type MessageLog struct {
	Messages    []string
	MaxMessages int
}

// NewMessageLog creates a new message log
func NewMessageLog() *MessageLog {
	return &MessageLog{
		Messages:    []string{},
		MaxMessages: 100, // Store the last 100 messages
	}
}

// Add adds a message to the log
func (ml *MessageLog) Add(message string) {
	ml.Messages = append(ml.Messages, message)

	// Truncate if we have too many messages
	if len(ml.Messages) > ml.MaxMessages {
		ml.Messages = ml.Messages[len(ml.Messages)-ml.MaxMessages:]
	}
}

// RecentMessages gets the n most recent messages, newest first
func (ml *MessageLog) RecentMessages(n int) []string {
	if n > len(ml.Messages) {
		n = len(ml.Messages)
	}

	result := make([]string, n)
	for i := 0; i < n; i++ {
		result[i] = ml.Messages[len(ml.Messages)-1-i]
	}

	return result
}

// Clear clears all messages
func (ml *MessageLog) Clear() {
	ml.Messages = []string{}
}

// Attach records game events in the log and mirrors them to logger at debug level.
// The returned func detaches the log again.
func (ml *MessageLog) Attach(em *events.Manager, logger *slog.Logger) (detach func()) {
	subs := make([]events.Subscription, 0, 3)
	subs = append(subs, em.Subscribe(EventPaddleHit, func(e events.Event) {
		hit := e.(PaddleHitEvent)
		ml.Add(fmt.Sprintf("#%d paddle %d hit (offset %+.2f)", hit.Frame, hit.Paddle, hit.Offset))
		logger.Debug("paddle hit",
			"frame", hit.Frame,
			"paddle", int(hit.Paddle),
			"offset", hit.Offset,
			"vx", hit.Velocity.X,
			"vy", hit.Velocity.Y,
		)
	}))
	subs = append(subs, em.Subscribe(EventWallBounce, func(e events.Event) {
		bounce := e.(WallBounceEvent)
		ml.Add(fmt.Sprintf("#%d wall bounce", bounce.Frame))
		logger.Debug("wall bounce", "frame", bounce.Frame, "vy", bounce.Velocity.Y)
	}))
	subs = append(subs, em.Subscribe(EventGameOver, func(e events.Event) {
		over := e.(GameOverEvent)
		ml.Add(over.Result.Message())
		logger.Info("game over", "frame", over.Frame, "result", over.Result.String())
	}))

	return func() {
		for _, sub := range subs {
			em.Unsubscribe(sub)
		}
	}
}
