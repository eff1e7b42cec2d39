package terminal

import (
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/components"
	"ebiten-pong/config"
	"ebiten-pong/systems"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(80, 25)
	return screen
}

func newTestHost(t *testing.T, screen tcell.Screen, cfg *config.Config) (*Host, *systems.GameState) {
	t.Helper()
	window := systems.WindowSize{Width: cfg.Window.Width, Height: cfg.Window.Height}
	sprites := systems.Sprites{
		Player1: image.NewRGBA(image.Rect(0, 0, 16, 64)),
		Player2: image.NewRGBA(image.Rect(0, 0, 16, 64)),
		Ball:    image.NewRGBA(image.Rect(0, 0, 16, 16)),
	}
	state := systems.NewGameState(window, sprites, cfg.Physics)
	lg := slog.New(slog.NewTextHandler(io.Discard, nil))
	return newHost(screen, cfg, state, lg), state
}

// nextKey polls the screen until a key event arrives, feeding everything to the host
func nextKey(t *testing.T, h *Host, screen tcell.Screen) action {
	t.Helper()
	for i := 0; i < 10; i++ {
		ev := screen.PollEvent()
		if ev == nil {
			t.Fatal("screen closed while waiting for a key")
		}
		act := h.handleEvent(ev)
		if _, ok := ev.(*tcell.EventKey); ok {
			return act
		}
	}
	t.Fatal("no key event received")
	return actionNone
}

func runWithTimeout(t *testing.T, h *Host) systems.FrameResult {
	t.Helper()
	done := make(chan systems.FrameResult, 1)
	go func() { done <- h.Run() }()
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return")
		return systems.Continue
	}
}

func TestHostQuitsOnEscape(t *testing.T) {
	screen := newTestScreen(t)
	h, _ := newTestHost(t, screen, config.Default())

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	if got := runWithTimeout(t, h); got != systems.Continue {
		t.Fatalf("Run() = %v, want %v", got, systems.Continue)
	}
}

func TestHostLatchedKeyMovesPaddle(t *testing.T) {
	screen := newTestScreen(t)
	t.Cleanup(screen.Fini)
	cfg := config.Default()
	cfg.Terminal.KeyHoldFrames = 3
	h, state := newTestHost(t, screen, cfg)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)
	if act := nextKey(t, h, screen); act != actionMove {
		t.Fatalf("action = %v, want move", act)
	}

	start := state.Player1.Position.Y
	other := state.Player2.Position.Y
	for i := 0; i < 5; i++ {
		h.step()
	}

	// Three latched frames at 8 pixels each, then the key counts as released
	if got, want := state.Player1.Position.Y, start-3*cfg.Physics.PaddleSpeed; got != want {
		t.Fatalf("player1.y = %v, want %v", got, want)
	}
	if state.Player2.Position.Y != other {
		t.Fatalf("player2 moved to %v", state.Player2.Position.Y)
	}
}

func TestHostResizeReleasesKeys(t *testing.T) {
	screen := newTestScreen(t)
	t.Cleanup(screen.Fini)
	h, state := newTestHost(t, screen, config.Default())

	screen.InjectKey(tcell.KeyDown, 0, tcell.ModNone)
	if act := nextKey(t, h, screen); act != actionMove {
		t.Fatalf("action = %v, want move", act)
	}
	h.handleEvent(tcell.NewEventResize(100, 30))

	start := state.Player2.Position.Y
	h.step()
	if state.Player2.Position.Y != start {
		t.Fatalf("player2.y = %v after resize, want %v", state.Player2.Position.Y, start)
	}
}

func TestHostServeEndsWithPlayer2Win(t *testing.T) {
	screen := newTestScreen(t)
	cfg := config.Default()
	cfg.Terminal.TickRate = 1000
	h, state := newTestHost(t, screen, cfg)

	// Player 1 stands at the top and the serve goes past
	state.Player1.Position = components.Vec2{X: state.Player1.Position.X, Y: 0}

	if got := runWithTimeout(t, h); got != systems.Player2Wins {
		t.Fatalf("Run() = %v, want %v", got, systems.Player2Wins)
	}
	if state.Ball.Position.X >= 0 {
		t.Fatalf("ball.x = %v, want past the left edge", state.Ball.Position.X)
	}
}
