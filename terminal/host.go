// Package terminal runs the pong loop inside a terminal using tcell.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"ebiten-pong/config"
	"ebiten-pong/events"
	"ebiten-pong/systems"
)

// action is what a key event asks the host to do
type action int

const (
	actionNone action = iota
	actionQuit
	actionMove
)

// Host drives a GameLoop from a fixed ticker and paints it with tcell
type Host struct {
	screen tcell.Screen
	loop   *systems.GameLoop
	window systems.WindowSize
	latch  *KeyLatch
	tick   time.Duration
	logger *slog.Logger
	detach func()

	background tcell.Style
	body       tcell.Style
}

// NewHost initialises the terminal screen and creates a match from sprites
func NewHost(cfg *config.Config, sprites systems.Sprites, logger *slog.Logger) (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	window := systems.WindowSize{Width: cfg.Window.Width, Height: cfg.Window.Height}
	state := systems.NewGameState(window, sprites, cfg.Physics)
	return newHost(screen, cfg, state, logger), nil
}

// newHost wraps an initialised screen. The host takes ownership of screen
// and finalises it when Run returns.
func newHost(screen tcell.Screen, cfg *config.Config, state *systems.GameState, logger *slog.Logger) *Host {
	eventManager := events.NewManager()
	detach := systems.NewMessageLog().Attach(eventManager, logger)

	c := config.ClearColor
	bg := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))

	return &Host{
		screen:     screen,
		loop:       systems.NewGameLoop(state, cfg.Physics, eventManager),
		window:     systems.WindowSize{Width: cfg.Window.Width, Height: cfg.Window.Height},
		latch:      NewKeyLatch(cfg.Terminal.KeyHoldFrames),
		tick:       time.Second / time.Duration(cfg.Terminal.TickRate),
		logger:     logger,
		detach:     detach,
		background: tcell.StyleDefault.Background(bg),
		body:       tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(bg),
	}
}

// Run plays until somebody wins or the player quits, then restores the terminal.
// It returns Continue when the player quit before the match ended.
func (h *Host) Run() systems.FrameResult {
	defer h.detach()
	defer h.screen.Fini()

	ticker := time.NewTicker(h.tick)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case ev := <-eventChan:
			if h.handleEvent(ev) == actionQuit {
				h.logger.Info("quit requested")
				return systems.Continue
			}

		case <-ticker.C:
			if result := h.step(); result.Finished() {
				return result
			}
		}
	}
}

// step advances the match by one frame with the latched keys and repaints
func (h *Host) step() systems.FrameResult {
	result := h.loop.Advance(h.latch.Frame(), h.window)
	h.draw()
	return result
}

func (h *Host) handleEvent(ev tcell.Event) action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, key := translateKey(ev.Key(), ev.Rune())
		if act == actionMove {
			h.latch.Press(key)
		}
		return act

	case *tcell.EventResize:
		// Key repeats stall while the terminal redraws
		h.latch.Release()
		h.screen.Sync()
	}
	return actionNone
}

// translateKey maps W/S and the arrow keys to paddle keys, Esc and Ctrl+C to quit
func translateKey(key tcell.Key, r rune) (action, Key) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyUp:
		return actionMove, KeyPlayer2Up
	case tcell.KeyDown:
		return actionMove, KeyPlayer2Down
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return actionMove, KeyPlayer1Up
		case 's', 'S':
			return actionMove, KeyPlayer1Down
		}
	}
	return actionNone, 0
}

func (h *Host) draw() {
	h.screen.SetStyle(h.background)
	h.screen.Clear()

	cols, rows := h.screen.Size()
	for _, r := range LayoutCells(h.loop.RenderState(), h.window, cols, rows) {
		for y := r.Y0; y <= r.Y1; y++ {
			for x := r.X0; x <= r.X1; x++ {
				h.screen.SetContent(x, y, '█', nil, h.body)
			}
		}
	}
	h.screen.Show()
}

