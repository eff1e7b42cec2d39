package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ebiten-pong/config"
	"ebiten-pong/events"
	"ebiten-pong/systems"
)

// Game implements ebiten.Game interface.
type Game struct {
	loop         *systems.GameLoop
	renderSystem *systems.RenderSystem
	window       systems.WindowSize
	out          io.Writer // receives the winner announcement
	logger       *slog.Logger
}

// NewGame creates a new game instance from already loaded sprites
func NewGame(cfg *config.Config, sprites systems.Sprites, out io.Writer, logger *slog.Logger) *Game {
	window := systems.WindowSize{Width: cfg.Window.Width, Height: cfg.Window.Height}

	eventManager := events.NewManager()
	messageLog := systems.NewMessageLog()
	messageLog.Attach(eventManager, logger)

	state := systems.NewGameState(window, sprites, cfg.Physics)
	messageLog.Add("W/S and Up/Down to move, F1 for debug, Esc to quit")

	return &Game{
		loop:         systems.NewGameLoop(state, cfg.Physics, eventManager),
		renderSystem: systems.NewRenderSystem(messageLog),
		window:       window,
		out:          out,
		logger:       logger,
	}
}

// Update advances the match by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.renderSystem.ToggleDebugWindow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return g.escape()
	}

	input := systems.FrameInput{
		Player1Up:   ebiten.IsKeyPressed(ebiten.KeyW),
		Player1Down: ebiten.IsKeyPressed(ebiten.KeyS),
		Player2Up:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Player2Down: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
	}

	return g.step(input)
}

// escape closes the debug window if it is open, otherwise quits
func (g *Game) escape() error {
	if g.renderSystem.IsDebugWindowActive() {
		g.renderSystem.ToggleDebugWindow()
		return nil
	}
	g.logger.Info("quit requested")
	return ebiten.Termination
}

// step runs one frame of the loop and ends the game when somebody has won
func (g *Game) step(input systems.FrameInput) error {
	result := g.loop.Advance(input, g.window)
	if !result.Finished() {
		return nil
	}
	fmt.Fprintln(g.out, result.Message())
	return ebiten.Termination
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.loop.RenderState())
}

// Layout implements ebiten.Game's Layout.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.Width, g.window.Height
}
