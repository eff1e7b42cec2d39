package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ebiten-pong/config"
)

// Lines of the message log shown in the debug overlay
const debugMessageLines = 8

// RenderSystem paints the bodies of a GameLoop onto the screen
type RenderSystem struct {
	messageLog   *MessageLog
	clearColor   color.Color
	debugVisible bool
}

// NewRenderSystem creates a render system. messageLog may be nil.
func NewRenderSystem(messageLog *MessageLog) *RenderSystem {
	return &RenderSystem{
		messageLog: messageLog,
		clearColor: config.ClearColor,
	}
}

// ToggleDebugWindow shows or hides the debug overlay
func (s *RenderSystem) ToggleDebugWindow() {
	s.debugVisible = !s.debugVisible
}

// IsDebugWindowActive reports whether the debug overlay is shown
func (s *RenderSystem) IsDebugWindowActive() bool {
	return s.debugVisible
}

// Draw clears the screen and draws every renderable at its position
func (s *RenderSystem) Draw(screen *ebiten.Image, renderables []Renderable) {
	screen.Fill(s.clearColor)

	for _, r := range renderables {
		if img, ok := r.Sprite.(*ebiten.Image); ok {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(r.Position.X, r.Position.Y)
			screen.DrawImage(img, op)
			continue
		}

		// Sprites without pixels are drawn as white boxes
		size := r.Sprite.Bounds().Size()
		vector.DrawFilledRect(screen,
			float32(r.Position.X), float32(r.Position.Y),
			float32(size.X), float32(size.Y),
			color.White, false)
	}

	if s.debugVisible {
		s.drawDebugWindow(screen)
	}
}

func (s *RenderSystem) drawDebugWindow(screen *ebiten.Image) {
	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	if s.messageLog != nil {
		for _, msg := range s.messageLog.RecentMessages(debugMessageLines) {
			b.WriteString(msg)
			b.WriteByte('\n')
		}
	}
	ebitenutil.DebugPrint(screen, b.String())
}
