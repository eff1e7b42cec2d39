package config

import "image/color"

// Screen layout configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 640
	WindowHeight = 400

	WindowTitle = "Pong"

	// Horizontal gap between a paddle and its side of the window
	PaddleMargin = 16
)

// ClearColor is painted behind the bodies every frame
var ClearColor = color.RGBA{100, 149, 237, 255} // Cornflower Blue

// GetWindowSize returns the default window size
func GetWindowSize() (width, height int) {
	return WindowWidth, WindowHeight
}
