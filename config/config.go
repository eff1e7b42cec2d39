package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Physics holds the per-frame tuning of the simulation
type Physics struct {
	// Pixels a paddle moves per frame
	PaddleSpeed float64 `yaml:"paddle_speed" toml:"paddle_speed"`

	// Initial horizontal ball speed
	BallSpeed float64 `yaml:"ball_speed" toml:"ball_speed"`

	// Vertical kick per unit of hit offset
	PaddleSpin float64 `yaml:"paddle_spin" toml:"paddle_spin"`

	// Horizontal speed gained on every paddle hit
	BallAcc float64 `yaml:"ball_acc" toml:"ball_acc"`
}

type WindowConfig struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Title      string `yaml:"title" toml:"title"`
	Fullscreen bool   `yaml:"fullscreen" toml:"fullscreen"`
}

type AssetsConfig struct {
	Dir     string `yaml:"dir" toml:"dir"`
	Player1 string `yaml:"player1" toml:"player1"`
	Player2 string `yaml:"player2" toml:"player2"`
	Ball    string `yaml:"ball" toml:"ball"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

type TerminalConfig struct {
	// Frames a key counts as held after a press; terminals report no releases.
	KeyHoldFrames int `yaml:"key_hold_frames" toml:"key_hold_frames"`

	TickRate int `yaml:"tick_rate" toml:"tick_rate"`
}

type Config struct {
	Window   WindowConfig   `yaml:"window" toml:"window"`
	Physics  Physics        `yaml:"physics" toml:"physics"`
	Assets   AssetsConfig   `yaml:"assets" toml:"assets"`
	Logging  LoggingConfig  `yaml:"logging" toml:"logging"`
	Terminal TerminalConfig `yaml:"terminal" toml:"terminal"`
}

// DefaultPhysics returns the classic tuning
func DefaultPhysics() Physics {
	return Physics{
		PaddleSpeed: 8.0,
		BallSpeed:   5.0,
		PaddleSpin:  4.0,
		BallAcc:     0.05,
	}
}

// Default returns the configuration used when no file is given
func Default() *Config {
	width, height := GetWindowSize()
	return &Config{
		Window: WindowConfig{
			Width:  width,
			Height: height,
			Title:  WindowTitle,
		},
		Physics: DefaultPhysics(),
		Assets: AssetsConfig{
			Dir:     "resources",
			Player1: "player1.png",
			Player2: "player2.png",
			Ball:    "ball.png",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Terminal: TerminalConfig{
			KeyHoldFrames: 6,
			TickRate:      60,
		},
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file on top of the defaults.
// Keys absent from the file keep their default value.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q", path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the game cannot run with
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Physics.PaddleSpeed < 0 {
		errs = append(errs, errors.New("physics.paddle_speed must not be negative"))
	}
	if c.Physics.BallSpeed < 0 {
		errs = append(errs, errors.New("physics.ball_speed must not be negative"))
	}
	if c.Physics.BallAcc < 0 {
		errs = append(errs, errors.New("physics.ball_acc must not be negative"))
	}
	if c.Terminal.KeyHoldFrames < 1 {
		errs = append(errs, errors.New("terminal.key_hold_frames must be at least 1"))
	}
	if c.Terminal.TickRate < 1 {
		errs = append(errs, errors.New("terminal.tick_rate must be at least 1"))
	}
	return errors.Join(errs...)
}

// AssetPath joins the asset directory with a file name
func (c *Config) AssetPath(name string) string {
	return filepath.Join(c.Assets.Dir, name)
}
