package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/config"
	"ebiten-pong/logger"
	"ebiten-pong/systems"
	"ebiten-pong/terminal"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run plays one game and returns the process exit code. Every exit path goes
// through the deferred log close.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("pong", flag.ContinueOnError)
	configPath := flags.String("config", "", "path to a YAML or TOML config file")
	terminalMode := flags.Bool("terminal", false, "play in the terminal instead of a window")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			slog.Error("Failed to load config", "error", err)
			return 1
		}
		cfg = loaded
	}

	output, closeLog, err := openLogOutput(cfg.Logging, *terminalMode)
	if err != nil {
		slog.Error("Failed to open log file", "error", err)
		return 1
	}
	defer closeLog()

	lg := logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: output,
	})

	if *terminalMode {
		// Run the terminal host
		sprites, err := systems.LoadSpriteSizes(cfg)
		if err != nil {
			lg.Error("Failed to load sprites", "error", err)
			return 1
		}
		host, err := terminal.NewHost(cfg, sprites, lg)
		if err != nil {
			lg.Error("Failed to initialize terminal", "error", err)
			return 1
		}
		if result := host.Run(); result.Finished() {
			fmt.Fprintln(stdout, result.Message())
		}
		return 0
	}

	// Run the windowed game
	sprites, err := systems.LoadSprites(cfg)
	if err != nil {
		lg.Error("Failed to load sprites", "error", err)
		return 1
	}
	game := NewGame(cfg, sprites, stdout, lg)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	lg.Info("Starting game", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		lg.Error("Game stopped with an error", "error", err)
		return 1
	}
	return 0
}

// openLogOutput picks where log lines go. The terminal host owns the screen,
// so without a log file its logs are dropped.
func openLogOutput(cfg config.LoggingConfig, terminalMode bool) (io.Writer, func(), error) {
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if terminalMode {
		return io.Discard, func() {}, nil
	}
	return os.Stderr, func() {}, nil
}
