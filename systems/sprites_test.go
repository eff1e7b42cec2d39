package systems

import (
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ebiten-pong/config"
)

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
}

func TestLoadSpriteSizes(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "player1.png"), 16, 64)
	writePNG(t, filepath.Join(dir, "player2.png"), 12, 80)
	writePNG(t, filepath.Join(dir, "ball.png"), 16, 16)

	cfg := config.Default()
	cfg.Assets.Dir = dir

	sprites, err := LoadSpriteSizes(cfg)
	if err != nil {
		t.Fatalf("LoadSpriteSizes() error = %v", err)
	}

	tests := []struct {
		name string
		got  image.Point
		want image.Point
	}{
		{"player1", sprites.Player1.Bounds().Size(), image.Pt(16, 64)},
		{"player2", sprites.Player2.Bounds().Size(), image.Pt(12, 80)},
		{"ball", sprites.Ball.Bounds().Size(), image.Pt(16, 16)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s size = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadSpriteSizesMissingAsset(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "player1.png"), 16, 64)

	cfg := config.Default()
	cfg.Assets.Dir = dir

	if _, err := LoadSpriteSizes(cfg); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("LoadSpriteSizes() error = %v, want not-exist", err)
	}
}

func TestLoadSpriteSizeRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ball.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSpriteSize(path); err == nil {
		t.Fatal("LoadSpriteSize() error = nil, want decode error")
	}
}

