package systems

import (
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"ebiten-pong/components"
	"ebiten-pong/config"
)

// LoadSprite decodes an image file into an ebiten image
func LoadSprite(filename string) (*ebiten.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("load sprite: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", filename, err)
	}

	return ebiten.NewImageFromImage(img), nil
}

// LoadSprites loads the paddle and ball images named in cfg
func LoadSprites(cfg *config.Config) (Sprites, error) {
	return loadSprites(cfg, func(path string) (components.Sprite, error) {
		return LoadSprite(path)
	})
}

// LoadSpriteSize reads only the image header of filename. The returned
// rectangle stands in for the sprite where no pixels are drawn.
func LoadSpriteSize(filename string) (image.Rectangle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("load sprite: %w", err)
	}
	defer file.Close()

	cfg, _, err := image.DecodeConfig(file)
	if err != nil {
		return image.Rectangle{}, fmt.Errorf("decode sprite %s: %w", filename, err)
	}
	return image.Rect(0, 0, cfg.Width, cfg.Height), nil
}

// LoadSpriteSizes reads the sizes of the images named in cfg
func LoadSpriteSizes(cfg *config.Config) (Sprites, error) {
	return loadSprites(cfg, func(path string) (components.Sprite, error) {
		return LoadSpriteSize(path)
	})
}

func loadSprites(cfg *config.Config, load func(string) (components.Sprite, error)) (Sprites, error) {
	var sprites Sprites
	targets := []struct {
		name string
		dst  *components.Sprite
	}{
		{cfg.Assets.Player1, &sprites.Player1},
		{cfg.Assets.Player2, &sprites.Player2},
		{cfg.Assets.Ball, &sprites.Ball},
	}
	for _, t := range targets {
		img, err := load(cfg.AssetPath(t.name))
		if err != nil {
			return Sprites{}, err
		}
		*t.dst = img
	}
	return sprites, nil
}
