package components

import "image"

// Sprite is anything with a fixed pixel size. *ebiten.Image satisfies it,
// as does any image.Image.
type Sprite interface {
	Bounds() image.Rectangle
}

// Body is a rectangular game object: a paddle or the ball.
// Its size comes from the sprite and never changes.
type Body struct {
	Sprite   Sprite
	Position Vec2
	Velocity Vec2

	width  float64
	height float64
}

// NewBody creates a body at rest
func NewBody(sprite Sprite, position Vec2) *Body {
	return NewBodyWithVelocity(sprite, position, Vec2{})
}

// NewBodyWithVelocity creates a body already moving at velocity
func NewBodyWithVelocity(sprite Sprite, position, velocity Vec2) *Body {
	size := sprite.Bounds().Size()
	return &Body{
		Sprite:   sprite,
		Position: position,
		Velocity: velocity,
		width:    float64(size.X),
		height:   float64(size.Y),
	}
}

// Width returns the body width in pixels
func (b *Body) Width() float64 {
	return b.width
}

// Height returns the body height in pixels
func (b *Body) Height() float64 {
	return b.height
}

// Bounds returns the rectangle currently covered by the body
func (b *Body) Bounds() Rect {
	return NewRect(b.Position.X, b.Position.Y, b.width, b.height)
}

// Centre returns the centre point of the body
func (b *Body) Centre() Vec2 {
	return Vec2{
		X: b.Position.X + b.width/2,
		Y: b.Position.Y + b.height/2,
	}
}
