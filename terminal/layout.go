package terminal

import (
	"math"

	"ebiten-pong/systems"
)

// CellRect is a block of terminal cells, inclusive on both ends
type CellRect struct {
	X0, Y0 int
	X1, Y1 int
}

// Empty reports whether the block covers no cell
func (r CellRect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// cellSpan maps the pixel range [pos, pos+size) onto cells of cellSize pixels
// and clips it to [0, limit).
func cellSpan(pos, size, cellSize float64, limit int) (int, int) {
	from := int(math.Floor(pos / cellSize))
	to := int(math.Ceil((pos+size)/cellSize)) - 1
	if to < from {
		to = from
	}
	if from < 0 {
		from = 0
	}
	if to > limit-1 {
		to = limit - 1
	}
	return from, to
}

// LayoutCells scales every renderable from window pixels onto a cols×rows grid.
// Bodies partly off the field are clipped; bodies fully off it come back Empty.
func LayoutCells(renderables []systems.Renderable, window systems.WindowSize, cols, rows int) []CellRect {
	out := make([]CellRect, 0, len(renderables))
	if cols <= 0 || rows <= 0 || window.Width <= 0 || window.Height <= 0 {
		return out
	}

	cellW := float64(window.Width) / float64(cols)
	cellH := float64(window.Height) / float64(rows)
	for _, r := range renderables {
		size := r.Sprite.Bounds().Size()
		x0, x1 := cellSpan(r.Position.X, float64(size.X), cellW, cols)
		y0, y1 := cellSpan(r.Position.Y, float64(size.Y), cellH, rows)
		out = append(out, CellRect{X0: x0, Y0: y0, X1: x1, Y1: y1})
	}
	return out
}
