package render

import "github.com/lixenwraith/horde/vmath"

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Field area below the status strip
	FieldY      int
	FieldWidth  int
	FieldHeight int

	// World bounds mapped onto the field
	WorldMin vmath.Vec2
	WorldMax vmath.Vec2
}

// ToScreen maps a world position onto a field cell, ok is false outside the field
func (c RenderContext) ToScreen(p vmath.Vec2) (x, y int, ok bool) {
	w := c.WorldMax.X - c.WorldMin.X
	h := c.WorldMax.Y - c.WorldMin.Y
	if w <= 0 || h <= 0 || c.FieldWidth <= 0 || c.FieldHeight <= 0 {
		return 0, 0, false
	}
	fx := (p.X - c.WorldMin.X) / w
	fy := (p.Y - c.WorldMin.Y) / h
	if fx < 0 || fx > 1 || fy < 0 || fy > 1 {
		return 0, 0, false
	}
	x = int(fx * float64(c.FieldWidth))
	y = int(fy * float64(c.FieldHeight))
	// Far edge belongs to the last cell
	if x == c.FieldWidth {
		x--
	}
	if y == c.FieldHeight {
		y--
	}
	return x, c.FieldY + y, true
}
