package render

import "github.com/gdamore/tcell/v2"

// Cell is one buffered screen position
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// RenderBuffer is a frame compositor with dirty tracking, flushed to a tcell screen once per frame
type RenderBuffer struct {
	cells   []Cell
	touched []bool
	width   int
	height  int
}

// NewRenderBuffer creates a buffer with the specified dimensions
func NewRenderBuffer(width, height int) *RenderBuffer {
	b := &RenderBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *RenderBuffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
		b.touched = make([]bool, size)
	} else {
		b.cells = b.cells[:size]
		b.touched = b.touched[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

func (b *RenderBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *RenderBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: tcell.StyleDefault.Background(RgbBackground)}
	b.touched[0] = false
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
	for filled := 1; filled < len(b.touched); filled *= 2 {
		copy(b.touched[filled:], b.touched[:filled])
	}
}

func (b *RenderBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes an opaque cell
func (b *RenderBuffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	b.cells[idx] = Cell{Rune: r, Style: style}
	b.touched[idx] = true
}

// SetFgOnly writes rune and foreground while keeping the existing background
func (b *RenderBuffer) SetFgOnly(x, y int, r rune, fg tcell.Color) {
	if !b.inBounds(x, y) {
		return
	}
	idx := y*b.width + x
	dst := &b.cells[idx]
	dst.Rune = r
	dst.Style = dst.Style.Foreground(fg)
	b.touched[idx] = true
}

// SetText writes s from x and returns the column after the last rune, clipped at the right edge
func (b *RenderBuffer) SetText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= b.width {
			break
		}
		b.Set(x, y, r, style)
		x++
	}
	return x
}

// Get returns the buffered cell, zero Cell outside bounds
func (b *RenderBuffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// Touched reports whether anything was drawn at x,y since Clear
func (b *RenderBuffer) Touched(x, y int) bool {
	return b.inBounds(x, y) && b.touched[y*b.width+x]
}

// Flush writes the buffer to the screen, the caller shows it
func (b *RenderBuffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
}
