package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/arena"
	"github.com/lixenwraith/horde/render"
)

// FieldRenderer draws the background grid, the gate and the base
type FieldRenderer struct {
	arena *arena.Arena
}

func NewFieldRenderer(a *arena.Arena) *FieldRenderer {
	return &FieldRenderer{arena: a}
}

// Render implements SystemRenderer
func (f *FieldRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bg := tcell.StyleDefault.Background(render.RgbBackground)
	grid := bg.Foreground(render.RgbGrid)
	for y := 0; y < ctx.FieldHeight; y += gridStepY {
		for x := 0; x < ctx.FieldWidth; x += gridStepX {
			buf.Set(x, ctx.FieldY+y, glyphGrid, grid)
		}
	}

	if x, y, ok := ctx.ToScreen(f.arena.Gate()); ok {
		buf.Set(x, y, glyphGate, bg.Foreground(render.RgbGate))
	}

	if x, y, ok := ctx.ToScreen(f.arena.Base()); ok {
		color := render.RgbBase
		if max := f.arena.BaseMaxHealth(); max > 0 && f.arena.BaseHealth() < max*baseLowPercent {
			color = render.RgbBaseLow
		}
		buf.Set(x, y, glyphBase, bg.Foreground(color).Bold(true))
	}
}
