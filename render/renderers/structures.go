package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/arena"
	"github.com/lixenwraith/horde/render"
)

// TowerRenderer draws live towers and the rubble of destroyed ones
type TowerRenderer struct {
	arena *arena.Arena
}

func NewTowerRenderer(a *arena.Arena) *TowerRenderer {
	return &TowerRenderer{arena: a}
}

// Render implements SystemRenderer
func (t *TowerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bg := tcell.StyleDefault.Background(render.RgbBackground)
	towers := t.arena.Towers()
	for i := range towers {
		x, y, ok := ctx.ToScreen(towers[i].Pos)
		if !ok {
			continue
		}
		if towers[i].Alive() {
			buf.Set(x, y, glyphTower, bg.Foreground(render.RgbTower).Bold(true))
		} else {
			buf.Set(x, y, glyphRubble, bg.Foreground(render.RgbTowerDead))
		}
	}
}

// ProjectileRenderer draws shots over whatever lies beneath
type ProjectileRenderer struct {
	arena *arena.Arena
}

func NewProjectileRenderer(a *arena.Arena) *ProjectileRenderer {
	return &ProjectileRenderer{arena: a}
}

// Render implements SystemRenderer
func (p *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	shots := p.arena.Projectiles()
	for i := range shots {
		if x, y, ok := ctx.ToScreen(shots[i].Pos); ok {
			buf.SetFgOnly(x, y, glyphShot, render.RgbShot)
		}
	}
}
