package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/engine"
	"github.com/lixenwraith/horde/render"
)

// AgentRenderer draws every monster by kind, suspended ones dimmed
type AgentRenderer struct {
	world *engine.World
}

func NewAgentRenderer(w *engine.World) *AgentRenderer {
	return &AgentRenderer{world: w}
}

// Render implements SystemRenderer
func (a *AgentRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	bg := tcell.StyleDefault.Background(render.RgbBackground)
	for _, ag := range a.world.Agents() {
		x, y, ok := ctx.ToScreen(ag.Pos)
		if !ok {
			continue
		}
		g := glyphFor(ag.Kind)
		style := bg.Foreground(g.color)
		if ag.Suspended {
			style = style.Dim(true)
		}
		buf.Set(x, y, g.r, style)
	}
}
