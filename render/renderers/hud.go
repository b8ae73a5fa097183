package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/render"
	"github.com/lixenwraith/horde/status"
)

// HudRenderer draws the metric strip across the top row
type HudRenderer struct {
	stats *status.Registry
	keys  map[string]struct{}
}

// NewHudRenderer shows only the given metric keys, all metrics when none are given
func NewHudRenderer(stats *status.Registry, keys ...string) *HudRenderer {
	h := &HudRenderer{stats: stats}
	if len(keys) > 0 {
		h.keys = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			h.keys[k] = struct{}{}
		}
	}
	return h
}

// Render implements SystemRenderer
func (h *HudRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	style := tcell.StyleDefault.Background(render.RgbHudBg).Foreground(render.RgbHudFg)
	alert := style.Foreground(render.RgbHudAlert).Bold(true)
	for x := 0; x < ctx.ScreenWidth; x++ {
		buf.Set(x, 0, ' ', style)
	}

	degraded := false
	if lvl, ok := h.stats.Ints.Lookup("loop.level"); ok && lvl.Load() > 0 {
		degraded = true
	}

	x := 1
	h.stats.Each(func(key, value string) {
		if h.keys != nil {
			if _, ok := h.keys[key]; !ok {
				return
			}
		}
		s := style
		if (key == "loop.level" && degraded) || (key == "loop.state" && (value == "paused" || value == "ended")) {
			s = alert
		}
		x = buf.SetText(x, 0, key+" ", style)
		x = buf.SetText(x, 0, value, s)
		x += 2
	})
}
