package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/horde/vmath"
)

func TestRenderContext_ToScreen(t *testing.T) {
	ctx := RenderContext{
		FieldY:      1,
		FieldWidth:  10,
		FieldHeight: 5,
		WorldMax:    vmath.V2(100, 50),
	}

	tests := []struct {
		name   string
		p      vmath.Vec2
		x, y   int
		inside bool
	}{
		{"origin", vmath.V2(0, 0), 0, 1, true},
		{"far corner", vmath.V2(100, 50), 9, 5, true},
		{"middle", vmath.V2(55, 25), 5, 3, true},
		{"left of field", vmath.V2(-1, 10), 0, 0, false},
		{"below field", vmath.V2(10, 51), 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ctx.ToScreen(tt.p)
			assert.Equal(t, tt.inside, ok)
			if tt.inside {
				assert.Equal(t, tt.x, x)
				assert.Equal(t, tt.y, y)
			}
		})
	}

	_, _, ok := RenderContext{}.ToScreen(vmath.V2(1, 1))
	assert.False(t, ok, "empty field maps nothing")
}

func TestRenderBuffer_SetAndClear(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)

	b.Set(1, 1, 'a', style)
	b.Set(4, 0, 'z', style)
	b.Set(-1, 0, 'z', style)

	assert.Equal(t, Cell{Rune: 'a', Style: style}, b.Get(1, 1))
	assert.True(t, b.Touched(1, 1))
	assert.False(t, b.Touched(0, 0))
	assert.Equal(t, Cell{}, b.Get(4, 0))

	b.Clear()
	assert.False(t, b.Touched(1, 1))
	assert.Equal(t, ' ', b.Get(1, 1).Rune)
	assert.Equal(t, b.Get(0, 0), b.Get(3, 1))
}

func TestRenderBuffer_SetFgOnlyKeepsBackground(t *testing.T) {
	b := NewRenderBuffer(2, 1)
	base := tcell.StyleDefault.Background(tcell.ColorBlue)
	b.Set(0, 0, 'x', base)
	b.SetFgOnly(0, 0, '•', tcell.ColorYellow)

	c := b.Get(0, 0)
	assert.Equal(t, '•', c.Rune)
	assert.Equal(t, base.Foreground(tcell.ColorYellow), c.Style)
}

func TestRenderBuffer_SetTextClips(t *testing.T) {
	b := NewRenderBuffer(5, 1)
	end := b.SetText(2, 0, "hello", tcell.StyleDefault)
	assert.Equal(t, 5, end)
	assert.Equal(t, 'h', b.Get(2, 0).Rune)
	assert.Equal(t, 'l', b.Get(4, 0).Rune)
}

func TestRenderBuffer_ResizeReuses(t *testing.T) {
	b := NewRenderBuffer(10, 10)
	b.Set(0, 0, 'a', tcell.StyleDefault)
	b.Resize(3, 3)
	w, h := b.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 3, h)
	assert.False(t, b.Touched(0, 0))

	b.Resize(-1, 2)
	w, h = b.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 2, h)
}

type recordRenderer struct {
	name   string
	log    *[]string
	hidden bool
	mark   rune
}

func (r *recordRenderer) Render(ctx RenderContext, buf *RenderBuffer) {
	*r.log = append(*r.log, r.name)
	if r.mark != 0 {
		buf.Set(2, ctx.FieldY, r.mark, tcell.StyleDefault)
	}
}

func (r *recordRenderer) IsVisible() bool { return !r.hidden }

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(20, 6)
	t.Cleanup(s.Fini)
	return s
}

func TestOrchestrator_PriorityOrder(t *testing.T) {
	screen := newSimScreen(t)
	o := NewRenderOrchestrator(screen, vmath.V2(0, 0), vmath.V2(100, 100))

	var calls []string
	o.Register(&recordRenderer{name: "hud", log: &calls}, PriorityUI)
	o.Register(&recordRenderer{name: "bg", log: &calls}, PriorityBackground)
	o.Register(&recordRenderer{name: "agents-a", log: &calls}, PriorityAgents)
	o.Register(&recordRenderer{name: "agents-b", log: &calls}, PriorityAgents)
	o.Register(&recordRenderer{name: "hidden", log: &calls, hidden: true}, PriorityAgents)

	o.Render()
	assert.Equal(t, []string{"bg", "agents-a", "agents-b", "hud"}, calls)
	assert.Equal(t, uint64(1), o.Frames())
}

func TestOrchestrator_FlushesToScreen(t *testing.T) {
	screen := newSimScreen(t)
	o := NewRenderOrchestrator(screen, vmath.V2(0, 0), vmath.V2(100, 100))
	var calls []string
	o.Register(&recordRenderer{name: "mark", log: &calls, mark: 'X'}, PriorityAgents)

	o.Render()
	r, _, _, _ := screen.GetContent(2, HudRows)
	assert.Equal(t, 'X', r)

	w, h := screen.Size()
	ctx := o.Context()
	assert.Equal(t, w, ctx.ScreenWidth)
	assert.Equal(t, h-HudRows, ctx.FieldHeight)
}
