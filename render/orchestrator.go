package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/horde/vmath"
)

// HudRows is the height of the status strip at the top
const HudRows = 1

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline and implements engine.Renderer
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int

	worldMin vmath.Vec2
	worldMax vmath.Vec2
	frames   uint64
}

// NewRenderOrchestrator creates an orchestrator drawing world bounds onto the whole screen
func NewRenderOrchestrator(screen tcell.Screen, worldMin, worldMax vmath.Vec2) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
		worldMin:  worldMin,
		worldMax:  worldMax,
	}
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Context derives the frame context from the current buffer size
func (o *RenderOrchestrator) Context() RenderContext {
	w, h := o.buffer.Size()
	fieldH := h - HudRows
	if fieldH < 0 {
		fieldH = 0
	}
	return RenderContext{
		ScreenWidth:  w,
		ScreenHeight: h,
		FieldY:       HudRows,
		FieldWidth:   w,
		FieldHeight:  fieldH,
		WorldMin:     o.worldMin,
		WorldMax:     o.worldMax,
	}
}

// Frames is the number of frames drawn so far
func (o *RenderOrchestrator) Frames() uint64 {
	return o.frames
}

// Render executes the pipeline: resize, clear, render all, flush, show
func (o *RenderOrchestrator) Render() {
	w, h := o.screen.Size()
	if bw, bh := o.buffer.Size(); bw != w || bh != h {
		o.buffer.Resize(w, h)
		o.screen.Sync()
	}

	o.buffer.Clear()
	ctx := o.Context()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.Flush(o.screen)
	o.screen.Show()
	o.frames++
}
