// Package strip turns game states into frames and pushes them to output
// devices: an addressable LED strip, a CSV trace or anything else that
// implements Renderer.
package strip

import (
	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/rules"
)

// SegmentColor is one segment as seen by a renderer.
type SegmentColor struct {
	ID    board.SegmentID
	Start board.Point
	End   board.Point
	Hue   rules.Hue
	Color rules.RGB
}

// Frame is the color snapshot of one tick.
type Frame struct {
	Session  string
	Turn     int64
	Mode     rules.GameMode
	Status   rules.Status
	Segments []SegmentColor
}

// NewFrame builds the frame for the hues of gs.
func NewFrame(g *board.Graph, gs *rules.GameState) *Frame {
	f := &Frame{
		Session:  gs.Session,
		Turn:     gs.Turn,
		Status:   rules.StatusOf(gs),
		Segments: make([]SegmentColor, 0, g.Len()),
	}
	if gs.Mode != nil {
		f.Mode = gs.Mode.Name()
	}
	for _, s := range g.Segments() {
		h := gs.Hues[s.ID]
		f.Segments = append(f.Segments, SegmentColor{
			ID:    s.ID,
			Start: s.Start,
			End:   s.End,
			Hue:   h,
			Color: h.RGB(),
		})
	}
	return f
}

// Renderer consumes frames. It never feeds anything back into the game.
type Renderer interface {
	Render(*Frame) error
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(*Frame) error

// Render implements Renderer.
func (fn RendererFunc) Render(f *Frame) error { return fn(f) }

// Multi renders every frame to each renderer in order, stopping at the first
// error.
func Multi(renderers ...Renderer) Renderer {
	return RendererFunc(func(f *Frame) error {
		for _, r := range renderers {
			if err := r.Render(f); err != nil {
				return err
			}
		}
		return nil
	})
}
