// Package board holds the fixed playfield: 32 line segments laid out as a
// diamond/zigzag tiling and the hand-authored neighbor tables that connect
// them. A Graph is built once and never mutated afterwards.
package board

import (
	"github.com/pkg/errors"
)

// SegmentCount is the number of segments on the board.
const SegmentCount = 32

// StartSegment is where the snake spawns after every reset.
const StartSegment SegmentID = 4

// Line describes the geometry of one segment.
type Line struct {
	ID    SegmentID
	Start Point
	End   Point
}

// Wiring lists the neighbors of a segment for both table sides, indexed by
// steering command.
type Wiring struct {
	ID    SegmentID
	Left  [3]SegmentID
	Right [3]SegmentID
}

// Graph is the immutable segment arena.
type Graph struct {
	segments [SegmentCount]Segment
}

// New builds a graph from geometry and wiring and validates it. Every segment
// must be described exactly once in both tables.
func New(lines []Line, wiring []Wiring) (*Graph, error) {
	if len(lines) != SegmentCount {
		return nil, errors.Errorf("board: expected %d lines, got %d", SegmentCount, len(lines))
	}
	if len(wiring) != SegmentCount {
		return nil, errors.Errorf("board: expected %d wirings, got %d", SegmentCount, len(wiring))
	}

	g := &Graph{}
	var seen, wired [SegmentCount]bool
	for _, l := range lines {
		if !inRange(l.ID) {
			return nil, errors.Errorf("board: line id %d out of range", l.ID)
		}
		if seen[l.ID] {
			return nil, errors.Errorf("board: duplicate line %d", l.ID)
		}
		seen[l.ID] = true
		g.segments[l.ID] = Segment{ID: l.ID, Start: l.Start, End: l.End}
	}
	for _, w := range wiring {
		if !inRange(w.ID) {
			return nil, errors.Errorf("board: wiring id %d out of range", w.ID)
		}
		if wired[w.ID] {
			return nil, errors.Errorf("board: duplicate wiring for segment %d", w.ID)
		}
		wired[w.ID] = true
		g.segments[w.ID].left = w.Left
		g.segments[w.ID].right = w.Right
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Validate checks that every neighbor reference points at a real segment that
// shares an endpoint with its origin.
func (g *Graph) Validate() error {
	for i := range g.segments {
		s := &g.segments[i]
		for _, side := range []Side{SideLeft, SideRight} {
			for steer := SteerLeft; steer <= SteerRight; steer++ {
				n := s.Neighbor(side, steer)
				if !inRange(n) {
					return errors.Errorf("board: segment %d has no %s neighbor on side %d", s.ID, steer, side)
				}
				if n == s.ID {
					return errors.Errorf("board: segment %d is its own %s neighbor", s.ID, steer)
				}
				if !s.Touches(&g.segments[n]) {
					return errors.Errorf("board: segment %d and its %s neighbor %d are not connected", s.ID, steer, n)
				}
			}
		}
	}
	return nil
}

// Len returns the number of segments.
func (g *Graph) Len() int {
	return len(g.segments)
}

// Segment returns the segment with the given id. It panics on an id outside
// the board, which can only come from a programming error.
func (g *Graph) Segment(id SegmentID) *Segment {
	return &g.segments[id]
}

// Segments returns all segments in id order.
func (g *Graph) Segments() []*Segment {
	out := make([]*Segment, len(g.segments))
	for i := range g.segments {
		out[i] = &g.segments[i]
	}
	return out
}

// Next looks up the segment reached from id.
func (g *Graph) Next(id SegmentID, side Side, steer Steer) SegmentID {
	return g.segments[id].Neighbor(side, steer)
}

// SameLeftX reports whether a and b share their leftmost x, which happens when
// the path between them turns a corner on the horizontal axis.
func (g *Graph) SameLeftX(a, b SegmentID) bool {
	return g.segments[a].LeftX() == g.segments[b].LeftX()
}

// SameTopY is the vertical counterpart of SameLeftX.
func (g *Graph) SameTopY(a, b SegmentID) bool {
	return g.segments[a].TopY() == g.segments[b].TopY()
}

// Bounds returns the bottom-right corner of the board's bounding box. The
// top-left corner is the origin.
func (g *Graph) Bounds() Point {
	var max Point
	for i := range g.segments {
		for _, p := range []Point{g.segments[i].Start, g.segments[i].End} {
			if p.X > max.X {
				max.X = p.X
			}
			if p.Y > max.Y {
				max.Y = p.Y
			}
		}
	}
	return max
}

// Default builds the hand-authored board.
func Default() (*Graph, error) {
	return New(defaultLines, defaultWiring)
}

// MustDefault is Default for package initialization and tests.
func MustDefault() *Graph {
	g, err := Default()
	if err != nil {
		panic(err)
	}
	return g
}

func inRange(id SegmentID) bool {
	return id >= 0 && id < SegmentCount
}
