package commands

import (
	"fmt"

	"github.com/battlesnakeio/placman/rules"
	"github.com/battlesnakeio/placman/strip"
	"github.com/battlesnakeio/placman/worker"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor = termbox.ColorDefault
	bgColor      = termbox.ColorDefault

	// Terminal cells per grid unit. Segments are unit diagonals, so every
	// segment takes cellsY rows of cellsX/cellsY cells each.
	cellsX = 4
	cellsY = 2
)

type cell struct {
	x, y int
	ch   rune
}

// segmentCells rasterizes a segment relative to the top left of the board.
func segmentCells(s strip.SegmentColor) []cell {
	minX, minY := s.Start.X, s.Start.Y
	if s.End.X < minX {
		minX = s.End.X
	}
	if s.End.Y < minY {
		minY = s.End.Y
	}
	// A segment going right and down at the same time is a backslash.
	back := (s.End.X-s.Start.X)*(s.End.Y-s.Start.Y) > 0
	ch := '╱'
	if back {
		ch = '╲'
	}

	step := cellsX / cellsY
	out := make([]cell, 0, cellsX)
	for row := 0; row < cellsY; row++ {
		col := (cellsY - 1 - row) * step
		if back {
			col = row * step
		}
		for i := 0; i < step; i++ {
			out = append(out, cell{
				x:  minX*cellsX + col + i,
				y:  minY*cellsY + row,
				ch: ch,
			})
		}
	}
	return out
}

// termColor picks the closest color of the xterm 256 color cube.
func termColor(c rules.RGB) termbox.Attribute {
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	// termbox numbers the 256 colors from 1.
	return termbox.Attribute(16 + 36*q(c.R) + 6*q(c.G) + q(c.B) + 1)
}

// termRenderer draws the board in the terminal, with the LED strip shown as a
// row of pixels below it.
type termRenderer struct {
	latch  *worker.Latch
	pixels *strip.Buffer
	strip  strip.Renderer
}

func (r *termRenderer) Render(f *strip.Frame) error {
	if err := r.strip.Render(f); err != nil {
		return err
	}
	if err := termbox.Clear(defaultColor, bgColor); err != nil {
		return err
	}

	left, top := 2, 2
	renderTitle(left, top, f)
	renderBoard(left, top+2, f)
	bottom := top + 2 + 7*cellsY + 1
	renderStrip(left, bottom, r.pixels)
	renderHelp(left, bottom+2, r.latch.Dial())

	return termbox.Flush()
}

func renderTitle(left, top int, f *strip.Frame) {
	tbprint(left, top, defaultColor, bgColor, fmt.Sprintf("Placman! - Turn %d - %s (%s)", f.Turn, f.Mode, f.Status))
}

func renderBoard(left, top int, f *strip.Frame) {
	for _, s := range f.Segments {
		fg := termColor(s.Color)
		for _, c := range segmentCells(s) {
			termbox.SetCell(left+c.x, top+c.y, c.ch, fg, bgColor)
		}
	}
}

func renderStrip(left, top int, pixels *strip.Buffer) {
	tbprint(left, top, defaultColor, bgColor, "strip")
	for i := 0; i < pixels.NumPixels(); i++ {
		c := termColor(pixels.Pixel(i))
		termbox.SetCell(left+6+i, top, ' ', c, c)
	}
}

func renderHelp(left, top int, d rules.Dial) {
	tbprint(left, top, defaultColor, bgColor, "←/→ steer  space toggle  [ ] speed  h/j/k/l hub  esc quit")
	tbprint(left, top+1, defaultColor, bgColor, fmt.Sprintf("wheel period %v hub (%.1f, %.1f)", d.Period, d.CenterX, d.CenterY))
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
