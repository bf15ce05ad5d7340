package rules

import (
	"github.com/battlesnakeio/placman/board"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Hue is an angle on the color wheel in degrees, [0, 360), or HueUnset.
type Hue int

const (
	// HueUnset marks a segment that is not lit by the current policy.
	HueUnset Hue = -1
	// HueRed colors the cherry and the loss flash.
	HueRed Hue = 0
	// HueGreen is the head of the snake.
	HueGreen Hue = 120
	// HueBlue is the tail end of the snake gradient.
	HueBlue Hue = 240
)

// Valid reports whether h is displayable or the unset sentinel.
func (h Hue) Valid() bool {
	return h == HueUnset || (h >= 0 && h < 360)
}

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// UnsetRGB is the dim gray shown for unlit segments.
var UnsetRGB = RGB{R: 80, G: 80, B: 80}

// RGB converts the hue at full saturation and value.
func (h Hue) RGB() RGB {
	if h == HueUnset || !h.Valid() {
		return UnsetRGB
	}
	r, g, b := colorful.Hsv(float64(h), 1, 1).RGB255()
	return RGB{R: r, G: g, B: b}
}

// Hues holds one hue per segment.
type Hues [board.SegmentCount]Hue

// Fill sets every segment to h.
func (hs *Hues) Fill(h Hue) {
	for i := range hs {
		hs[i] = h
	}
}

// UnsetHues returns a snapshot with every segment unlit.
func UnsetHues() Hues {
	var hs Hues
	hs.Fill(HueUnset)
	return hs
}

// paintLossFlash blinks the whole board: red on even counts, dark on odd.
func paintLossFlash(hs *Hues, loss int) {
	if loss%2 == 0 {
		hs.Fill(HueRed)
		return
	}
	hs.Fill(HueUnset)
}

// paintSnake draws the cherry and a blue-to-green gradient along the body.
// The head is always exactly green.
func paintSnake(hs *Hues, snake *Snake, cherry board.SegmentID) {
	hs.Fill(HueUnset)
	if cherry != board.NoSegment {
		hs[cherry] = HueRed
	}

	length := snake.Length
	if length < 1 {
		length = 1
	}
	step := (HueBlue - HueGreen) / Hue(length)
	hue := HueBlue
	for i := 0; i < snake.Body.Len(); i++ {
		hs[snake.Body.At(i)] = hue
		hue -= step
	}
	if head := snake.Head(); head != board.NoSegment {
		hs[head] = HueGreen
	}
}
