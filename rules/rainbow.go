package rules

import (
	"math"
	"time"

	"github.com/battlesnakeio/placman/board"
)

// DialPollTicks is how often, in turns, the rainbow dials are sampled.
const DialPollTicks = 20

// Dial holds the rainbow wheel controls.
type Dial struct {
	// Period is the time for one full revolution of the wheel.
	Period time.Duration
	// CenterX and CenterY locate the hub of the wheel in grid units.
	CenterX float64
	CenterY float64
}

// DefaultDial spins the wheel around the middle of the board every four
// seconds.
func DefaultDial() Dial {
	return Dial{Period: 4 * time.Second, CenterX: 3, CenterY: 3}
}

// ShouldSampleDial reports whether the dials should be read before the tick
// that follows turn.
func ShouldSampleDial(turn int64) bool {
	return turn%DialPollTicks == 0
}

// Phase returns how far, in degrees, the wheel has turned after elapsed.
func (d Dial) Phase(elapsed time.Duration) float64 {
	if d.Period <= 0 || elapsed <= 0 {
		return 0
	}
	return 360 * float64(elapsed%d.Period) / float64(d.Period)
}

// WheelHue returns the hue of a point at (x, y) for the given phase. The angle
// is measured from the hub, 0 pointing right and increasing counter-clockwise
// as seen on screen.
func (d Dial) WheelHue(x, y, phase float64) Hue {
	angle := math.Atan2(d.CenterY-y, x-d.CenterX) * 180 / math.Pi
	if angle < 0 {
		angle += 360
	}
	h := int(math.Floor(angle+phase)) % 360
	if h < 0 {
		h += 360
	}
	return Hue(h)
}

func paintRainbow(hs *Hues, g *board.Graph, d Dial, elapsed time.Duration) {
	phase := d.Phase(elapsed)
	for _, s := range g.Segments() {
		x, y := s.Midpoint()
		hs[s.ID] = d.WheelHue(x, y, phase)
	}
}
