package rules

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDialPhase(t *testing.T) {
	d := Dial{Period: 4 * time.Second}

	require.Equal(t, 0.0, d.Phase(0))
	require.Equal(t, 90.0, d.Phase(time.Second))
	require.Equal(t, 180.0, d.Phase(2*time.Second))
	require.Equal(t, 0.0, d.Phase(4*time.Second))
	require.Equal(t, 90.0, d.Phase(5*time.Second))

	stopped := Dial{}
	require.Equal(t, 0.0, stopped.Phase(time.Minute))
}

func TestWheelHue(t *testing.T) {
	d := Dial{Period: time.Second, CenterX: 3, CenterY: 3}

	tests := []struct {
		X, Y     float64
		Phase    float64
		Expected Hue
	}{
		{X: 4, Y: 3, Expected: 0},
		{X: 3, Y: 2, Expected: 90},
		{X: 2, Y: 3, Expected: 180},
		{X: 3, Y: 4, Expected: 270},
		{X: 4, Y: 3, Phase: 90, Expected: 90},
		{X: 3, Y: 4, Phase: 90, Expected: 0},
		{X: 2, Y: 3, Phase: 270, Expected: 90},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, d.WheelHue(test.X, test.Y, test.Phase),
			"(%v, %v) phase %v", test.X, test.Y, test.Phase)
	}
}

func TestPaintRainbow(t *testing.T) {
	d := DefaultDial()
	hs := UnsetHues()

	paintRainbow(&hs, testGraph, d, 0)
	for id, h := range hs {
		require.True(t, h >= 0 && h < 360, "segment %d hue %d", id, h)
	}

	// segment 10 runs from (1,5) to (0,4), down and left of the hub
	require.True(t, hs[10] > 180 && hs[10] < 270, "hue %d", hs[10])

	// a quarter turn later every hue has moved on by 90 degrees
	turned := UnsetHues()
	paintRainbow(&turned, testGraph, d, d.Period/4)
	for _, s := range testGraph.Segments() {
		x, y := s.Midpoint()
		require.Equal(t, d.WheelHue(x, y, 90), turned[s.ID], "segment %d", s.ID)

		diff := (turned[s.ID] - hs[s.ID] + 360) % 360
		require.True(t, diff >= 89 && diff <= 91, "segment %d moved %d degrees", s.ID, diff)
	}
}

func TestShouldSampleDial(t *testing.T) {
	require.True(t, ShouldSampleDial(0))
	require.False(t, ShouldSampleDial(1))
	require.False(t, ShouldSampleDial(19))
	require.True(t, ShouldSampleDial(20))
	require.True(t, ShouldSampleDial(40))
}
