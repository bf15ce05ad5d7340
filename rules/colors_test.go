package rules

import (
	"testing"

	"github.com/battlesnakeio/placman/board"
	"github.com/stretchr/testify/require"
)

func TestHueRGB(t *testing.T) {
	tests := []struct {
		Hue      Hue
		Expected RGB
	}{
		{Hue: HueRed, Expected: RGB{R: 255}},
		{Hue: 60, Expected: RGB{R: 255, G: 255}},
		{Hue: HueGreen, Expected: RGB{G: 255}},
		{Hue: 180, Expected: RGB{G: 255, B: 255}},
		{Hue: HueBlue, Expected: RGB{B: 255}},
		{Hue: 300, Expected: RGB{R: 255, B: 255}},
		{Hue: HueUnset, Expected: RGB{R: 80, G: 80, B: 80}},
		{Hue: 400, Expected: UnsetRGB},
	}

	for _, test := range tests {
		require.Equal(t, test.Expected, test.Hue.RGB(), "hue %d", test.Hue)
	}
}

func TestPaintLossFlash(t *testing.T) {
	hs := UnsetHues()

	paintLossFlash(&hs, 10)
	for _, h := range hs {
		require.Equal(t, HueRed, h)
	}

	paintLossFlash(&hs, 9)
	for _, h := range hs {
		require.Equal(t, HueUnset, h)
	}
}

func TestPaintSnake(t *testing.T) {
	s := snakeWithBody(t, 3, HeadingUpLeft, 5, 6, 7)
	hs := Hues{}

	paintSnake(&hs, &s, 20)

	require.Equal(t, HueBlue, hs[5])
	require.Equal(t, Hue(200), hs[6])
	require.Equal(t, HueGreen, hs[7])
	require.Equal(t, HueRed, hs[20])
	for id, h := range hs {
		switch id {
		case 5, 6, 7, 20:
		default:
			require.Equal(t, HueUnset, h, "segment %d", id)
		}
	}
}

func TestPaintSnakeGradient(t *testing.T) {
	for length := 1; length <= board.SegmentCount; length++ {
		ids := make([]board.SegmentID, length)
		for i := range ids {
			ids[i] = board.SegmentID(i)
		}
		s := snakeWithBody(t, length, HeadingUpRight, ids...)
		hs := Hues{}

		paintSnake(&hs, &s, board.NoSegment)

		require.Equal(t, HueGreen, hs[s.Head()], "length %d", length)
		if length > 1 {
			require.Equal(t, HueBlue, hs[0], "length %d", length)
		}
		for i := 1; i < length; i++ {
			require.True(t, hs[i] < hs[i-1], "length %d: hue %d not below %d", length, hs[i], hs[i-1])
			require.True(t, hs[i] >= HueGreen, "length %d", length)
		}
	}
}

func TestPaintSnakeWhileGrowing(t *testing.T) {
	// the body has not caught up with its target length yet
	s := snakeWithBody(t, 6, HeadingUpLeft, 4, 5)
	hs := Hues{}

	paintSnake(&hs, &s, 9)

	require.Equal(t, HueBlue, hs[4])
	require.Equal(t, HueGreen, hs[5])
	require.Equal(t, HueRed, hs[9])
}
