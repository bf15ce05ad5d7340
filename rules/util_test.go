package rules

import (
	"testing"

	"github.com/battlesnakeio/placman/board"
	"github.com/stretchr/testify/require"
)

var testGraph = board.MustDefault()

// seqRand replays values in order, wrapping around, each reduced modulo n.
type seqRand struct {
	values []int
	calls  int
}

func (r *seqRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func snakeWithBody(t *testing.T, length int, heading Heading, ids ...board.SegmentID) Snake {
	s := Snake{Length: length, Heading: heading}
	for _, id := range ids {
		require.NoError(t, s.Body.Push(id))
	}
	return s
}

func newTestGame(t *testing.T, rnd Rand) GameState {
	gs, err := NewGame(testGraph, board.StartSegment, rnd)
	require.NoError(t, err)
	return gs
}

func straight() Input {
	return Input{Steer: board.SteerStraight}
}
