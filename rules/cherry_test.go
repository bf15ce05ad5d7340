package rules

import (
	"math/rand"
	"testing"

	"github.com/battlesnakeio/placman/board"
	"github.com/stretchr/testify/require"
)

func TestSpawnCherrySkipsBody(t *testing.T) {
	s := snakeWithBody(t, 3, HeadingUpRight, 1, 2, 3)
	rnd := &seqRand{values: []int{2, 3, 1, 17}}

	id, err := SpawnCherry(rnd, board.SegmentCount, &s)
	require.NoError(t, err)
	require.Equal(t, board.SegmentID(17), id)
	require.Equal(t, 4, rnd.calls)
}

func TestSpawnCherryFallsBackToFreeSegments(t *testing.T) {
	ids := []board.SegmentID{}
	for i := 0; i < board.SegmentCount; i++ {
		if i != 12 {
			ids = append(ids, board.SegmentID(i))
		}
	}
	s := snakeWithBody(t, board.SegmentCount, HeadingUpRight, ids...)

	// every random draw lands on the body
	rnd := &seqRand{values: []int{0}}
	id, err := SpawnCherry(rnd, board.SegmentCount, &s)
	require.NoError(t, err)
	require.Equal(t, board.SegmentID(12), id)
	require.Equal(t, CherryDrawLimit+1, rnd.calls)
}

func TestSpawnCherryBoardFull(t *testing.T) {
	ids := []board.SegmentID{}
	for i := 0; i < board.SegmentCount; i++ {
		ids = append(ids, board.SegmentID(i))
	}
	s := snakeWithBody(t, board.SegmentCount, HeadingUpRight, ids...)

	id, err := SpawnCherry(&seqRand{values: []int{5}}, board.SegmentCount, &s)
	require.Equal(t, ErrBoardFull, err)
	require.Equal(t, board.NoSegment, id)
}

func TestSpawnCherryNeverInsideSnake(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	s := snakeWithBody(t, 20, HeadingUpRight)
	for i := 0; i < 20; i++ {
		require.NoError(t, s.Body.Push(board.SegmentID(i)))
	}

	for i := 0; i < 200; i++ {
		id, err := SpawnCherry(rnd, board.SegmentCount, &s)
		require.NoError(t, err)
		require.False(t, s.Contains(id), "cherry %d inside snake", id)
	}
}
