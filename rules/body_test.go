package rules

import (
	"testing"

	"github.com/battlesnakeio/placman/board"
	"github.com/stretchr/testify/require"
)

func TestBodyFIFO(t *testing.T) {
	b := Body{}
	require.Equal(t, 0, b.Len())

	for _, id := range []board.SegmentID{3, 7, 9} {
		require.NoError(t, b.Push(id))
	}
	require.Equal(t, 3, b.Len())
	require.Equal(t, []board.SegmentID{3, 7, 9}, b.Segments())

	head, err := b.Head()
	require.NoError(t, err)
	require.Equal(t, board.SegmentID(9), head)

	tail, err := b.Tail()
	require.NoError(t, err)
	require.Equal(t, board.SegmentID(3), tail)

	popped, err := b.PopTail()
	require.NoError(t, err)
	require.Equal(t, board.SegmentID(3), popped)
	require.Equal(t, []board.SegmentID{7, 9}, b.Segments())
	require.False(t, b.Contains(3))
	require.True(t, b.Contains(9))
	require.Equal(t, board.SegmentID(7), b.At(0))
	require.Equal(t, board.NoSegment, b.At(2))

	b.Clear()
	require.Equal(t, 0, b.Len())
	require.False(t, b.Contains(9))
	// cleared slots read the same as slots freed by PopTail
	for i := 0; i < 3; i++ {
		require.Equal(t, board.NoSegment, b.segments[i], "slot %d not blanked", i)
	}
}

func TestBodyEmpty(t *testing.T) {
	b := Body{}

	_, err := b.PopTail()
	require.Equal(t, ErrBodyEmpty, err)
	_, err = b.Head()
	require.Equal(t, ErrBodyEmpty, err)
	_, err = b.Tail()
	require.Equal(t, ErrBodyEmpty, err)
}

func TestBodyFull(t *testing.T) {
	b := Body{}
	for i := 0; i < board.SegmentCount; i++ {
		require.NoError(t, b.Push(board.SegmentID(i)))
	}
	require.Equal(t, ErrBodyFull, b.Push(0))
	require.Equal(t, board.SegmentCount, b.Len())
}

func TestBodyIsAValue(t *testing.T) {
	a := Body{}
	require.NoError(t, a.Push(1))

	b := a
	require.NoError(t, b.Push(2))

	require.Equal(t, []board.SegmentID{1}, a.Segments())
	require.Equal(t, []board.SegmentID{1, 2}, b.Segments())
}
