package rules

import (
	"github.com/battlesnakeio/placman/board"
	"github.com/pkg/errors"
)

// CherryDrawLimit bounds the number of random draws before falling back to an
// explicit scan of the free segments.
const CherryDrawLimit = 4 * board.SegmentCount

// ErrBoardFull is returned when the snake covers every segment and no cherry
// can be placed.
var ErrBoardFull = errors.New("rules: no free segment for a cherry")

// Rand is the random source used for cherry placement. *rand.Rand satisfies
// it.
type Rand interface {
	Intn(n int) int
}

// SpawnCherry picks a random segment out of n that the snake does not cover.
func SpawnCherry(rnd Rand, n int, snake *Snake) (board.SegmentID, error) {
	for i := 0; i < CherryDrawLimit; i++ {
		id := board.SegmentID(rnd.Intn(n))
		if !snake.Contains(id) {
			return id, nil
		}
	}

	free := make([]board.SegmentID, 0, n)
	for id := board.SegmentID(0); int(id) < n; id++ {
		if !snake.Contains(id) {
			free = append(free, id)
		}
	}
	if len(free) == 0 {
		return board.NoSegment, ErrBoardFull
	}
	return free[rnd.Intn(len(free))], nil
}
