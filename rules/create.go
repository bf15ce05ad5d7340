package rules

import (
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
)

// GameMode names the top-level display mode.
type GameMode string

const (
	// GameModeSnake is the interactive snake game.
	GameModeSnake GameMode = "snake"
	// GameModeRainbow is the rotating color wheel.
	GameModeRainbow GameMode = "rainbow"
)

// Mode is either ModeSnake or ModeRainbow.
type Mode interface {
	Name() GameMode
	isMode()
}

// ModeSnake is the snake game. Loss counts down the loss flash; zero means the
// game is being played.
type ModeSnake struct {
	Loss  int
	Cause LossCause
}

// Name implements Mode.
func (ModeSnake) Name() GameMode { return GameModeSnake }
func (ModeSnake) isMode()        {}

// ModeRainbow is the color wheel. It never touches the game state. Resume is
// the snake mode to return to, so a loss flash in progress survives a trip
// through the wheel.
type ModeRainbow struct {
	Resume ModeSnake
}

// Name implements Mode.
func (ModeRainbow) Name() GameMode { return GameModeRainbow }
func (ModeRainbow) isMode()        {}

func toggleMode(m Mode) Mode {
	switch m := m.(type) {
	case ModeRainbow:
		return m.Resume
	case ModeSnake:
		return ModeRainbow{Resume: m}
	}
	return ModeRainbow{}
}

// GameState is everything the board needs between ticks. It is a value: ticks
// never modify the previous state.
type GameState struct {
	Session string
	Turn    int64
	Mode    Mode

	Start  board.SegmentID
	Snake  Snake
	Cherry board.SegmentID

	Dial    Dial
	Elapsed time.Duration

	// Hues is the color snapshot computed by the last tick, from the state
	// the board was in before that tick moved the snake.
	Hues Hues
	// Report describes what the last tick did.
	Report Report
}

// Report is a summary of one tick, for logging and metrics.
type Report struct {
	Turn     int64
	Steer    board.Steer
	Toggled  bool
	Moved    bool
	Move     MoveResult
	Captured bool
	Reset    bool
	Loss     LossCause
}

// Input is what the outside world feeds into a tick.
type Input struct {
	Steer      board.Steer
	ToggleMode bool
	// Elapsed is the clock reading used by the rainbow wheel.
	Elapsed time.Duration
	// Dial is a fresh dial sample, or nil when the dials were not read.
	Dial *Dial
}

// NewGame creates the initial state: a one segment snake on start, a cherry
// somewhere else and the snake mode selected.
func NewGame(g *board.Graph, start board.SegmentID, rnd Rand) (GameState, error) {
	if start < 0 || int(start) >= g.Len() {
		return GameState{}, errors.Errorf("rules: start segment %d is not on the board", start)
	}
	gs := GameState{
		Session: uuid.NewV4().String(),
		Mode:    ModeSnake{},
		Start:   start,
		Snake:   NewSnake(start),
		Dial:    DefaultDial(),
		Hues:    UnsetHues(),
	}
	cherry, err := SpawnCherry(rnd, g.Len(), &gs.Snake)
	if err != nil {
		return GameState{}, errors.Wrap(err, "rules: place first cherry")
	}
	gs.Cherry = cherry
	return gs, nil
}
