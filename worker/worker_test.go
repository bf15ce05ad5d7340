package worker

import (
	"context"
	"testing"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/config"
	"github.com/battlesnakeio/placman/rules"
	"github.com/battlesnakeio/placman/strip"
	"github.com/pkg/errors"
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

func testWorker(r strip.Renderer) *Worker {
	cfg := config.Default()
	cfg.TickInterval = 10 * time.Millisecond
	cfg.FlashInterval = 5 * time.Millisecond
	return &Worker{
		Graph:    testGraph,
		Config:   cfg,
		Rand:     &seqRand{values: []int{20}},
		Renderer: r,
	}
}

func TestLatch(t *testing.T) {
	var l Latch
	steer, toggle := l.Poll()
	require.Equal(t, board.SteerStraight, steer)
	require.False(t, toggle)

	l.Steer(board.SteerRight)
	l.Steer(board.SteerLeft)
	l.Toggle()
	steer, toggle = l.Poll()
	require.Equal(t, board.SteerLeft, steer)
	require.True(t, toggle)

	steer, toggle = l.Poll()
	require.Equal(t, board.SteerStraight, steer, "latch was not cleared")
	require.False(t, toggle)
}

func TestLatchDial(t *testing.T) {
	l := NewLatch(rules.DefaultDial())
	l.NudgePeriod(time.Second)
	require.Equal(t, 5*time.Second, l.Dial().Period)

	l.NudgePeriod(-time.Minute)
	require.Equal(t, MinDialPeriod, l.Dial().Period)

	l.MoveCenter(-1, 0.5)
	require.Equal(t, 2.0, l.Dial().CenterX)
	require.Equal(t, 3.5, l.Dial().CenterY)
}

func TestParseScript(t *testing.T) {
	s, err := ParseScript("l, s,R,t")
	require.NoError(t, err)
	require.Equal(t, 4, s.Len())

	expected := []struct {
		steer  board.Steer
		toggle bool
	}{
		{board.SteerLeft, false},
		{board.SteerStraight, false},
		{board.SteerRight, false},
		{board.SteerStraight, true},
		{board.SteerStraight, false},
		{board.SteerStraight, false},
	}
	for i, e := range expected {
		steer, toggle := s.Poll()
		require.Equal(t, e.steer, steer, "step %d", i)
		require.Equal(t, e.toggle, toggle, "step %d", i)
	}

	_, err = ParseScript("l,x")
	require.Error(t, err)
	require.Contains(t, err.Error(), "worker: script step 1")

	s, err = ParseScript("")
	require.NoError(t, err)
	require.Equal(t, 0, s.Len())
}

func TestWorker_StepSamplesDials(t *testing.T) {
	w := testWorker(nil)
	latch := NewLatch(rules.Dial{Period: time.Second, CenterX: 1, CenterY: 2})
	w.Input = latch
	w.Dials = latch

	state, err := w.NewGame()
	require.NoError(t, err)
	require.Equal(t, w.Config.Dial(), state.Dial)

	state, err = w.Step(state, 0)
	require.NoError(t, err)
	require.Equal(t, latch.Dial(), state.Dial)

	latch.MoveCenter(1, 1)
	state, err = w.Step(state, 0)
	require.NoError(t, err)
	require.Equal(t, rules.Dial{Period: time.Second, CenterX: 1, CenterY: 2}, state.Dial)
	require.Equal(t, int64(2), state.Turn)
}

func TestWorker_StepUsesInput(t *testing.T) {
	w := testWorker(nil)
	latch := &Latch{}
	w.Input = latch

	state, err := w.NewGame()
	require.NoError(t, err)

	latch.Toggle()
	state, err = w.Step(state, time.Second)
	require.NoError(t, err)
	require.Equal(t, rules.GameModeRainbow, state.Mode.Name())
	require.Equal(t, time.Second, state.Elapsed)
	require.True(t, state.Report.Toggled)

	state, err = w.Step(state, time.Second)
	require.NoError(t, err)
	require.Equal(t, rules.GameModeRainbow, state.Mode.Name(), "toggle was not consumed")
}

func TestWorker_StepRenderError(t *testing.T) {
	w := testWorker(strip.RendererFunc(func(*strip.Frame) error {
		return errors.New("dark")
	}))
	state, err := w.NewGame()
	require.NoError(t, err)

	_, err = w.Step(state, 0)
	require.EqualError(t, err, "worker: render turn 1: dark")
}

func TestWorker_Run(t *testing.T) {
	buf := strip.NewBuffer(board.SegmentCount)
	w := testWorker(&strip.StripRenderer{Pixels: buf})

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	err := w.Run(ctx)
	require.Equal(t, context.DeadlineExceeded, err)
	require.True(t, buf.Shows() > 1, "expected several frames, got %d", buf.Shows())
}

func TestWorker_RunPollsClockWithDials(t *testing.T) {
	w := testWorker(nil)
	reads := 0
	now := time.Unix(0, 0)
	w.Clock = func() time.Time {
		reads++
		now = now.Add(time.Second)
		return now
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.Equal(t, context.DeadlineExceeded, w.Run(ctx))

	// One read for the start time and one for turn 0. Fewer than
	// rules.DialPollTicks ticks fit in the timeout.
	require.Equal(t, 2, reads)
}

func TestWorker_RunBadStart(t *testing.T) {
	w := testWorker(nil)
	w.Config.StartSegment = 99

	err := w.Run(context.Background())
	require.EqualError(t, err, "rules: start segment 99 is not on the board")
}
