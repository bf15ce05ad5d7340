package worker

import (
	"strings"
	"sync"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/rules"
	"github.com/pkg/errors"
)

// InputSource is polled once per tick for the pending steering command and
// whether the mode button was pressed since the last poll.
type InputSource interface {
	Poll() (board.Steer, bool)
}

// DialSource is read every rules.DialPollTicks turns for the rainbow
// controls.
type DialSource interface {
	Dial() rules.Dial
}

// MinDialPeriod is the fastest the rainbow wheel can be made to spin.
const MinDialPeriod = 250 * time.Millisecond

// Latch collects input written from another goroutine, typically a keyboard
// loop, until the worker polls it. The zero value is ready to use and holds
// no steering, which reads as straight.
type Latch struct {
	mu     sync.Mutex
	steer  board.Steer
	set    bool
	toggle bool
	dial   rules.Dial
}

// NewLatch returns a latch with the dials set to d.
func NewLatch(d rules.Dial) *Latch {
	return &Latch{dial: d}
}

// Steer records a steering command, replacing any earlier one.
func (l *Latch) Steer(s board.Steer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.steer = s
	l.set = true
}

// Toggle records a press of the mode button.
func (l *Latch) Toggle() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.toggle = true
}

// Poll implements InputSource. It clears the latch.
func (l *Latch) Poll() (board.Steer, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	steer, toggle := board.SteerStraight, l.toggle
	if l.set {
		steer = l.steer
	}
	l.set = false
	l.toggle = false
	return steer, toggle
}

// Dial implements DialSource.
func (l *Latch) Dial() rules.Dial {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dial
}

// NudgePeriod changes the wheel period by delta, never going below
// MinDialPeriod.
func (l *Latch) NudgePeriod(delta time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dial.Period += delta
	if l.dial.Period < MinDialPeriod {
		l.dial.Period = MinDialPeriod
	}
}

// MoveCenter shifts the hub of the wheel.
func (l *Latch) MoveCenter(dx, dy float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dial.CenterX += dx
	l.dial.CenterY += dy
}

// Script replays a fixed list of commands, then steers straight forever.
type Script struct {
	steps []scriptStep
	next  int
}

type scriptStep struct {
	steer  board.Steer
	toggle bool
}

// ParseScript reads a comma separated list of steering commands ("l", "s",
// "r"). "t" presses the mode button for that tick.
func ParseScript(v string) (*Script, error) {
	s := &Script{}
	v = strings.TrimSpace(v)
	if v == "" {
		return s, nil
	}
	for i, part := range strings.Split(v, ",") {
		part = strings.TrimSpace(part)
		if part == "t" || part == "T" || part == "toggle" {
			s.steps = append(s.steps, scriptStep{steer: board.SteerStraight, toggle: true})
			continue
		}
		steer, err := board.ParseSteer(part)
		if err != nil {
			return nil, errors.Wrapf(err, "worker: script step %d", i)
		}
		s.steps = append(s.steps, scriptStep{steer: steer})
	}
	return s, nil
}

// Len is the number of scripted ticks.
func (s *Script) Len() int { return len(s.steps) }

// Poll implements InputSource.
func (s *Script) Poll() (board.Steer, bool) {
	if s.next >= len(s.steps) {
		return board.SteerStraight, false
	}
	step := s.steps[s.next]
	s.next++
	return step.steer, step.toggle
}
