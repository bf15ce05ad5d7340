// Package worker drives the board in real time. It polls the input, runs the
// game one tick at a time, pushes every frame to the renderers and paces the
// loop so the loss flash blinks faster than the snake moves.
package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/config"
	"github.com/battlesnakeio/placman/rules"
	"github.com/battlesnakeio/placman/strip"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// Worker runs a single board. Graph, Config and Rand are required; the rest
// is optional.
type Worker struct {
	Graph    *board.Graph
	Config   *config.Config
	Rand     rules.Rand
	Input    InputSource
	Dials    DialSource
	Renderer strip.Renderer
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// NewGame creates the starting state for this worker's configuration.
func (w *Worker) NewGame() (rules.GameState, error) {
	state, err := rules.NewGame(w.Graph, board.SegmentID(w.Config.StartSegment), w.Rand)
	if err != nil {
		return state, err
	}
	state.Dial = w.Config.Dial()
	return state, nil
}

// Run plays until ctx is done or a tick fails. It returns ctx.Err() on a
// clean stop.
func (w *Worker) Run(ctx context.Context) error {
	state, err := w.NewGame()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"Session": state.Session,
		"Start":   state.Start,
		"Cherry":  state.Cherry,
	}).Info("game started")

	start := w.now()
	var elapsed time.Duration
	status := rules.StatusOf(&state)
	limiter := rate.NewLimiter(w.Config.TickLimit(status), 1)
	for {
		if err := limiter.Wait(ctx); err != nil {
			// The limiter refuses to wait past the deadline.
			<-ctx.Done()
			return ctx.Err()
		}

		// The clock is polled with the dials and held in between.
		if rules.ShouldSampleDial(state.Turn) {
			elapsed = w.now().Sub(start)
		}
		state, err = w.Step(state, elapsed)
		if err != nil {
			log.WithError(err).
				WithField("Session", state.Session).
				WithField("Turn", state.Turn).
				Error("stopping board due to fatal error")
			return err
		}

		if next := rules.StatusOf(&state); next != status {
			log.WithFields(log.Fields{
				"Session": state.Session,
				"Turn":    state.Turn,
				"Status":  next,
			}).Debug("pace changed")
			status = next
			limiter.SetLimit(w.Config.TickLimit(status))
		}
	}
}

// Step runs one tick from state with the clock reading elapsed and renders
// the result. On a tick error the old state is returned.
func (w *Worker) Step(state rules.GameState, elapsed time.Duration) (rules.GameState, error) {
	in := rules.Input{Steer: board.SteerStraight, Elapsed: elapsed}
	if w.Input != nil {
		in.Steer, in.ToggleMode = w.Input.Poll()
	}
	if w.Dials != nil && rules.ShouldSampleDial(state.Turn) {
		d := w.Dials.Dial()
		in.Dial = &d
	}

	next, err := rules.GameTick(w.Graph, state, in, w.Rand)
	if err != nil {
		return state, err
	}
	observeTick(&next)

	if w.Renderer != nil {
		if err := w.Renderer.Render(strip.NewFrame(w.Graph, &next)); err != nil {
			return next, errors.Wrapf(err, "worker: render turn %d", next.Turn)
		}
	}
	return next, nil
}

func (w *Worker) now() time.Time {
	if w.Clock != nil {
		return w.Clock()
	}
	return time.Now()
}
