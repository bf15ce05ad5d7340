package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/placman/rules"
	log "github.com/sirupsen/logrus"
)

// Runner plays n ticks back to back without pacing, starting from state. The
// clock advances by the configured tick interval every turn so a run only
// depends on its input and random source.
func Runner(ctx context.Context, w *Worker, state rules.GameState, n int) (rules.GameState, error) {
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return state, ctx.Err()
		default:
		}

		elapsed := time.Duration(state.Turn+1) * w.Config.TickInterval
		next, err := w.Step(state, elapsed)
		if err != nil {
			log.WithError(err).
				WithField("Session", state.Session).
				WithField("Turn", state.Turn).
				Error("ending run due to fatal error")
			return next, err
		}
		state = next
	}
	log.WithFields(log.Fields{
		"Session": state.Session,
		"Turn":    state.Turn,
		"Length":  state.Snake.Length,
	}).Info("run finished")
	return state, nil
}
