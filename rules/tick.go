package rules

import (
	"github.com/battlesnakeio/placman/board"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// GameTick runs the board one tick and returns the next state. Colors are
// always computed from the state before the snake moves, so Hues of the
// returned state show where the snake was when the tick started.
func GameTick(g *board.Graph, prev GameState, in Input, rnd Rand) (GameState, error) {
	if prev.Mode == nil {
		return prev, errors.New("rules: invalid state, mode is nil")
	}
	next := prev
	next.Turn = prev.Turn + 1
	next.Elapsed = in.Elapsed
	next.Report = Report{Turn: next.Turn, Steer: in.Steer}
	if in.Dial != nil {
		next.Dial = *in.Dial
	}

	if in.ToggleMode {
		next.Mode = toggleMode(next.Mode)
		next.Report.Toggled = true
		log.WithFields(log.Fields{
			"Session": next.Session,
			"Turn":    next.Turn,
			"Mode":    next.Mode.Name(),
		}).Info("mode changed")
	}

	switch m := next.Mode.(type) {
	case ModeRainbow:
		paintRainbow(&next.Hues, g, next.Dial, next.Elapsed)
		return next, nil
	case ModeSnake:
		if m.Loss > 0 {
			paintLossFlash(&next.Hues, m.Loss)
			if err := countdownLoss(g, &next, m, rnd); err != nil {
				return prev, err
			}
			return next, nil
		}
		paintSnake(&next.Hues, &next.Snake, next.Cherry)
		if err := advanceSnake(g, &next, in.Steer, rnd); err != nil {
			return prev, err
		}
		return next, nil
	default:
		return prev, errors.Errorf("rules: invalid state, unknown mode %T", m)
	}
}

func countdownLoss(g *board.Graph, gs *GameState, m ModeSnake, rnd Rand) error {
	m.Loss--
	gs.Mode = m
	if m.Loss > 0 {
		return nil
	}

	gs.Snake.Reset(gs.Start)
	cherry, err := SpawnCherry(rnd, g.Len(), &gs.Snake)
	if err != nil {
		return errors.Wrapf(err, "rules: respawn cherry on turn %d", gs.Turn)
	}
	gs.Cherry = cherry
	gs.Mode = ModeSnake{}
	gs.Report.Reset = true
	log.WithFields(log.Fields{
		"Session": gs.Session,
		"Turn":    gs.Turn,
		"Cherry":  cherry,
	}).Info("snake reset")
	return nil
}

func advanceSnake(g *board.Graph, gs *GameState, steer board.Steer, rnd Rand) error {
	res, err := gs.Snake.Move(g, steer)
	if err != nil {
		return errors.Wrapf(err, "rules: move on turn %d", gs.Turn)
	}
	gs.Report.Moved = true
	gs.Report.Move = res

	fields := log.Fields{
		"Session": gs.Session,
		"Turn":    gs.Turn,
		"Head":    res.Head,
		"Length":  gs.Snake.Length,
	}

	if res.Collided {
		startLoss(gs, LossCauseSelfCollision)
		log.WithFields(fields).Info("snake collided with itself")
		return nil
	}
	log.WithFields(fields).WithField("Heading", gs.Snake.Heading).Debug("snake moved")

	if gs.Snake.Head() != gs.Cherry {
		return nil
	}

	gs.Snake.Grow()
	gs.Report.Captured = true
	cherry, err := SpawnCherry(rnd, g.Len(), &gs.Snake)
	if errors.Cause(err) == ErrBoardFull {
		gs.Cherry = board.NoSegment
		startLoss(gs, LossCauseBoardFull)
		log.WithFields(fields).Info("board cleared")
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "rules: respawn cherry on turn %d", gs.Turn)
	}
	gs.Cherry = cherry
	log.WithFields(fields).WithField("Cherry", cherry).Info("snake ate cherry")
	return nil
}
