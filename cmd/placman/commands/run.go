package commands

import (
	"context"
	"io/ioutil"
	"os"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/worker"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const periodStep = 250 * time.Millisecond

var (
	runSeed    int64
	runLogFile string
	runProm    bool
)

func init() {
	runCmd.Flags().Int64Var(&runSeed, "seed", 0, "cherry placement seed")
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "write logs to a file, they are discarded otherwise")
	runCmd.Flags().BoolVar(&runProm, "prometheus", false, "enable prometheus metrics")
	runCmd.Flags().StringVar(&promListen, "prometheus-listen", "", "prometheus http endpoint, defaults to the config value")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "plays the board in the terminal",
	RunE: func(c *cobra.Command, args []string) error {
		if runLogFile != "" {
			f, err := os.OpenFile(runLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				return errors.Wrap(err, "unable to open log file")
			}
			defer f.Close()
			log.SetOutput(f)
		} else {
			log.SetOutput(ioutil.Discard)
		}
		prometheus(runProm)

		pixels, sr, err := stripRenderer()
		if err != nil {
			return err
		}
		latch := worker.NewLatch(cfg.Dial())
		w, err := newWorker(runSeed, worker.InstrumentRenderer("terminal", &termRenderer{
			latch:  latch,
			pixels: pixels,
			strip:  sr,
		}))
		if err != nil {
			return err
		}
		w.Input = latch
		w.Dials = latch

		if err := termbox.Init(); err != nil {
			return errors.Wrap(err, "unable to start terminal")
		}
		defer termbox.Close()
		termbox.SetOutputMode(termbox.Output256)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		eventQueue := setupEventQueue()
		for {
			select {
			case err := <-done:
				if err == context.Canceled {
					return nil
				}
				return err
			case ev := <-eventQueue:
				if ev.Type == termbox.EventError {
					cancel()
					continue
				}
				if ev.Type == termbox.EventKey && handleKey(ev, latch) {
					cancel()
				}
			}
		}
	},
}

// handleKey feeds a key press into the latch. It returns true when the user
// asked to quit.
func handleKey(ev termbox.Event, latch *worker.Latch) bool {
	switch ev.Key {
	case termbox.KeyEsc, termbox.KeyCtrlC:
		return true
	case termbox.KeyArrowLeft:
		latch.Steer(board.SteerLeft)
	case termbox.KeyArrowRight:
		latch.Steer(board.SteerRight)
	case termbox.KeyArrowUp:
		latch.Steer(board.SteerStraight)
	case termbox.KeySpace, termbox.KeyTab:
		latch.Toggle()
	}

	switch ev.Ch {
	case 'q':
		return true
	case '[':
		latch.NudgePeriod(-periodStep)
	case ']':
		latch.NudgePeriod(periodStep)
	case 'h':
		latch.MoveCenter(-0.5, 0)
	case 'l':
		latch.MoveCenter(0.5, 0)
	case 'k':
		latch.MoveCenter(0, -0.5)
	case 'j':
		latch.MoveCenter(0, 0.5)
	}
	return false
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
