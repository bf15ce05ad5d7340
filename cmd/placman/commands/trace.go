package commands

import (
	"context"
	"io"
	"os"

	"github.com/battlesnakeio/placman/strip"
	"github.com/battlesnakeio/placman/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	traceSteps  = 100
	traceSeed   = int64(1)
	traceScript string
	traceOut    string
)

func init() {
	traceCmd.Flags().IntVarP(&traceSteps, "steps", "n", traceSteps, "number of ticks to run")
	traceCmd.Flags().Int64Var(&traceSeed, "seed", traceSeed, "cherry placement seed")
	traceCmd.Flags().StringVarP(&traceScript, "script", "s", "", "comma separated steering commands (l, s, r, t)")
	traceCmd.Flags().StringVarP(&traceOut, "out", "o", "", "write the CSV to a file instead of stdout")
}

var traceCmd = &cobra.Command{
	Use:   "trace",
	Short: "plays a scripted game without pacing and writes every frame as CSV",
	Args: func(c *cobra.Command, args []string) error {
		if traceSteps < 0 {
			return errors.New("steps must not be negative")
		}
		return nil
	},
	RunE: func(c *cobra.Command, args []string) error {
		script, err := worker.ParseScript(traceScript)
		if err != nil {
			return err
		}

		var out io.Writer = os.Stdout
		if traceOut != "" {
			f, err := os.Create(traceOut)
			if err != nil {
				return errors.Wrap(err, "unable to create trace file")
			}
			defer f.Close()
			out = f
		}

		w, err := newWorker(traceSeed, strip.NewCSVRenderer(out))
		if err != nil {
			return err
		}
		w.Input = script

		state, err := w.NewGame()
		if err != nil {
			return err
		}
		state, err = worker.Runner(context.Background(), w, state, traceSteps)
		if err != nil {
			return err
		}
		log.WithFields(log.Fields{
			"Turn":   state.Turn,
			"Head":   state.Snake.Head(),
			"Length": state.Snake.Length,
		}).Debug("trace finished")
		return nil
	},
}
