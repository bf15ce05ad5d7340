package commands

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/battlesnakeio/placman/board"
	"github.com/battlesnakeio/placman/config"
	"github.com/battlesnakeio/placman/strip"
	"github.com/battlesnakeio/placman/worker"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "placman",
	Short: "placman plays snake and a color wheel on a board of 32 light segments",
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		level, err := log.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		log.SetLevel(level)

		cfg, err = config.Load(configPath)
		return err
	},
}

var (
	configPath string
	logLevel   = "info"
	cfg        *config.Config
)

// Execute runs the root command
func Execute() {

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logLevel, "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(traceCmd)
	rootCmd.AddCommand(graphCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// newWorker builds a worker for the loaded config. A zero seed falls back to
// the config seed and then to the clock.
func newWorker(seed int64, r strip.Renderer) (*worker.Worker, error) {
	g, err := board.Default()
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &worker.Worker{
		Graph:    g,
		Config:   cfg,
		Rand:     rand.New(rand.NewSource(seed)),
		Renderer: r,
	}, nil
}

// stripRenderer drives an in-memory strip of the configured size through the
// configured pixel map.
func stripRenderer() (*strip.Buffer, *strip.StripRenderer, error) {
	var m strip.PixelMap
	if cfg.Strip.Map != "" {
		var err error
		if m, err = strip.ParsePixelMap(cfg.Strip.Map); err != nil {
			return nil, nil, errors.Wrap(err, "invalid pixel map")
		}
		for i, p := range m {
			if p >= cfg.Strip.Pixels {
				log.WithFields(log.Fields{
					"Segment": i,
					"Pixel":   p,
					"Pixels":  cfg.Strip.Pixels,
				}).Warn("segment maps past the end of the strip")
			}
		}
	}
	buf := strip.NewBuffer(cfg.Strip.Pixels)
	return buf, &strip.StripRenderer{Map: m, Pixels: buf}, nil
}
