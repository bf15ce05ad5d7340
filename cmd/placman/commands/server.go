package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/battlesnakeio/placman/worker"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	promEnable   bool
	promListen   string
	serverScript string
	serverSeed   int64
)

func init() {
	serverCmd.Flags().BoolVar(&promEnable, "prometheus", true, "enable prometheus metrics")
	serverCmd.Flags().StringVar(&promListen, "prometheus-listen", "", "prometheus http endpoint, defaults to the config value")
	serverCmd.Flags().StringVar(&serverScript, "script", "", "comma separated steering commands to play before going straight")
	serverCmd.Flags().Int64Var(&serverSeed, "seed", 0, "cherry placement seed")
}

// serverCmd drives the LED strip without a terminal.
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "drives the LED strip headless and exports prometheus metrics",
	RunE: func(c *cobra.Command, args []string) error {
		prometheus(promEnable)

		script, err := worker.ParseScript(serverScript)
		if err != nil {
			return err
		}
		buf, sr, err := stripRenderer()
		if err != nil {
			return err
		}
		w, err := newWorker(serverSeed, worker.InstrumentRenderer("strip", sr))
		if err != nil {
			return err
		}
		w.Input = script
		w.Dials = worker.NewLatch(cfg.Dial())

		ctx, cancel := signalContext()
		defer cancel()

		log.WithField("Pixels", buf.NumPixels()).Info("driving strip")
		err = w.Run(ctx)
		if err == context.Canceled {
			log.WithField("Shows", buf.Shows()).Info("strip stopped")
			return nil
		}
		return err
	},
}

func signalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sig:
			log.WithField("Signal", s).Info("shutting down")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sig)
	}()
	return ctx, cancel
}

func prometheus(enable bool) {
	if !enable && !cfg.Metrics.Enabled {
		log.Info("prometheus exporter not enabled")
		return
	}

	addr := promListen
	if addr == "" {
		addr = cfg.Metrics.Listen
	}
	log.WithField("addr", addr).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(addr, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
