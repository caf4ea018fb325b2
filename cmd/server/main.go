package main

import (
	"context"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"

	"github.com/Ko-stant/trailmap/internal/partition"
	"github.com/Ko-stant/trailmap/internal/render"
	"github.com/Ko-stant/trailmap/internal/trailmap"
)

const (
	flagPort          = "port"
	flagStatic        = "static"
	flagAllowedOrigin = "allowed-origin"
	flagDebug         = "debug"
	flagPalette       = "palette"
	flagPprofPort     = "pprof-port"
	flagMetrics       = "metrics-interval"
)

func newApp() *cli.App {
	var logger golog.Logger

	return &cli.App{
		Name:  "trailmap-server",
		Usage: "serve trail map generation over HTTP",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    flagPort,
				Aliases: []string{"p"},
				EnvVars: []string{"APP_PORT"},
				Value:   5678,
				Usage:   "port to listen on",
			},
			&cli.StringFlag{
				Name:    flagStatic,
				EnvVars: []string{"APP_STATIC_DIR"},
				Value:   "internal/web/static",
				Usage:   "serve static assets from `DIR`",
			},
			&cli.StringSliceFlag{
				Name:    flagAllowedOrigin,
				EnvVars: []string{"APP_ALLOWED_ORIGINS"},
				Value:   cli.NewStringSlice("*"),
				Usage:   "origins allowed for CORS and websocket connections",
			},
			&cli.BoolFlag{
				Name:  flagPalette,
				Usage: "colour each trail network separately",
			},
			&cli.StringFlag{
				Name:    flagPprofPort,
				EnvVars: []string{"PPROF_PORT"},
				Usage:   "serve pprof on `PORT`; disabled when empty",
			},
			&cli.DurationFlag{
				Name:  flagMetrics,
				Usage: "log performance metrics every `INTERVAL`; disabled when zero",
			},
			&cli.BoolFlag{
				Name:    flagDebug,
				Aliases: []string{"vvv"},
				Usage:   "enable debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool(flagDebug) {
				logger = golog.NewDebugLogger("trailmap-server")
			} else {
				logger = golog.NewDevelopmentLogger("trailmap-server")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			return serve(c, logger)
		},
	}
}

func serve(c *cli.Context, logger golog.Logger) error {
	rcfg := render.DefaultConfig()
	rcfg.Palette = c.Bool(flagPalette)
	generator, err := trailmap.NewGenerator(logger, partition.DefaultConfig(), rcfg)
	if err != nil {
		return err
	}

	s := newServer(generator, logger, c.String(flagStatic), c.StringSlice(flagAllowedOrigin))
	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", strconv.Itoa(c.Int(flagPort))),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	StartProfiling(ctx, ProfilingConfig{Port: c.String(flagPprofPort)}, logger)
	StartMetricsReporting(ctx, s.metrics, c.Duration(flagMetrics), logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("listening", "addr", httpServer.Addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
