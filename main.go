package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"snake-term/config"
	"snake-term/engine"
	"snake-term/game"
	"snake-term/input"
	"snake-term/terminal"
	"snake-term/ui"
)

var errTerminalTooSmall = errors.New("terminal too small")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string
	defaults := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:          "snake-term",
		Short:        "Play snake in the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, configFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGHUP)
			defer stop()
			return run(ctx, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&configFile, "config", "c", "", "YAML configuration file")
	f.Int("grid-size", defaults.GridSize, "width and height of the grid")
	f.Int("tick-rate", defaults.TickRate, "simulation steps per second")
	f.Uint64("seed", defaults.Seed, "food placement seed (0 picks one from the clock)")
	f.Int("queue-capacity", defaults.QueueCapacity, "pending key presses kept between ticks")
	f.String("layout", string(defaults.Layout), "movement keys: zqsd or wasd")
	f.Bool("color", defaults.Color, "colored output")
	f.String("log-file", defaults.LogFile, "write JSON logs to this file")
	f.String("log-level", defaults.LogLevel, "debug, info, warn or error")
	f.String("metrics-addr", defaults.MetricsAddr, "serve Prometheus metrics on this address")
	return cmd
}

// loadConfig layers defaults, the config file, SNAKE_* variables and the
// flags that were set explicitly, then validates the result.
func loadConfig(cmd *cobra.Command, configFile string) (config.Config, error) {
	cfg, err := config.NewLoader().Load(configFile)
	if err != nil {
		return config.Config{}, err
	}

	f := cmd.Flags()
	if f.Changed("grid-size") {
		cfg.GridSize, _ = f.GetInt("grid-size")
	}
	if f.Changed("tick-rate") {
		cfg.TickRate, _ = f.GetInt("tick-rate")
	}
	if f.Changed("seed") {
		cfg.Seed, _ = f.GetUint64("seed")
	}
	if f.Changed("queue-capacity") {
		cfg.QueueCapacity, _ = f.GetInt("queue-capacity")
	}
	if f.Changed("layout") {
		layout, _ := f.GetString("layout")
		cfg.Layout = config.Layout(layout)
	}
	if f.Changed("color") {
		cfg.Color, _ = f.GetBool("color")
	}
	if f.Changed("log-file") {
		cfg.LogFile, _ = f.GetString("log-file")
	}
	if f.Changed("log-level") {
		cfg.LogLevel, _ = f.GetString("log-level")
	}
	if f.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = f.GetString("metrics-addr")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func run(ctx context.Context, cfg config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	renderer := ui.NewRenderer(os.Stdout, cfg.Layout, cfg.Color)

	sess, err := terminal.Open(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer sess.Restore()

	width, height, err := sess.Size()
	if err != nil {
		return err
	}
	if needW, needH := renderer.Size(cfg.GridSize); width < needW || height < needH {
		return fmt.Errorf("%w: need %dx%d, have %dx%d", errTerminalTooSmall, needW, needH, width, height)
	}

	queue := input.NewQueue(cfg.QueueCapacity)
	capture := input.NewCapture(os.Stdin, input.NewKeymap(cfg.Layout), queue, logger)
	failures := make(chan error, 1)
	// Capture is abandoned when the process exits; nothing waits for it.
	go func() { failures <- capture.Run() }()

	g := game.NewGame(cfg, game.WithLogger(logger))
	logger.Info("game started",
		"session", g.UUID,
		"grid_size", cfg.GridSize,
		"tick_rate", cfg.TickRate,
		"seed", cfg.Seed,
		"layout", cfg.Layout,
	)

	reg := prometheus.NewRegistry()
	metrics := engine.NewMetrics(reg)
	engine.RegisterQueue(reg, queue)

	loop := engine.New(cfg, g, queue, renderer,
		engine.WithMetrics(metrics),
		engine.WithLogger(logger.With("session", g.UUID)),
		engine.WithFailures(failures),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, gctx := errgroup.WithContext(ctx)

	var result engine.Result
	group.Go(func() (err error) {
		defer cancel()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("game loop panicked", "panic", r, "stack", string(debug.Stack()))
				err = fmt.Errorf("game loop panicked: %v", r)
			}
		}()
		result, err = loop.Run(gctx)
		return err
	})
	if cfg.MetricsAddr != "" {
		group.Go(func() error {
			return engine.ServeMetrics(gctx, cfg.MetricsAddr, reg)
		})
	}

	err = group.Wait()
	restoreErr := sess.Restore()
	if err != nil {
		logger.Error("game aborted", "error", err)
		return errors.Join(err, restoreErr)
	}
	if restoreErr != nil {
		return restoreErr
	}

	fmt.Fprint(os.Stdout, ui.Epilogue(result))
	return nil
}
