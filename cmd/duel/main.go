// cmd/duel/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-duel/pkg/config"
	"github.com/opd-ai/go-duel/pkg/engine"
	"github.com/opd-ai/go-duel/pkg/logging"
	"github.com/opd-ai/go-duel/pkg/render"
	"github.com/opd-ai/go-duel/pkg/telemetry"
)

type options struct {
	ticks       uint64
	inputs      engine.InputSet
	fast        bool
	renderer    render.Renderer
	renderEvery uint64
}

func main() {
	logger := logging.NewLogger()
	ctx := logging.WithMatchID(context.Background(), logging.GenerateMatchID())

	configPath := flag.String("config", "duel.yaml", "Path to configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	ticks := flag.Uint64("ticks", 0, "Number of ticks to run (0 runs until interrupted)")
	inputSpec := flag.String("input", "none", "Actions held every tick, e.g. forward,fire")
	fast := flag.Bool("fast", false, "Run ticks back to back instead of at the refresh rate")
	renderMode := flag.String("render", "none", "Renderer: none, log or terminal")
	renderEvery := flag.Uint64("render-every", 1, "Render every N ticks")
	cols := flag.Int("cols", 120, "Terminal renderer columns")
	rows := flag.Int("rows", 35, "Terminal renderer rows")
	telemetryDir := flag.String("telemetry", "", "Directory for CSV telemetry (overrides config)")
	flag.Parse()

	// Create default configuration file if requested
	if *createDefault {
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err,
				"config_path", *configPath,
			)
			os.Exit(1)
		}
		logger.Info(ctx, "Created default configuration file",
			"config_path", *configPath,
		)
		return
	}

	// Load configuration with environment overrides
	path := *configPath
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", path,
		)
		path = ""
	}
	gameConfig, err := config.LoadConfigFromEnv(path)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err, "config_path", path)
		os.Exit(1)
	}
	if *telemetryDir != "" {
		gameConfig.Telemetry.Dir = *telemetryDir
	}

	inputs, err := engine.ParseActions(*inputSpec)
	if err != nil {
		logger.Error(ctx, "Invalid -input", err)
		os.Exit(2)
	}

	game, err := engine.NewGame(gameConfig,
		engine.WithLogger(logger),
		engine.WithContext(ctx),
	)
	if err != nil {
		logger.Error(ctx, "Failed to create duel", err)
		os.Exit(1)
	}

	recorder, err := telemetry.NewRecorder(gameConfig.Telemetry.Dir, gameConfig.Telemetry, logger)
	if err != nil {
		logger.Error(ctx, "Failed to open telemetry", err, "dir", gameConfig.Telemetry.Dir)
		os.Exit(1)
	}
	recorder.WithContext(ctx).Attach(game.EventBus)
	defer func() {
		if err := recorder.Close(); err != nil {
			logger.Error(ctx, "Failed to close telemetry", err)
		}
	}()

	renderer, err := newRenderer(*renderMode, *cols, *rows, gameConfig, logger)
	if err != nil {
		logger.Error(ctx, "Invalid -render", err)
		os.Exit(2)
	}

	// Handle shutdown signals
	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting duel",
		"inputs", inputs.String(),
		"ticks", *ticks,
		"fast", *fast,
		"render", *renderMode,
	)

	err = run(runCtx, game, options{
		ticks:       *ticks,
		inputs:      inputs,
		fast:        *fast,
		renderer:    renderer,
		renderEvery: max(*renderEvery, 1),
	})
	if err != nil {
		logger.Error(ctx, "Duel aborted", err)
	}

	for _, s := range game.Status() {
		logger.Info(ctx, "Final ship status",
			"ship", s.Name,
			"x", s.X,
			"y", s.Y,
			"degrees", s.Degrees,
			"projectiles", s.Projectiles,
		)
	}
	logger.Info(ctx, "Duel finished",
		"ticks", game.CurrentTick,
		"telemetry_skipped", recorder.Skipped(),
	)
}

func newRenderer(mode string, cols, rows int, cfg *config.GameConfig, logger *logging.Logger) (render.Renderer, error) {
	switch mode {
	case "", "none":
		return nil, nil
	case "log":
		return render.NewNullRenderer(logger), nil
	case "terminal":
		r := render.NewTerminalRenderer(os.Stdout, cols, rows, cfg.Arena.Width, cfg.Arena.Height)
		r.SetANSI(true)
		return r, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q", mode)
	}
}

// run advances game until ctx is cancelled or the tick limit is reached.
// Ticks are paced by a ticker at the arena refresh rate unless fast is set.
func run(ctx context.Context, game *engine.Game, opts options) error {
	game.Start()
	defer game.Stop()

	var tickC <-chan time.Time
	if !opts.fast {
		interval := time.Duration(float64(time.Second) / game.Arena.RefreshRate)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		tickC = ticker.C
	}

	for opts.ticks == 0 || game.CurrentTick < opts.ticks {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tickC:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		result := game.Advance(opts.inputs)
		if opts.renderer != nil && result.Tick%opts.renderEvery == 0 {
			if err := render.Draw(opts.renderer, game.Snapshot()); err != nil {
				return fmt.Errorf("rendering tick %d: %w", result.Tick, err)
			}
		}
	}
	return nil
}
