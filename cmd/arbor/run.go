package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/internal/config"
	"github.com/aretw0/arbor/internal/demo"
	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/internal/presentation/tui"
	httpAdapter "github.com/aretw0/arbor/pkg/adapters/http"
	"github.com/aretw0/arbor/pkg/adapters/redis"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo guard AI",
	Long: `Ticks the demo guard's behavior tree on a fixed period until interrupted
(Ctrl+C) or until --ticks scheduled ticks have run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}
		return runDemo(cmd.Context(), cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("period", time.Second, "Tick period")
	runCmd.Flags().Int("ticks", 0, "Stop after this many ticks (0 = until interrupted)")
	runCmd.Flags().Uint64("seed", 0, "Random seed (0 = random)")
	runCmd.Flags().Int("hp", 10, "Initial guard hit points")
	runCmd.Flags().Int("enemies", 0, "Initial number of enemies")
	runCmd.Flags().Duration("patrol", 2*time.Second, "Duration of the long-running patrol action")
	runCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
	runCmd.Flags().String("metrics-addr", "", "Serve /metrics and /healthz on this address (e.g. :2112)")
	runCmd.Flags().String("redis", "", "Redis address; enables the single-driver lock")
	runCmd.Flags().Bool("no-color", false, "Disable colored output")
}

// resolveConfig loads the config file (if any) and applies explicit flags on top.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("period") {
		cfg.Period, _ = flags.GetDuration("period")
	}
	if flags.Changed("ticks") {
		cfg.Ticks, _ = flags.GetInt("ticks")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("hp") {
		cfg.Guard.HP, _ = flags.GetInt("hp")
	}
	if flags.Changed("enemies") {
		cfg.Guard.Enemies, _ = flags.GetInt("enemies")
	}
	if flags.Changed("patrol") {
		cfg.Guard.Patrol, _ = flags.GetDuration("patrol")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if flags.Changed("redis") {
		cfg.Redis.Addr, _ = flags.GetString("redis")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}
	return cfg, cfg.Validate()
}

func runDemo(ctx context.Context, out io.Writer, cfg config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.New(level)

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	reg := prometheus.NewRegistry()
	metrics, err := observability.NewMetrics(reg)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	signals := runner.NewSignalManager(ctx)
	defer signals.Stop()
	runCtx, cancel := context.WithCancel(signals.Context())
	defer cancel()

	runnerOpts := []runner.Option{runner.WithReporter(metrics.ObserveTick)}
	if cfg.Ticks > 0 {
		limit := uint64(cfg.Ticks)
		runnerOpts = append(runnerOpts, runner.WithReporter(func(r runner.Report) {
			if r.Seq >= limit {
				cancel()
			}
		}))
	}
	if cfg.Redis.Addr != "" {
		locker := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		runnerOpts = append(runnerOpts, runner.WithLocker(locker, cfg.Redis.LockKey, cfg.Redis.LockTTL))
		logger.Info("single-driver lock enabled", "redis", cfg.Redis.Addr, "key", cfg.Redis.LockKey)
	}

	engine := arbor.New(
		arbor.WithLogger(logger),
		arbor.WithLifecycleHooks(metrics.Hooks()),
		arbor.WithRunnerOptions(runnerOpts...),
	)

	guard := demo.NewGuard(cfg.Guard.Name, cfg.Guard.HP, cfg.Guard.Enemies)
	defer guard.Close()
	color := !cfg.NoColor && isTerminal(out)
	if color {
		tui.PrintBanner(out, termenv.ColorProfile())
	}
	brain := demo.NewBrain(rand.New(rand.NewPCG(seed, seed)), demo.NewPrinter(out, color), cfg.Guard.Patrol)

	logger.Info("guard on duty", "name", guard.Name, "hp", guard.HP, "period", cfg.Period, "seed", seed)
	h, err := engine.Run(runCtx, brain.Tree(), guard, cfg.Period)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		stop := serveMetrics(logger, cfg.MetricsAddr, reg, h)
		defer stop()
	}

	<-h.Done()
	if err := h.Stop(); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s finished after %d ticks (hp=%d, enemies=%d)\n", guard.Name, h.Ticks(), guard.HP, guard.Enemies)
	return nil
}

// serveMetrics exposes the registry over HTTP until the returned func is called.
func serveMetrics(logger *slog.Logger, addr string, reg *prometheus.Registry, h *runner.Handle) func() {
	health := func() error {
		select {
		case <-h.Done():
			return errors.New("schedule stopped")
		default:
			return nil
		}
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           httpAdapter.NewHandler(reg, health),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("metrics server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "err", err)
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			logger.Warn("metrics server shutdown failed", "err", err)
		}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
