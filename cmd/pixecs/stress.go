package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"github.com/plus3/pixecs/playfield"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type stressOptions struct {
	duration       time.Duration
	entities       int
	gcPauseMetrics bool
	profile        string
}

func newStressCmd(root *rootOptions) *cobra.Command {
	opts := &stressOptions{}

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Tick the playfield headless as fast as possible and print a report",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(root.logLevel)
			if err != nil {
				return err
			}

			cfg, err := playfield.LoadConfig(root.configPath)
			if err != nil {
				return err
			}
			cfg.EnemyCount = opts.entities

			stop, err := startProfile(opts.profile)
			if err != nil {
				return err
			}
			defer stop()

			report, err := runStress(cmd.Context(), cfg, opts, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "\n\n--- Stress Test Report ---")
			if err := report.Generate(out); err != nil {
				return eris.Wrap(err, "failed to generate report")
			}
			fmt.Fprintln(out, "--- End of Report ---")
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.duration, "duration", 10*time.Second, "The total duration the test should run for.")
	cmd.Flags().IntVar(&opts.entities, "entities", 10000, "The number of moving sprites to create.")
	cmd.Flags().BoolVar(&opts.gcPauseMetrics, "gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	cmd.Flags().StringVar(&opts.profile, "profile", "", "Write a pprof profile to the working directory (cpu or mem).")
	return cmd
}

func startProfile(mode string) (func(), error) {
	var option func(*profile.Profile)
	switch mode {
	case "":
		return func() {}, nil
	case "cpu":
		option = profile.CPUProfile
	case "mem":
		option = profile.MemProfileAllocs
	default:
		return nil, eris.Errorf("unknown profile mode %q, want cpu or mem", mode)
	}

	p := profile.Start(option, profile.ProfilePath("."), profile.NoShutdownHook)
	return p.Stop, nil
}

// stressKeys cycles through every direction, boosting on odd phases, so the
// input binder exercises all of its branches during a run.
func stressKeys(tick uint64) playfield.Keys {
	phase := tick / 30
	keys := playfield.Keys{playfield.KeyBoost: phase%2 == 1}
	switch phase % 4 {
	case 0:
		keys[playfield.KeyRight] = true
	case 1:
		keys[playfield.KeyDown] = true
	case 2:
		keys[playfield.KeyLeft] = true
	case 3:
		keys[playfield.KeyUp] = true
	}
	return keys
}

func runStress(ctx context.Context, cfg playfield.Config, opts *stressOptions, logger zerolog.Logger) (*Report, error) {
	logger.Info().Int("entities", cfg.EnemyCount).Msg("populating playfield")
	engine, err := playfield.NewEngine(cfg, playfield.DefaultLayout(cfg), playfield.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	buffer := engine.Screen().NewBuffer()

	report := &Report{
		Duration:       opts.duration,
		Entities:       engine.Manager().Len(),
		Screen:         engine.Screen(),
		GCPauseMetrics: opts.gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	logger.Info().Dur("duration", opts.duration).Msg("running simulation")
	ctx, cancel := context.WithTimeout(ctx, opts.duration)
	defer cancel()

	startTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			updateStart := time.Now()
			if err := engine.Tick(stressKeys(engine.Ticks()), buffer); err != nil {
				return nil, err
			}
			report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalUpdates = int64(engine.Ticks())
	report.UpdateTime.Finalize()
	report.Systems = engine.Stats().Systems
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info().Int64("updates", report.TotalUpdates).Msg("simulation finished")
	return report, nil
}
