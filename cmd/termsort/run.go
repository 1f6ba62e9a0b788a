package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/termsort/audio"
	"github.com/lixenwraith/termsort/config"
	"github.com/lixenwraith/termsort/logger"
	"github.com/lixenwraith/termsort/render"
	"github.com/lixenwraith/termsort/sorting"
	"github.com/lixenwraith/termsort/terminal"
	"github.com/lixenwraith/termsort/visual"
)

// Exit codes
const (
	exitFailure     = 1
	exitInterrupted = 130
)

func run(cmd *cobra.Command, o *options) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}
	o.apply(cmd.Flags(), &cfg)

	if o.list {
		listAlgorithms(cmd)
		return nil
	}

	algorithm, err := sorting.Lookup(cfg.Algorithm)
	if err != nil {
		return err
	}

	backend := terminal.NewBackend(os.Stdout)
	columns, lines := backend.Size()
	bounds, err := cfg.Resolve(columns, lines)
	if err != nil {
		fmt.Fprintf(out, "Error. %v\n", err)
		var be *config.BoundsError
		if errors.As(err, &be) && be.TerminalSize {
			fmt.Fprintf(out, "Your terminal size is (%d, %d)\n", columns, lines)
		}
		return &exitError{code: exitFailure}
	}

	closer, err := logger.Setup(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	ansi := !cfg.NoColor && terminal.SupportsANSI(os.Stdout)
	theme, err := cfg.BuildTheme(terminal.DetectColorMode())
	if err != nil {
		return err
	}

	seed := o.seed
	if !cmd.Flags().Changed("seed") {
		seed = uint64(time.Now().UnixNano())
	}
	values := generate(rand.New(rand.NewPCG(seed, seed>>1)), bounds)

	logger.Logger.Info().
		Str("algorithm", cfg.Algorithm).
		Bool("ansi", ansi).
		Int("columns", columns).Int("lines", lines).
		Int("length", bounds.Length).Int("min", bounds.Min).Int("max", bounds.Max).
		Uint64("seed", seed).
		Dur("delay", cfg.Delay).
		Msg("starting")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	em := render.NewEmitter(ctx, backend, cfg.Delay)
	strategy := render.New(ansi, em, theme)

	var opts []visual.Option
	if cfg.Sound {
		player := audio.NewPlayer(cfg.Volume)
		if err := player.Start(); err != nil {
			logger.Logger.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer player.Close()
			opts = append(opts, visual.WithTone(player))
		}
	}

	res, err := animate(values, strategy, algorithm, opts)
	if err != nil {
		return abort(out, backend, ansi, err)
	}

	if err := terminal.Restore(backend, ansi); err != nil {
		return err
	}
	logger.Logger.Info().
		Dur("elapsed", res.Elapsed).
		Int("reads", res.Reads).Int("writes", res.Writes).
		Int("frames", em.Frames()).Int("bytes", em.Bytes()).
		Msg("finished")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Sorted and visualized for", res.Elapsed)
	fmt.Fprintln(out, "Original array", res.Original)
	fmt.Fprintln(out, "Sorted array", res.Sorted)
	return nil
}

func animate(values []int, strategy render.Strategy, algorithm sorting.Func, opts []visual.Option) (visual.Result, error) {
	arr, err := visual.New(values, strategy, opts...)
	if err != nil {
		return visual.Result{}, err
	}
	return visual.Sort(arr, algorithm)
}

// abort clears the animation and reports why it stopped
func abort(out io.Writer, backend terminal.Backend, ansi bool, err error) error {
	logger.Logger.Error().Err(err).Msg("animation aborted")

	terminal.Restore(backend, ansi)
	switch {
	case errors.Is(err, render.ErrGeometryChanged):
		terminal.Clear(backend, ansi)
		fmt.Fprintln(out, render.GeometryChangedMessage)
		return &exitError{code: exitFailure}
	case errors.Is(err, render.ErrInterrupted):
		terminal.Clear(backend, ansi)
		fmt.Fprintln(out, render.InterruptedMessage)
		return &exitError{code: exitInterrupted}
	default:
		return err
	}
}

// generate draws b.Length values uniformly from [b.Min, b.Max]
func generate(rng *rand.Rand, b config.Bounds) []int {
	values := make([]int, b.Length)
	for i := range values {
		values[i] = b.Min + rng.IntN(b.Max-b.Min+1)
	}
	return values
}
