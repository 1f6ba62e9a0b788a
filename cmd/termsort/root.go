package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/termsort/config"
	"github.com/lixenwraith/termsort/sorting"
)

// options mirrors the command-line flags; only flags set by the user override the config
type options struct {
	configPath string
	algorithm  string
	min        int
	max        int
	length     int
	noColor    bool
	delay      time.Duration
	sound      bool
	volume     float64
	debug      bool
	seed       uint64
	list       bool
}

func newRootCmd() *cobra.Command {
	o := &options{}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "termsort",
		Short: "Visualization of sorting algorithms in a terminal",
		Long: `Visualization of sorting algorithms in a terminal.

A random array is drawn as vertical bars and every read and write the
algorithm makes is animated in place. Terminals without escape sequence
support get a plain full-redraw rendering.`,
		Example: `  # Quicksort with defaults sized to the terminal
  termsort

  # Merge sort of 30 values in [1, 15], slower frames
  termsort -a merge_sort -N 30 --max 15 -d 5ms

  # Plain rendering
  termsort -n`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, o)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "config file (default "+config.File()+")")
	f.StringVarP(&o.algorithm, "algorithm", "a", def.Algorithm,
		"sorting algorithm, one of: "+strings.Join(sorting.Names(), ", "))
	f.IntVar(&o.min, "min", def.Min, "minimum value of the generated array, must be greater than 0")
	f.IntVar(&o.max, "max", 0, "maximum value of the generated array (default half the terminal height)")
	f.IntVarP(&o.length, "length", "N", 0, "number of elements (default half the terminal width)")
	f.BoolVarP(&o.noColor, "no-color", "n", false, "plain rendering without escape sequences")
	f.DurationVarP(&o.delay, "delay", "d", def.Delay, "pause after every frame")
	f.BoolVar(&o.sound, "sound", false, "play a tone for every access")
	f.Float64Var(&o.volume, "volume", def.Volume, "tone volume between 0 and 1")
	f.BoolVar(&o.debug, "debug", false, "write a debug log to the log directory")
	f.Uint64Var(&o.seed, "seed", 0, "random seed (default time based)")
	f.BoolVarP(&o.list, "list", "l", false, "list the available algorithms and exit")

	return cmd
}

// apply overlays the flags the user actually set
func (o *options) apply(f *pflag.FlagSet, cfg *config.Config) {
	set := func(name string, fn func()) {
		if f.Changed(name) {
			fn()
		}
	}
	set("algorithm", func() { cfg.Algorithm = o.algorithm })
	set("min", func() { cfg.Min = o.min })
	set("max", func() { cfg.Max = o.max })
	set("length", func() { cfg.Length = o.length })
	set("no-color", func() { cfg.NoColor = o.noColor })
	set("delay", func() { cfg.Delay = o.delay })
	set("sound", func() { cfg.Sound = o.sound })
	set("volume", func() { cfg.Volume = o.volume })
	set("debug", func() { cfg.Debug = o.debug })
}

func listAlgorithms(cmd *cobra.Command) {
	for _, name := range sorting.Names() {
		suffix := ""
		if name == sorting.Default {
			suffix = " (default)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, suffix)
	}
}
