package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/cxlvinchau/probabilistic-model-checking/dtmc"
	"github.com/cxlvinchau/probabilistic-model-checking/internal/config"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes stateinfo and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		return usage(stderr, nil, err)
	}

	flags := flag.NewFlagSet("stateinfo", flag.ContinueOnError)
	flags.SetOutput(stderr)
	var (
		states  = flags.String("states", "", "Comma separated id[:name[:ap|ap]] entries (overrides DTMC_STATES)")
		format  = flags.String("format", "", "Output format: text, debug, dot or table (overrides DTMC_FORMAT)")
		verbose = flags.Bool("verbose", cfg.Verbose, "Enable verbose logging to stderr")
	)
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *states != "" {
		cfg.States = strings.Split(*states, ",")
	}
	if *format != "" {
		cfg.Format = *format
	}
	cfg.Verbose = *verbose

	if err := cfg.Validate(); err != nil {
		return usage(stderr, flags, err)
	}

	built, err := cfg.BuildStates()
	if err != nil {
		return usage(stderr, flags, err)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: level,
	}))

	set := dtmc.NewStateSet()
	for _, s := range built {
		if set.Has(s) {
			prev, _ := set.Get(s.ID())
			logger.Warn("duplicate state id", "id", s.ID(), "kept", prev.Name(), "dropped", s.Name())
			continue
		}
		set.Add(s)
		logger.Debug("state built", "id", s.ID(), "name", s.Name(), "ap", s.AP(), "hash", s.Hash())
	}
	logger.Info("states ready", "count", set.Len(), "format", cfg.Format)

	if err := render(stdout, cfg.Format, set); err != nil {
		logger.Error("failed to write output", "error", err)
		return 1
	}
	return 0
}

func usage(w io.Writer, flags *flag.FlagSet, err error) int {
	fmt.Fprintln(w, err)
	fmt.Fprintln(w, "Usage: stateinfo [-states 0:start:init,1] [-format text|debug|dot|table]")
	if flags != nil {
		flags.PrintDefaults()
	}
	return 1
}

func render(w io.Writer, format string, set dtmc.StateSet) error {
	switch format {
	case config.FormatDOT:
		return dtmc.WriteDOT(w, set)
	case config.FormatTable:
		return dtmc.WriteTable(w, set)
	case config.FormatDebug:
		for _, s := range set.Slice() {
			if _, err := fmt.Fprintf(w, "%#v\n", s); err != nil {
				return err
			}
		}
	default:
		for _, s := range set.Slice() {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
		}
	}
	return nil
}
