package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-rcsim/internal/config"
	"github.com/cwbudde/algo-rcsim/internal/report"
	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	configFile string
	cfg        config.Config
	format     report.Format
	log        zerolog.Logger
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut, log: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "simrc",
		Short: "Series RC impedance: theory versus spectral estimate",
		Long: `simrc computes the impedance magnitude of a series RC circuit from its
component values and compares it with the value recovered from simulated
waveforms: a sine voltage sampled at 100 points per period, the current it
drives, and the ratio of their peak single-sided spectral amplitudes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "YAML config file")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.StringP("output", "o", "text", "output format (text, markdown, json, yaml)")

	root.AddCommand(
		newCompareCmd(a),
		newSweepCmd(a),
		newWatchCmd(a),
	)
	return root
}

// init merges flags, environment and config file into a.cfg and sets up
// logging. It runs before every subcommand.
func (a *app) init(cmd *cobra.Command) error {
	v := config.New()

	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKey(f.Name)
		if !ok || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return bindErr
	}

	cfg, err := config.Load(v, a.configFile)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.Output)
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	a.cfg = cfg
	a.format = format
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: a.errOut}).
		Level(level).
		With().
		Timestamp().
		Str("cmd", cmd.Name()).
		Logger()

	a.log.Debug().
		Str("config", a.configFile).
		Str("params", cfg.Params.String()).
		Str("output", cfg.Output).
		Msg("configuration loaded")
	return nil
}

// flagKey maps a flag name to its config key.
func flagKey(name string) (string, bool) {
	switch name {
	case "config", "help":
		return "", false
	case "from":
		return config.KeySweepFrom, true
	case "to":
		return config.KeySweepTo, true
	case "step":
		return config.KeySweepStep, true
	default:
		return strings.ReplaceAll(name, "-", "_"), true
	}
}

func addParamFlags(fs *pflag.FlagSet) {
	p := impedance.DefaultParams()
	fs.IntP("frequency", "f", p.Frequency,
		fmt.Sprintf("drive frequency in Hz [%d, %d]", impedance.MinFrequency, impedance.MaxFrequency))
	fs.IntP("cycles", "n", p.Cycles,
		fmt.Sprintf("number of simulated periods [%d, %d]", impedance.MinCycles, impedance.MaxCycles))
	fs.IntP("resistance", "r", p.Resistance,
		fmt.Sprintf("resistance in ohms [%d, %d]", impedance.MinResistance, impedance.MaxResistance))
	fs.IntP("capacitance", "c", p.Capacitance,
		fmt.Sprintf("capacitance in nF [%d, %d]", impedance.MinCapacitance, impedance.MaxCapacitance))
}
