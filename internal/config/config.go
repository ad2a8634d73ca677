// Package config loads simrc settings from defaults, an optional YAML file,
// SIMRC_* environment variables and command-line flags, in increasing order
// of precedence.
package config

import (
	"fmt"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

// EnvPrefix is prepended to every environment variable, e.g. SIMRC_FREQUENCY.
const EnvPrefix = "SIMRC"

// Keys understood by Load.
const (
	KeyFrequency   = "frequency"
	KeyCycles      = "cycles"
	KeyResistance  = "resistance"
	KeyCapacitance = "capacitance"
	KeyOutput      = "output"
	KeyPlotDir     = "plot_dir"
	KeyLogLevel    = "log_level"
	KeyConcurrency = "concurrency"
	KeySweepFrom   = "sweep.from"
	KeySweepTo     = "sweep.to"
	KeySweepStep   = "sweep.step"
)

// Formats lists the accepted values of the output setting.
var Formats = []string{"text", "markdown", "json", "yaml"}

// LogLevels lists the accepted values of the log level setting.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config holds everything a simrc run needs.
type Config struct {
	Params      impedance.Params
	Output      string
	PlotDir     string
	LogLevel    string
	Concurrency int
	Sweep       SweepConfig
}

// SweepConfig holds the frequency range of the sweep command.
type SweepConfig struct {
	From int
	To   int
	Step int
}

// New returns a viper instance with defaults and environment binding in place.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	p := impedance.DefaultParams()
	v.SetDefault(KeyFrequency, p.Frequency)
	v.SetDefault(KeyCycles, p.Cycles)
	v.SetDefault(KeyResistance, p.Resistance)
	v.SetDefault(KeyCapacitance, p.Capacitance)
	v.SetDefault(KeyOutput, "text")
	v.SetDefault(KeyPlotDir, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyConcurrency, runtime.NumCPU())
	v.SetDefault(KeySweepFrom, 100)
	v.SetDefault(KeySweepTo, 10000)
	v.SetDefault(KeySweepStep, 100)
}

// Load reads file (if not empty) into v and decodes the merged settings.
//
// Circuit parameters are not range checked here; that is left to
// [impedance.Params.Validate] so the CLI reports the same typed errors as
// the library.
func Load(v *viper.Viper, file string) (Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := Config{
		Params: impedance.Params{
			Frequency:   v.GetInt(KeyFrequency),
			Cycles:      v.GetInt(KeyCycles),
			Resistance:  v.GetInt(KeyResistance),
			Capacitance: v.GetInt(KeyCapacitance),
		},
		Output:      strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		PlotDir:     v.GetString(KeyPlotDir),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel))),
		Concurrency: v.GetInt(KeyConcurrency),
		Sweep: SweepConfig{
			From: v.GetInt(KeySweepFrom),
			To:   v.GetInt(KeySweepTo),
			Step: v.GetInt(KeySweepStep),
		},
	}

	if !slices.Contains(Formats, cfg.Output) {
		return Config{}, fmt.Errorf("unknown output format %q (want one of %s)", cfg.Output, strings.Join(Formats, ", "))
	}
	if !slices.Contains(LogLevels, cfg.LogLevel) {
		return Config{}, fmt.Errorf("unknown log level %q (want one of %s)", cfg.LogLevel, strings.Join(LogLevels, ", "))
	}

	return cfg, nil
}
