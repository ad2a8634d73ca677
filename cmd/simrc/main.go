// Command simrc compares the theoretical impedance of a series RC circuit
// with the impedance recovered from simulated voltage and current spectra.
//
// Usage:
//
//	simrc compare [flags]
//	simrc sweep [flags]
//	simrc watch [flags]
//
// Examples:
//
//	simrc compare --frequency 1000 --cycles 2 --resistance 100 --capacitance 100
//	simrc compare -f 440 -o markdown --plot-dir ./plots
//	simrc sweep --from 100 --to 5000 --step 100 -o json
//	printf 'frequency=1000\nresistance=470\n' | simrc watch
//
// Settings can also come from a YAML file (--config) or SIMRC_* environment
// variables, e.g. SIMRC_FREQUENCY=1000.
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		logger.Error().Err(err).Msg("simrc failed")
		os.Exit(1)
	}
}
