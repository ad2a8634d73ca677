package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-rcsim/internal/report"
	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

func newWatchCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Recompute on every parameter change read from stdin",
		Long: `watch reads parameter changes such as "frequency=1000" or
"resistance=470 capacitance=22" from stdin, one change set per line.
Each change starts a recomputation in the background; results of changes
that were overtaken by newer ones are dropped. Invalid parameter
combinations print an error line instead of numbers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runWatch(cmd)
		},
	}
	addParamFlags(cmd.Flags())
	return cmd
}

func (a *app) runWatch(cmd *cobra.Command) error {
	ctx := cmd.Context()
	tracker := impedance.NewTracker(impedance.WithLogger(a.log))

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		emitted uint64
	)
	emit := func(gen uint64, p impedance.Params, res *impedance.Result, err error) {
		mu.Lock()
		defer mu.Unlock()
		// A newer ticket may have published and printed between Wait
		// returning and this point.
		if gen <= emitted {
			return
		}
		if latest, latestErr := tracker.Latest(); latest != res || latestErr != err {
			return
		}
		emitted = gen
		if err != nil {
			fmt.Fprintf(a.out, "%s: invalid parameters: %v\n", p, err)
			return
		}
		if werr := a.writeWatchLine(res); werr != nil {
			a.log.Error().Err(werr).Msg("write result")
		}
	}

	// The ticket is taken before the goroutine starts, so submission order
	// is stdin order regardless of scheduling.
	submit := func(p impedance.Params) {
		ticket := tracker.Begin(p)
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := ticket.Wait(ctx)
			if errors.Is(err, impedance.ErrSuperseded) {
				return
			}
			emit(ticket.Generation(), p, res, err)
		}()
	}

	params := a.cfg.Params
	submit(params)

	scanner := bufio.NewScanner(a.in)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		next, err := applyChanges(params, text)
		if err != nil {
			mu.Lock()
			fmt.Fprintf(a.out, "line %d: %v\n", line, err)
			mu.Unlock()
			continue
		}
		params = next
		submit(params)
	}
	wg.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read parameter changes: %w", err)
	}

	a.log.Debug().Uint64("submissions", tracker.Generation()).Msg("watch finished")
	return nil
}

func (a *app) writeWatchLine(res *impedance.Result) error {
	if a.format == report.FormatJSON {
		b, err := json.Marshal(report.Summarize(res))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(a.out, "%s\n", b)
		return err
	}

	_, err := fmt.Fprintf(a.out, "%s: expected=%.6f ohm calculated=%.6f ohm\n",
		res.Params, res.Estimate.Theoretical, res.Estimate.Empirical)
	return err
}

// applyChanges applies whitespace separated key=value pairs to p.
func applyChanges(p impedance.Params, line string) (impedance.Params, error) {
	for _, field := range strings.Fields(line) {
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			return p, fmt.Errorf("expected key=value, got %q", field)
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return p, fmt.Errorf("%s: %q is not an integer", key, value)
		}

		switch strings.ToLower(key) {
		case "frequency", "f":
			p.Frequency = n
		case "cycles", "n":
			p.Cycles = n
		case "resistance", "r":
			p.Resistance = n
		case "capacitance", "c":
			p.Capacitance = n
		default:
			return p, fmt.Errorf("unknown parameter %q", key)
		}
	}
	return p, nil
}
