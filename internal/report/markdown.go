package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

func writeSummaryMarkdown(w io.Writer, s Summary) error {
	md := markdown.NewMarkdown(w)

	md.H1("RC Circuit Impedance")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Frequency", strconv.Itoa(s.Frequency) + " Hz"},
			{"Cycles", strconv.Itoa(s.Cycles)},
			{"Resistance", strconv.Itoa(s.Resistance) + " Ω"},
			{"Capacitance", strconv.Itoa(s.Capacitance) + " nF"},
			{"Samples", fmt.Sprintf("%d @ %.0f Hz", s.Samples, s.SampleRate)},
		},
	})
	md.PlainText("")

	md.H2("Impedance")
	md.PlainText("")
	md.BulletList(
		fmt.Sprintf("Expected Impedance: %.6f Ω", s.Theoretical),
		fmt.Sprintf("Calculated Impedance: %.6f Ω", s.Empirical),
		fmt.Sprintf("Deviation: %.3e", s.Deviation),
	)
	md.PlainText("")

	return md.Build()
}

func writeSweepMarkdown(w io.Writer, base impedance.Params, rows []SweepRow) error {
	md := markdown.NewMarkdown(w)

	md.H1("RC Circuit Impedance Sweep")
	md.PlainText("")
	md.PlainText(fmt.Sprintf("cycles=%d, R=%d Ω, C=%d nF", base.Cycles, base.Resistance, base.Capacitance))
	md.PlainText("")

	table := make([][]string, len(rows))
	for i, r := range rows {
		table[i] = []string{
			strconv.Itoa(r.Frequency),
			strconv.Itoa(r.Samples),
			fmt.Sprintf("%.6f", r.Theoretical),
			fmt.Sprintf("%.6f", r.Empirical),
			fmt.Sprintf("%.3e", r.Deviation),
		}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Frequency [Hz]", "Samples", "Expected [Ω]", "Calculated [Ω]", "Deviation"},
		Rows:   table,
	})
	md.PlainText("")

	return md.Build()
}
