package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-rcsim/measure/impedance"
)

// Figure file names written by WritePlots.
const (
	WaveformsFile = "waveforms.png"
	SpectraFile   = "spectra.png"
)

const (
	figureWidth  = 8 * vg.Inch
	figureHeight = 6 * vg.Inch
)

// WritePlots renders the time traces and the amplitude spectra of res into
// dir and returns the written paths.
func WritePlots(dir string, res *impedance.Result) ([]string, error) {
	if res == nil {
		return nil, errors.New("report: nil result")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	figures := []struct {
		name   string
		render func(io.Writer, *impedance.Result) error
	}{
		{WaveformsFile, RenderWaveforms},
		{SpectraFile, RenderSpectra},
	}

	paths := make([]string, 0, len(figures))
	for _, fig := range figures {
		path := filepath.Join(dir, fig.name)
		if err := writeFigure(path, res, fig.render); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFigure(path string, res *impedance.Result, render func(io.Writer, *impedance.Result) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f, res)
}

// RenderWaveforms draws voltage and current against time as a PNG.
func RenderWaveforms(w io.Writer, res *impedance.Result) error {
	t := res.Waveform.Times

	top, err := linePlot("V_in", "Time (s)", "Voltage (V)", t, res.Waveform.Voltage, false)
	if err != nil {
		return err
	}
	bottom, err := linePlot("I_out", "Time (s)", "Current (A)", t, res.Current, false)
	if err != nil {
		return err
	}
	return renderStack(w, top, bottom)
}

// RenderSpectra draws the single-sided amplitude spectra of voltage and
// current as a PNG.
func RenderSpectra(w io.Writer, res *impedance.Result) error {
	freqs := res.VoltageSpectrum.Frequencies(res.Waveform.SampleRate)

	top, err := linePlot("Fourier transform of V_in", "Frequency (Hz)", "Amplitude", freqs, res.VoltageSpectrum.Bins, true)
	if err != nil {
		return err
	}
	bottom, err := linePlot("Fourier transform of I_out", "Frequency (Hz)", "Amplitude", freqs, res.CurrentSpectrum.Bins, true)
	if err != nil {
		return err
	}
	return renderStack(w, top, bottom)
}

func linePlot(title, xLabel, yLabel string, x, y []float64, points bool) (*plot.Plot, error) {
	if len(x) != len(y) {
		return nil, fmt.Errorf("report: plot %q length mismatch: %d != %d", title, len(x), len(y))
	}

	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	if points {
		line, scatter, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Radius = vg.Points(1.5)
		p.Add(line, scatter)
		return p, nil
	}

	line, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

func renderStack(w io.Writer, top, bottom *plot.Plot) error {
	img := vgimg.New(figureWidth, figureHeight)
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows:      2,
		Cols:      1,
		PadX:      vg.Millimeter,
		PadY:      4 * vg.Millimeter,
		PadTop:    2 * vg.Millimeter,
		PadBottom: 2 * vg.Millimeter,
		PadLeft:   2 * vg.Millimeter,
		PadRight:  2 * vg.Millimeter,
	}

	plots := [][]*plot.Plot{{top}, {bottom}}
	canvases := plot.Align(plots, tiles, dc)
	for j := range plots {
		plots[j][0].Draw(canvases[j][0])
	}

	png := vgimg.PngCanvas{Canvas: img}
	_, err := png.WriteTo(w)
	return err
}
