package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gazelab/pupil.report/internal/pupil"
)

// SavePNG writes a static timeseries plot of the raw and smoothed dilation
// to a PNG file. Missing values are skipped, which breaks the line exactly
// where the signal was lost.
func SavePNG(path string, samples []pupil.Sample, subject string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Pupil dilation (subject %s)", subject)
	p.X.Label.Text = "time (ms)"
	p.Y.Label.Text = "dilation (mm)"

	dilationLine, err := plotter.NewLine(signalPoints(samples, func(s pupil.Sample) pupil.Reading { return s.Dilation }))
	if err != nil {
		return fmt.Errorf("failed to build dilation line: %w", err)
	}
	dilationLine.Width = vg.Points(1)
	dilationLine.Color = color.RGBA{R: 160, G: 160, B: 160, A: 255}

	smoothLine, err := plotter.NewLine(signalPoints(samples, func(s pupil.Sample) pupil.Reading { return s.Smooth }))
	if err != nil {
		return fmt.Errorf("failed to build smooth line: %w", err)
	}
	smoothLine.Width = vg.Points(2)
	smoothLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(dilationLine, smoothLine)
	p.Legend.Add("dilation", dilationLine)
	p.Legend.Add("smooth", smoothLine)

	if err := p.Save(14*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save plot: %w", err)
	}
	return nil
}

func signalPoints(samples []pupil.Sample, pick func(pupil.Sample) pupil.Reading) plotter.XYs {
	pts := make(plotter.XYs, 0, len(samples))
	for _, s := range samples {
		r := pick(s)
		if !r.Valid {
			continue
		}
		pts = append(pts, plotter.XY{X: s.TimeMs, Y: r.Value})
	}
	return pts
}
