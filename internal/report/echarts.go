package report

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/gazelab/pupil.report/internal/pupil"
)

// RenderHTML renders an interactive dilation chart for one session to w:
// raw and smoothed dilation over trial time, with epoch transitions marked
// in the subtitle. Missing values render as gaps rather than zeros.
func RenderHTML(w io.Writer, samples []pupil.Sample, subject string) error {
	times := make([]string, len(samples))
	dilation := make([]opts.LineData, len(samples))
	smooth := make([]opts.LineData, len(samples))
	for i, s := range samples {
		times[i] = strconv.FormatFloat(s.TimeMs, 'f', 0, 64)
		dilation[i] = opts.LineData{Value: lineValue(s.Dilation)}
		smooth[i] = opts.LineData{Value: lineValue(s.Smooth)}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Pupil Dilation",
			Width:     "1200px",
			Height:    "500px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Baseline-corrected pupil dilation",
			Subtitle: fmt.Sprintf("subject=%s rows=%d epochs=%s", subject, len(samples), epochSummary(samples)),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "time (ms)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "dilation (mm)"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	line.SetXAxis(times).
		AddSeries("dilation", dilation).
		AddSeries("smooth", smooth,
			charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}))

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// WriteHTMLFile renders the dilation chart to a standalone HTML file.
func WriteHTMLFile(path string, samples []pupil.Sample, subject string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := RenderHTML(f, samples, subject); err != nil {
		return err
	}
	return f.Close()
}

// lineValue converts a Reading for echarts: missing values become nil so
// the series breaks instead of dropping to zero.
func lineValue(r pupil.Reading) interface{} {
	if !r.Valid {
		return nil
	}
	return r.Value
}

// epochSummary compacts the epoch sequence for the chart subtitle, e.g.
// "intro>puzzle>debrief".
func epochSummary(samples []pupil.Sample) string {
	out := ""
	last := ""
	for _, s := range samples {
		if s.Epoch == last {
			continue
		}
		if out != "" {
			out += ">"
		}
		out += s.Epoch
		last = s.Epoch
	}
	return out
}
