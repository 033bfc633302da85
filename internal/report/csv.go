// Package report exports a processed session for downstream consumers:
// CSV for statistical tooling, an interactive HTML chart, and a static PNG
// plot.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/gazelab/pupil.report/internal/pupil"
)

// csvHeader is the column set consumed by the statistical analysis scripts.
var csvHeader = []string{
	"time", "dilation", "focus", "smooth", "segment",
	"epochs", "epoch_order", "vel", "subject", "correct",
}

// WriteCSV writes the processed table to w. Missing values render as "NA",
// matching the loader's input convention.
func WriteCSV(w io.Writer, samples []pupil.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, s := range samples {
		row := []string{
			strconv.FormatFloat(s.TimeMs, 'f', -1, 64),
			s.Dilation.String(),
			s.Focus,
			s.Smooth.String(),
			strconv.Itoa(s.Segment),
			s.Epoch,
			strconv.Itoa(s.EpochOrder),
			s.Velocity.String(),
			s.Subject,
			formatBool(s.Correct),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the processed table to a file at path.
func WriteCSVFile(path string, samples []pupil.Sample) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, samples); err != nil {
		return err
	}
	return f.Close()
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
