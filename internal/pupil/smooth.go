package pupil

import "fmt"

// Smooth adds the rolling-mean column: each row's smooth value is the mean
// of the dilation values inside a centered window of the given width,
// skipping missing values. At the series edges the window truncates to the
// in-bounds neighbours instead of going missing, so the first and last rows
// still get a value. A window that is all-missing yields a missing result.
//
// width must be odd so the window centers on the current row.
func Smooth(rows []Sample, width int) ([]Sample, error) {
	if width <= 0 || width%2 == 0 {
		return nil, fmt.Errorf("smoothing width must be a positive odd number, got %d", width)
	}

	half := width / 2
	out := make([]Sample, len(rows))
	copy(out, rows)

	for i := range rows {
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(rows)-1 {
			hi = len(rows) - 1
		}

		window := make([]Reading, 0, hi-lo+1)
		for j := lo; j <= hi; j++ {
			window = append(window, rows[j].Dilation)
		}
		if mean, ok := meanValid(window); ok {
			out[i].Smooth = NewReading(mean)
		} else {
			out[i].Smooth = MissingReading()
		}
	}
	return out, nil
}
