package pupil

import "fmt"

// AnnotateSegments assigns run-length segment numbers over the focus
// column: a new segment starts at row 0 and wherever the focus label
// differs from the previous row's. Segment numbers start at 1 and increase
// by one per run, so they partition the row indices into maximal runs of
// equal focus.
func AnnotateSegments(rows []Sample) []Sample {
	out := make([]Sample, len(rows))
	copy(out, rows)

	segment := 0
	for i := range out {
		if i == 0 || out[i].Focus != out[i-1].Focus {
			segment++
		}
		out[i].Segment = segment
	}
	return out
}

// AnnotateEpochs applies externally coded epoch boundaries to the table.
// spec.Breaks are row-index breakpoints; the interval between consecutive
// breakpoints takes the corresponding label from spec.Labels, and every row
// in that interval also gets the interval's 1-based ordinal.
//
// Epoch boundaries are recorded against a specific row-count snapshot of
// the recording, so the interval lengths must sum to exactly len(rows);
// anything else fails with ErrEpochRangeMismatch.
func AnnotateEpochs(rows []Sample, spec EpochSpec) ([]Sample, error) {
	if len(spec.Breaks) < 2 {
		return nil, fmt.Errorf("need at least 2 epoch breakpoints, got %d", len(spec.Breaks))
	}
	if len(spec.Labels) != len(spec.Breaks)-1 {
		return nil, fmt.Errorf("epoch labels/breakpoints mismatch: %d labels for %d breakpoints",
			len(spec.Labels), len(spec.Breaks))
	}

	widths := make([]int, len(spec.Labels))
	total := 0
	for i := range widths {
		w := spec.Breaks[i+1] - spec.Breaks[i]
		if w <= 0 {
			return nil, fmt.Errorf("epoch breakpoints must be strictly increasing: break[%d]=%d, break[%d]=%d",
				i, spec.Breaks[i], i+1, spec.Breaks[i+1])
		}
		widths[i] = w
		total += w
	}
	if total != len(rows) {
		return nil, fmt.Errorf("epoch intervals cover %d rows but table has %d: %w",
			total, len(rows), ErrEpochRangeMismatch)
	}

	out := make([]Sample, len(rows))
	copy(out, rows)

	row := 0
	for i, w := range widths {
		for j := 0; j < w; j++ {
			out[row].Epoch = spec.Labels[i]
			out[row].EpochOrder = i + 1
			row++
		}
	}
	return out, nil
}
