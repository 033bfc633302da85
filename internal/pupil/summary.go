package pupil

import (
	"encoding/json"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// SignalStats summarises the distribution of one signal column, computed
// over its defined values only.
type SignalStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

// RunSummary holds aggregate statistics for one processed session, suitable
// for CLI output and database storage alongside the sample table.
type RunSummary struct {
	Baseline     float64 `json:"baseline_mm"`
	RawRows      int     `json:"raw_rows"`
	FilteredRows int     `json:"filtered_rows"`
	RemovedRows  int     `json:"removed_rows"`

	Segments int `json:"segments"`
	Epochs   int `json:"epochs"`

	// FocusCounts is the number of retained rows per focus label.
	FocusCounts map[string]int `json:"focus_counts"`

	Dilation SignalStats `json:"dilation_mm"`
	Velocity SignalStats `json:"velocity_mm_per_ms"`
}

// Summarize computes aggregate statistics from a pipeline result.
func Summarize(res *Result) *RunSummary {
	summary := &RunSummary{
		Baseline:     res.Baseline,
		RawRows:      res.RawRows,
		FilteredRows: res.FilteredRows,
		RemovedRows:  res.RawRows - res.FilteredRows,
		FocusCounts:  make(map[string]int),
	}

	var dilations, velocities []Reading
	maxSegment, maxEpoch := 0, 0
	for _, s := range res.Samples {
		summary.FocusCounts[s.Focus]++
		dilations = append(dilations, s.Dilation)
		velocities = append(velocities, s.Velocity)
		if s.Segment > maxSegment {
			maxSegment = s.Segment
		}
		if s.EpochOrder > maxEpoch {
			maxEpoch = s.EpochOrder
		}
	}
	summary.Segments = maxSegment
	summary.Epochs = maxEpoch
	summary.Dilation = summarizeSignal(dilations)
	summary.Velocity = summarizeSignal(velocities)

	return summary
}

func summarizeSignal(rs []Reading) SignalStats {
	vals := validValues(rs)
	if len(vals) == 0 {
		return SignalStats{}
	}

	sorted := make([]float64, len(vals))
	copy(sorted, vals)
	sort.Float64s(sorted)

	return SignalStats{
		Count:  len(vals),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(vals, nil),
		StdDev: stat.StdDev(vals, nil),
		P50:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
}

// ToJSON serialises the summary for database storage.
func (rs *RunSummary) ToJSON() (string, error) {
	data, err := json.Marshal(rs)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ParseRunSummary deserialises a stored summary.
func ParseRunSummary(jsonStr string) (*RunSummary, error) {
	var summary RunSummary
	if err := json.Unmarshal([]byte(jsonStr), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
