package pupil

import "fmt"

// Pipeline sequences the six processing stages over one recording session.
// Each stage consumes the previous stage's table and produces a new one;
// no stage mutates its input, so partial results never leak on error.
type Pipeline struct {
	cfg Config
}

// NewPipeline validates the configuration and returns a ready pipeline.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if len(cfg.AOI.Names) == 0 {
		return nil, fmt.Errorf("at least one AOI name is required")
	}
	if cfg.BaselineWindow <= 0 {
		return nil, fmt.Errorf("baseline window must be positive, got %d", cfg.BaselineWindow)
	}
	if cfg.SmoothWidth <= 0 || cfg.SmoothWidth%2 == 0 {
		return nil, fmt.Errorf("smoothing width must be a positive odd number, got %d", cfg.SmoothWidth)
	}
	if cfg.MADScale <= 0 {
		return nil, fmt.Errorf("MAD scale must be positive, got %g", cfg.MADScale)
	}
	return &Pipeline{cfg: cfg}, nil
}

// Result is the output of a full pipeline run.
type Result struct {
	// Baseline is the resting dilation estimated from the calibration
	// recording, in mm.
	Baseline float64

	// Samples is the final processed table: time-ordered, blink rows
	// removed, all columns populated.
	Samples []Sample

	// RawRows and FilteredRows record the trial row count before and after
	// blink removal.
	RawRows      int
	FilteredRows int
}

// Run executes every stage in order. Any stage failure aborts the run and
// is wrapped with the stage name so callers can tell which invariant broke.
//
// The epoch breakpoints must be coded against the trial's full row count:
// epochs are applied before the blink filter removes any rows.
func (p *Pipeline) Run(calibration, trial []RawSample, epochs EpochSpec) (*Result, error) {
	baseline, err := EstimateBaseline(calibration, p.cfg.BaselineWindow)
	if err != nil {
		return nil, fmt.Errorf("baseline: %w", err)
	}

	normalized := Normalize(trial, baseline)
	table := Consolidate(normalized, p.cfg.AOI)

	table, err = Smooth(table, p.cfg.SmoothWidth)
	if err != nil {
		return nil, fmt.Errorf("smooth: %w", err)
	}

	table = AnnotateSegments(table)

	table, err = AnnotateEpochs(table, epochs)
	if err != nil {
		return nil, fmt.Errorf("annotate epochs: %w", err)
	}

	table = ComputeVelocity(table)
	filtered := FilterBlinks(table, p.cfg.MADScale)

	out := make([]Sample, len(filtered))
	copy(out, filtered)
	for i := range out {
		out[i].Subject = p.cfg.Meta.Subject
		out[i].Correct = p.cfg.Meta.Correct
	}

	return &Result{
		Baseline:     baseline,
		Samples:      out,
		RawRows:      len(trial),
		FilteredRows: len(out),
	}, nil
}
