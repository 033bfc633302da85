package pupil

// FocusOther is the focus label assigned to rows where no AOI was hit.
const FocusOther = "other"

// RawSample is one row of a recording as delivered by the loader: a
// timestamp, the two pupil diameters, the trial segment start, and one hit
// indicator per configured AOI keyed by AOI name.
type RawSample struct {
	TimestampMs    float64
	SegmentStartMs float64
	Left           Reading
	Right          Reading

	// Hits holds the binary AOI hit indicators (0, 1 or missing) keyed by
	// AOI name. Iteration order is taken from AOIConfig.Names, never from
	// the map itself.
	Hits map[string]Reading
}

// NormalizedSample is the dilation normaliser's output row: trial-relative
// time, baseline-corrected dilation, and the AOI hit indicators carried
// forward for consolidation. All other raw columns are dropped here.
type NormalizedSample struct {
	TimeMs   float64
	Dilation Reading
	Hits     map[string]Reading
}

// Sample is one row of the processed table. Columns are added stage by
// stage; only the blink filter ever removes rows.
type Sample struct {
	TimeMs     float64
	Dilation   Reading
	Focus      string
	Smooth     Reading
	Segment    int
	Epoch      string
	EpochOrder int
	// Velocity is the rate of change of Smooth in mm/ms. Undefined for the
	// first row and wherever a neighbouring smooth value is missing.
	Velocity Reading
	Subject  string
	Correct  bool
}

// AOIConfig maps AOI names to recording columns. Names is ordered: the
// consolidator coalesces hits in this order, so it also defines the
// tie-break when a malformed row hits several AOIs at once.
type AOIConfig struct {
	Names []string
}

// EpochSpec carries the externally coded epoch boundaries: row-index
// breakpoints (first conceptually 0, last equal to the row count) and one
// label per interval between consecutive breakpoints.
type EpochSpec struct {
	Breaks []int
	Labels []string
}

// SessionMeta is constant per-session metadata stamped onto every output row.
type SessionMeta struct {
	Subject string
	Correct bool
}

// Config holds the tunable parameters of the pipeline.
type Config struct {
	AOI AOIConfig

	// BaselineWindow is the number of trailing calibration samples averaged
	// into the baseline (24 samples is roughly 400ms at 60Hz).
	BaselineWindow int

	// SmoothWidth is the rolling-mean window width. Must be odd so the
	// window is centered on the current sample.
	SmoothWidth int

	// MADScale is the number of median absolute deviations either side of
	// the median velocity that still counts as physiologically plausible.
	MADScale float64

	Meta SessionMeta
}

// DefaultConfig returns the standard pipeline parameters for a 60Hz
// recording.
func DefaultConfig(aoi AOIConfig, meta SessionMeta) Config {
	return Config{
		AOI:            aoi,
		BaselineWindow: 24,
		SmoothWidth:    3,
		MADScale:       3.0,
		Meta:           meta,
	}
}
