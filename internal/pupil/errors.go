package pupil

import "errors"

// Sentinel errors surfaced by pipeline stages. Stages wrap these with
// fmt.Errorf("...: %w", ...) so callers can both match with errors.Is and
// read which invariant broke, and Pipeline.Run prefixes the stage name.
var (
	// ErrInsufficientData means an aggregation window contained no usable
	// values, e.g. a calibration recording whose trailing window is all
	// missing.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrEpochRangeMismatch means the supplied epoch breakpoints do not
	// partition the table: their interval lengths do not sum to the row
	// count at annotation time.
	ErrEpochRangeMismatch = errors.New("epoch ranges do not match row count")
)
