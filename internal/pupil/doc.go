// Package pupil implements the signal-processing pipeline that turns a raw
// pupillometry recording into a cleaned, annotated sample table.
//
// The pipeline runs six stages in a fixed order: baseline estimation from a
// calibration recording, dilation normalisation, AOI consolidation into a
// categorical focus label, rolling-mean smoothing, segment/epoch annotation,
// and a median/MAD velocity filter that removes blink artifacts. Each stage
// is a pure function from an input table to a new output table; Pipeline.Run
// sequences them and wraps any failure with the name of the failing stage.
//
// Missing pupil readings are carried as explicit Reading values rather than
// sentinel floats, and every aggregation in this package skips missing
// values rather than propagating them.
package pupil
