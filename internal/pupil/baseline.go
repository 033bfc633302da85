package pupil

import "fmt"

// EstimateBaseline computes the resting pupil dilation from a calibration
// recording: the mean over the trailing window of per-row left/right
// averages, skipping missing values at both levels.
//
// A calibration recording shorter than the window is not an error; all
// available rows are used. EstimateBaseline fails with ErrInsufficientData
// only when the trailing window contains no usable value at all.
func EstimateBaseline(calibration []RawSample, window int) (float64, error) {
	if window <= 0 {
		return 0, fmt.Errorf("baseline window must be positive, got %d", window)
	}
	if len(calibration) == 0 {
		return 0, fmt.Errorf("empty calibration recording: %w", ErrInsufficientData)
	}

	averaged := make([]Reading, len(calibration))
	for i, s := range calibration {
		averaged[i] = meanReading(s.Left, s.Right)
	}

	start := len(averaged) - window
	if start < 0 {
		start = 0
	}
	tail := averaged[start:]

	mean, ok := meanValid(tail)
	if !ok {
		return 0, fmt.Errorf("no valid pupil readings in trailing %d calibration rows (rows %d-%d): %w",
			len(tail), start, len(averaged)-1, ErrInsufficientData)
	}
	return mean, nil
}
