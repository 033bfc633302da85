package pupil

import "strconv"

// Reading is a pupil measurement that may be absent. Eye trackers drop
// samples during blinks and partial occlusions, so absence is a first-class
// state here rather than a NaN or magic value.
type Reading struct {
	Value float64
	Valid bool
}

// NewReading returns a present Reading holding v.
func NewReading(v float64) Reading {
	return Reading{Value: v, Valid: true}
}

// MissingReading returns an absent Reading.
func MissingReading() Reading {
	return Reading{}
}

// String renders the reading for diagnostics; missing values render as "NA".
func (r Reading) String() string {
	if !r.Valid {
		return "NA"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// meanReading averages the valid values among rs. The result is missing when
// every input is missing.
func meanReading(rs ...Reading) Reading {
	var sum float64
	var n int
	for _, r := range rs {
		if r.Valid {
			sum += r.Value
			n++
		}
	}
	if n == 0 {
		return MissingReading()
	}
	return NewReading(sum / float64(n))
}
