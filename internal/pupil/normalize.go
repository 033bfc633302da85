package pupil

// Normalize converts a raw trial recording into the normalised table:
// timestamps become milliseconds since the trial segment start, the two
// pupil diameters collapse into a single baseline-corrected dilation, and
// every raw column other than the AOI hit indicators is dropped.
//
// Row count and order are unchanged. Dilation is missing where both pupil
// readings are missing.
func Normalize(trial []RawSample, baseline float64) []NormalizedSample {
	out := make([]NormalizedSample, len(trial))
	for i, s := range trial {
		dilation := meanReading(s.Left, s.Right)
		if dilation.Valid {
			dilation.Value -= baseline
		}
		out[i] = NormalizedSample{
			TimeMs:   s.TimestampMs - s.SegmentStartMs,
			Dilation: dilation,
			Hits:     s.Hits,
		}
	}
	return out
}
