package pupil

import "github.com/gazelab/pupil.report/internal/monitoring"

// Consolidate replaces the per-AOI hit indicator columns with a single
// categorical focus label. Hits are coalesced in the order given by
// aoi.Names: the first AOI whose indicator is 1 wins, and rows hitting no
// AOI get FocusOther.
//
// At most one indicator should be 1 per row; the tracker occasionally emits
// rows violating that, which are logged as malformed and resolved by the
// first-configured-AOI tie-break rather than rejected.
func Consolidate(rows []NormalizedSample, aoi AOIConfig) []Sample {
	out := make([]Sample, len(rows))
	for i, r := range rows {
		focus := FocusOther
		hits := 0
		for _, name := range aoi.Names {
			h, present := r.Hits[name]
			if !present || !h.Valid || h.Value != 1 {
				continue
			}
			hits++
			if focus == FocusOther {
				focus = name
			}
		}
		if hits > 1 {
			monitoring.Logf("malformed AOI row %d: %d simultaneous hits, keeping %q", i, hits, focus)
		}
		out[i] = Sample{
			TimeMs:   r.TimeMs,
			Dilation: r.Dilation,
			Focus:    focus,
		}
	}
	return out
}
