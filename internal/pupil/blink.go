package pupil

import "github.com/gazelab/pupil.report/internal/monitoring"

// ComputeVelocity adds the velocity column: the rate of change of the
// smoothed dilation between consecutive rows, in mm/ms. The first row's
// velocity is undefined, as is any row where either endpoint's smooth value
// is missing or the timestamps do not advance.
func ComputeVelocity(rows []Sample) []Sample {
	out := make([]Sample, len(rows))
	copy(out, rows)

	for i := range out {
		out[i].Velocity = MissingReading()
		if i == 0 {
			continue
		}
		prev, cur := out[i-1], out[i]
		dt := cur.TimeMs - prev.TimeMs
		if !prev.Smooth.Valid || !cur.Smooth.Valid || dt <= 0 {
			continue
		}
		out[i].Velocity = NewReading((cur.Smooth.Value - prev.Smooth.Value) / dt)
	}
	return out
}

// FilterBlinks removes rows whose velocity is an outlier. Blinks show up as
// physiologically impossible dilation slopes, so the bounds come from robust
// statistics: median(vel) ± madScale·MAD(vel). Rows survive when their
// velocity lies strictly inside the bounds or is undefined, so only
// confirmed outliers are removed. Relative row order is preserved.
//
// Two degenerate inputs short-circuit to "remove nothing": fewer than two
// defined velocities (nothing to compare), and MAD of zero (the bounds
// collapse to a point and would erase the whole table). Both are logged.
func FilterBlinks(rows []Sample, madScale float64) []Sample {
	vels := make([]float64, 0, len(rows))
	for _, r := range rows {
		if r.Velocity.Valid {
			vels = append(vels, r.Velocity.Value)
		}
	}
	if len(vels) < 2 {
		monitoring.Logf("blink filter: only %d defined velocities, keeping all %d rows", len(vels), len(rows))
		return rows
	}

	med := median(vels)
	dev := mad(vels, med)
	if dev == 0 {
		monitoring.Logf("blink filter: velocity MAD is zero (median %g), keeping all %d rows", med, len(rows))
		return rows
	}

	lower := med - madScale*dev
	upper := med + madScale*dev

	out := make([]Sample, 0, len(rows))
	for _, r := range rows {
		if !r.Velocity.Valid || (lower < r.Velocity.Value && r.Velocity.Value < upper) {
			out = append(out, r)
		}
	}
	return out
}
