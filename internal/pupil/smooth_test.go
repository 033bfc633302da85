package pupil

import (
	"math"
	"testing"
)

func dilationRows(values ...Reading) []Sample {
	rows := make([]Sample, len(values))
	for i, v := range values {
		rows[i] = Sample{TimeMs: float64(i), Dilation: v}
	}
	return rows
}

func TestSmooth(t *testing.T) {
	t.Run("constant series stays constant", func(t *testing.T) {
		rows := dilationRows(NewReading(2), NewReading(2), NewReading(2), NewReading(2), NewReading(2))
		got, err := Smooth(rows, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range got {
			if !got[i].Smooth.Valid || got[i].Smooth.Value != 2 {
				t.Errorf("row %d smooth = %v, want 2", i, got[i].Smooth)
			}
		}
	})

	t.Run("edges use truncated windows", func(t *testing.T) {
		rows := dilationRows(NewReading(1), NewReading(2), NewReading(3))
		got, err := Smooth(rows, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []float64{1.5, 2, 2.5}
		for i, w := range want {
			if !got[i].Smooth.Valid || math.Abs(got[i].Smooth.Value-w) > 1e-12 {
				t.Errorf("row %d smooth = %v, want %v", i, got[i].Smooth, w)
			}
		}
	})

	t.Run("missing values are skipped inside the window", func(t *testing.T) {
		rows := dilationRows(NewReading(1), MissingReading(), NewReading(3))
		got, err := Smooth(rows, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Middle window sees {1, missing, 3} -> 2.
		if !got[1].Smooth.Valid || got[1].Smooth.Value != 2 {
			t.Errorf("row 1 smooth = %v, want 2", got[1].Smooth)
		}
		// Edge windows see one valid neighbour each.
		if !got[0].Smooth.Valid || got[0].Smooth.Value != 1 {
			t.Errorf("row 0 smooth = %v, want 1", got[0].Smooth)
		}
		if !got[2].Smooth.Valid || got[2].Smooth.Value != 3 {
			t.Errorf("row 2 smooth = %v, want 3", got[2].Smooth)
		}
	})

	t.Run("all-missing window yields missing", func(t *testing.T) {
		rows := dilationRows(MissingReading(), MissingReading(), MissingReading())
		got, err := Smooth(rows, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range got {
			if got[i].Smooth.Valid {
				t.Errorf("row %d smooth = %v, want missing", i, got[i].Smooth)
			}
		}
	})

	t.Run("input rows are not mutated", func(t *testing.T) {
		rows := dilationRows(NewReading(1), NewReading(2))
		if _, err := Smooth(rows, 3); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i := range rows {
			if rows[i].Smooth.Valid {
				t.Errorf("input row %d gained a smooth value", i)
			}
		}
	})

	t.Run("even width rejected", func(t *testing.T) {
		if _, err := Smooth(dilationRows(NewReading(1)), 2); err == nil {
			t.Error("expected error for even width")
		}
		if _, err := Smooth(dilationRows(NewReading(1)), 0); err == nil {
			t.Error("expected error for zero width")
		}
	})
}
