package pupil

import (
	"math"
	"testing"
)

func TestMedian(t *testing.T) {
	t.Run("odd length", func(t *testing.T) {
		got := median([]float64{3, 1, 2})
		if got != 2 {
			t.Errorf("median = %v, want 2", got)
		}
	})

	t.Run("even length averages middle pair", func(t *testing.T) {
		got := median([]float64{4, 1, 3, 2})
		if got != 2.5 {
			t.Errorf("median = %v, want 2.5", got)
		}
	})

	t.Run("single value", func(t *testing.T) {
		if got := median([]float64{7}); got != 7 {
			t.Errorf("median = %v, want 7", got)
		}
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := []float64{3, 1, 2}
		median(in)
		if in[0] != 3 || in[1] != 1 || in[2] != 2 {
			t.Errorf("input reordered: %v", in)
		}
	})
}

func TestMAD(t *testing.T) {
	// values [1,2,3,4,100], median 3, deviations [2,1,0,1,97], MAD 1
	values := []float64{1, 2, 3, 4, 100}
	med := median(values)
	if med != 3 {
		t.Fatalf("median = %v, want 3", med)
	}
	if got := mad(values, med); got != 1 {
		t.Errorf("mad = %v, want 1", got)
	}
}

func TestMeanValid(t *testing.T) {
	t.Run("skips missing", func(t *testing.T) {
		rs := []Reading{NewReading(1), MissingReading(), NewReading(3)}
		mean, ok := meanValid(rs)
		if !ok {
			t.Fatal("expected a value")
		}
		if mean != 2 {
			t.Errorf("mean = %v, want 2", mean)
		}
	})

	t.Run("all missing", func(t *testing.T) {
		if _, ok := meanValid([]Reading{MissingReading(), MissingReading()}); ok {
			t.Error("expected no value for all-missing input")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, ok := meanValid(nil); ok {
			t.Error("expected no value for empty input")
		}
	})
}

func TestMeanReading(t *testing.T) {
	t.Run("both valid", func(t *testing.T) {
		got := meanReading(NewReading(2), NewReading(4))
		if !got.Valid || got.Value != 3 {
			t.Errorf("meanReading = %v, want 3", got)
		}
	})

	t.Run("one missing", func(t *testing.T) {
		got := meanReading(NewReading(2), MissingReading())
		if !got.Valid || got.Value != 2 {
			t.Errorf("meanReading = %v, want 2", got)
		}
	})

	t.Run("both missing", func(t *testing.T) {
		if got := meanReading(MissingReading(), MissingReading()); got.Valid {
			t.Errorf("meanReading = %v, want missing", got)
		}
	})
}

func TestReadingString(t *testing.T) {
	if got := MissingReading().String(); got != "NA" {
		t.Errorf("missing String() = %q, want NA", got)
	}
	if got := NewReading(2.5).String(); got != "2.5" {
		t.Errorf("String() = %q, want 2.5", got)
	}
	if got := NewReading(math.Inf(1)).String(); got != "+Inf" {
		t.Errorf("String() = %q, want +Inf", got)
	}
}
