package pupil

import (
	"testing"
)

func TestSummarize(t *testing.T) {
	res := &Result{
		Baseline:     10,
		RawRows:      5,
		FilteredRows: 4,
		Samples: []Sample{
			{TimeMs: 0, Dilation: NewReading(1), Focus: "robot", Segment: 1, EpochOrder: 1, Velocity: MissingReading()},
			{TimeMs: 17, Dilation: NewReading(2), Focus: "robot", Segment: 1, EpochOrder: 1, Velocity: NewReading(0.1)},
			{TimeMs: 34, Dilation: NewReading(3), Focus: FocusOther, Segment: 2, EpochOrder: 2, Velocity: NewReading(-0.1)},
			{TimeMs: 51, Dilation: MissingReading(), Focus: FocusOther, Segment: 2, EpochOrder: 2, Velocity: NewReading(0.2)},
		},
	}

	s := Summarize(res)

	if s.Baseline != 10 {
		t.Errorf("baseline = %v, want 10", s.Baseline)
	}
	if s.RemovedRows != 1 {
		t.Errorf("removed rows = %d, want 1", s.RemovedRows)
	}
	if s.Segments != 2 || s.Epochs != 2 {
		t.Errorf("segments/epochs = %d/%d, want 2/2", s.Segments, s.Epochs)
	}
	if s.FocusCounts["robot"] != 2 || s.FocusCounts[FocusOther] != 2 {
		t.Errorf("focus counts = %v, want robot:2 other:2", s.FocusCounts)
	}
	if s.Dilation.Count != 3 {
		t.Errorf("dilation count = %d, want 3 (missing excluded)", s.Dilation.Count)
	}
	if s.Dilation.Mean != 2 {
		t.Errorf("dilation mean = %v, want 2", s.Dilation.Mean)
	}
	if s.Dilation.Min != 1 || s.Dilation.Max != 3 {
		t.Errorf("dilation min/max = %v/%v, want 1/3", s.Dilation.Min, s.Dilation.Max)
	}
	if s.Velocity.Count != 3 {
		t.Errorf("velocity count = %d, want 3 (undefined excluded)", s.Velocity.Count)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(&Result{})
	if s.Dilation.Count != 0 || s.Velocity.Count != 0 {
		t.Errorf("expected zero-valued stats, got %+v", s)
	}
}

func TestRunSummaryJSONRoundTrip(t *testing.T) {
	s := &RunSummary{
		Baseline:     1.5,
		RawRows:      10,
		FilteredRows: 9,
		RemovedRows:  1,
		Segments:     3,
		Epochs:       2,
		FocusCounts:  map[string]int{"robot": 5, "other": 4},
		Dilation:     SignalStats{Count: 9, Mean: 2},
	}

	data, err := s.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	got, err := ParseRunSummary(data)
	if err != nil {
		t.Fatalf("ParseRunSummary: %v", err)
	}
	if got.Baseline != s.Baseline || got.Segments != s.Segments || got.FocusCounts["robot"] != 5 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}
