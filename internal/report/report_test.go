package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gazelab/pupil.report/internal/pupil"
)

func sampleTable() []pupil.Sample {
	return []pupil.Sample{
		{TimeMs: 0, Dilation: pupil.NewReading(2), Focus: "robot", Smooth: pupil.NewReading(2),
			Segment: 1, Epoch: "intro", EpochOrder: 1, Velocity: pupil.MissingReading(),
			Subject: "S01", Correct: true},
		{TimeMs: 17, Dilation: pupil.MissingReading(), Focus: "other", Smooth: pupil.NewReading(2.1),
			Segment: 2, Epoch: "task", EpochOrder: 2, Velocity: pupil.NewReading(0.005),
			Subject: "S01", Correct: true},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want header + 2 rows", len(lines))
	}
	if lines[0] != "time,dilation,focus,smooth,segment,epochs,epoch_order,vel,subject,correct" {
		t.Errorf("header = %q", lines[0])
	}
	if lines[1] != "0,2,robot,2,1,intro,1,NA,S01,1" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[2] != "17,NA,other,2.1,2,task,2,0.005,S01,1" {
		t.Errorf("row 2 = %q", lines[2])
	}
}

func TestWriteCSVFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSVFile(path, sampleTable()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "time,dilation") {
		t.Errorf("unexpected file contents: %q", data)
	}
}

func TestRenderHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, sampleTable(), "S01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "echarts") {
		t.Error("rendered HTML does not embed an echarts chart")
	}
	if !strings.Contains(html, "subject=S01") {
		t.Error("rendered HTML does not name the subject")
	}
}

func TestEpochSummary(t *testing.T) {
	got := epochSummary(sampleTable())
	if got != "intro>task" {
		t.Errorf("epochSummary = %q, want intro>task", got)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, sampleTable(), "S01"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("plot file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}
