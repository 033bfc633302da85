package pupil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gazelab/pupil.report/internal/monitoring"
)

var testAOIs = AOIConfig{Names: []string{"robot", "ball", "door", "screen"}}

func hitRow(hits map[string]Reading) NormalizedSample {
	return NormalizedSample{Dilation: NewReading(1), Hits: hits}
}

func TestConsolidate(t *testing.T) {
	monitoring.SetLogger(nil)
	defer monitoring.SetLogger(nil)

	t.Run("single hit maps to its AOI name", func(t *testing.T) {
		rows := []NormalizedSample{hitRow(map[string]Reading{
			"robot": NewReading(0), "ball": NewReading(1), "door": NewReading(0), "screen": NewReading(0),
		})}
		got := Consolidate(rows, testAOIs)
		if got[0].Focus != "ball" {
			t.Errorf("focus = %q, want ball", got[0].Focus)
		}
	})

	t.Run("no hit maps to other", func(t *testing.T) {
		rows := []NormalizedSample{
			hitRow(map[string]Reading{"robot": NewReading(0), "ball": NewReading(0)}),
			hitRow(map[string]Reading{"robot": MissingReading()}),
			hitRow(map[string]Reading{}),
		}
		got := Consolidate(rows, testAOIs)
		for i := range got {
			if got[i].Focus != FocusOther {
				t.Errorf("row %d focus = %q, want %q", i, got[i].Focus, FocusOther)
			}
		}
	})

	t.Run("every row gets exactly one label", func(t *testing.T) {
		rows := []NormalizedSample{
			hitRow(map[string]Reading{"door": NewReading(1)}),
			hitRow(nil),
		}
		got := Consolidate(rows, testAOIs)
		for i := range got {
			if got[i].Focus == "" {
				t.Errorf("row %d has empty focus", i)
			}
		}
	})

	t.Run("malformed multi-hit row takes first configured AOI and warns", func(t *testing.T) {
		var logged []string
		monitoring.SetLogger(func(format string, v ...interface{}) {
			logged = append(logged, fmt.Sprintf(format, v...))
		})
		defer monitoring.SetLogger(nil)

		rows := []NormalizedSample{hitRow(map[string]Reading{
			"ball": NewReading(1), "door": NewReading(1),
		})}
		got := Consolidate(rows, testAOIs)
		if got[0].Focus != "ball" {
			t.Errorf("focus = %q, want ball (first in configured order)", got[0].Focus)
		}
		if len(logged) != 1 || !strings.Contains(logged[0], "malformed AOI row 0") {
			t.Errorf("expected one malformed-row warning, got %v", logged)
		}
	})

	t.Run("dilation and time survive the projection", func(t *testing.T) {
		rows := []NormalizedSample{{TimeMs: 17, Dilation: NewReading(2.5), Hits: nil}}
		got := Consolidate(rows, testAOIs)
		if got[0].TimeMs != 17 {
			t.Errorf("time = %v, want 17", got[0].TimeMs)
		}
		if !got[0].Dilation.Valid || got[0].Dilation.Value != 2.5 {
			t.Errorf("dilation = %v, want 2.5", got[0].Dilation)
		}
	})
}
