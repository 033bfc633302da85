// Package loader reads calibration and trial recordings from CSV files.
//
// Columns are addressed by header name through a ColumnMap, never by
// position, so a change in the tracker's export shape only requires a
// config change. Empty and "NA" cells become missing Readings.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/gazelab/pupil.report/internal/pupil"
)

// AOIBinding binds an AOI name to its hit-indicator column.
type AOIBinding struct {
	Name   string
	Column string
}

// ColumnMap names the recording columns the loader needs. SegmentStart and
// AOI are only required for trial recordings.
type ColumnMap struct {
	Timestamp    string
	Left         string
	Right        string
	SegmentStart string
	AOI          []AOIBinding
}

// LoadCalibration reads a calibration recording: timestamps and the two
// pupil diameters. Rows keep file order.
func LoadCalibration(path string, cm ColumnMap) ([]pupil.RawSample, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	tsIdx, err := columnIndex(header, cm.Timestamp)
	if err != nil {
		return nil, err
	}
	leftIdx, err := columnIndex(header, cm.Left)
	if err != nil {
		return nil, err
	}
	rightIdx, err := columnIndex(header, cm.Right)
	if err != nil {
		return nil, err
	}

	samples := make([]pupil.RawSample, 0, len(records))
	for i, rec := range records {
		ts, err := parseRequired(rec[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Timestamp, err)
		}
		left, err := parseReading(rec[leftIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Left, err)
		}
		right, err := parseReading(rec[rightIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Right, err)
		}
		samples = append(samples, pupil.RawSample{
			TimestampMs: ts,
			Left:        left,
			Right:       right,
		})
	}
	return samples, nil
}

// LoadTrial reads a trial recording: timestamps, pupil diameters, the trial
// segment start, and one binary hit indicator per configured AOI.
func LoadTrial(path string, cm ColumnMap) ([]pupil.RawSample, error) {
	header, records, err := readCSV(path)
	if err != nil {
		return nil, err
	}

	tsIdx, err := columnIndex(header, cm.Timestamp)
	if err != nil {
		return nil, err
	}
	leftIdx, err := columnIndex(header, cm.Left)
	if err != nil {
		return nil, err
	}
	rightIdx, err := columnIndex(header, cm.Right)
	if err != nil {
		return nil, err
	}
	segIdx, err := columnIndex(header, cm.SegmentStart)
	if err != nil {
		return nil, err
	}

	aoiIdx := make([]int, len(cm.AOI))
	for i, a := range cm.AOI {
		idx, err := columnIndex(header, a.Column)
		if err != nil {
			return nil, fmt.Errorf("AOI %q: %w", a.Name, err)
		}
		aoiIdx[i] = idx
	}

	samples := make([]pupil.RawSample, 0, len(records))
	for i, rec := range records {
		ts, err := parseRequired(rec[tsIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Timestamp, err)
		}
		seg, err := parseRequired(rec[segIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.SegmentStart, err)
		}
		left, err := parseReading(rec[leftIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Left, err)
		}
		right, err := parseReading(rec[rightIdx])
		if err != nil {
			return nil, fmt.Errorf("row %d column %q: %w", i+1, cm.Right, err)
		}

		hits := make(map[string]pupil.Reading, len(cm.AOI))
		for j, a := range cm.AOI {
			hit, err := parseReading(rec[aoiIdx[j]])
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %w", i+1, a.Column, err)
			}
			hits[a.Name] = hit
		}

		samples = append(samples, pupil.RawSample{
			TimestampMs:    ts,
			SegmentStartMs: seg,
			Left:           left,
			Right:          right,
			Hits:           hits,
		})
	}
	return samples, nil
}

func readCSV(path string) (header []string, records [][]string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%s is empty: no header row", path)
	}
	return rows[0], rows[1:], nil
}

func columnIndex(header []string, name string) (int, error) {
	if name == "" {
		return 0, fmt.Errorf("column name not configured")
	}
	for i, h := range header {
		if h == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %q not found in header %v", name, header)
}

// parseReading converts a CSV cell to a Reading. Empty and NA cells are
// missing; anything else must parse as a float.
func parseReading(cell string) (pupil.Reading, error) {
	if isMissing(cell) {
		return pupil.MissingReading(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return pupil.Reading{}, fmt.Errorf("not a number: %q", cell)
	}
	return pupil.NewReading(v), nil
}

func parseRequired(cell string) (float64, error) {
	if isMissing(cell) {
		return 0, fmt.Errorf("required value is missing")
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	return v, nil
}

func isMissing(cell string) bool {
	switch cell {
	case "", "NA", "na", "NaN", "nan":
		return true
	}
	return false
}
