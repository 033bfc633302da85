// Package config loads and validates session configuration files.
//
// A session config describes one recording session: how the loader maps
// recording columns onto named fields, the ordered AOI set, the externally
// coded epoch boundaries, and the pipeline tuning knobs. Fields omitted
// from the JSON retain their defaults, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// AOIColumn binds an AOI name to the recording column holding its binary
// hit indicator. Order in the config file is significant: it defines the
// coalesce order and therefore the tie-break for malformed rows.
type AOIColumn struct {
	Name   string `json:"name"`
	Column string `json:"column"`
}

// SessionConfig represents the root configuration for one recording session.
type SessionConfig struct {
	// Column mapping for the loader. Columns are always addressed by name,
	// never by position.
	TimestampColumn    *string `json:"timestamp_column,omitempty"`
	LeftColumn         *string `json:"left_column,omitempty"`
	RightColumn        *string `json:"right_column,omitempty"`
	SegmentStartColumn *string `json:"segment_start_column,omitempty"`

	// AOIColumns lists the AOI hit-indicator columns in coalesce order.
	AOIColumns []AOIColumn `json:"aoi_columns"`

	// Epoch boundaries from the out-of-band video coding: row-index
	// breakpoints and one label per interval between them.
	EpochBreaks []int    `json:"epoch_breaks"`
	EpochLabels []string `json:"epoch_labels"`

	// Pipeline tuning params
	BaselineWindow *int     `json:"baseline_window,omitempty"`
	SmoothWidth    *int     `json:"smooth_width,omitempty"`
	MADScale       *float64 `json:"mad_scale,omitempty"`

	// Session metadata stamped onto every output row
	Subject *string `json:"subject,omitempty"`
	Correct *bool   `json:"correct,omitempty"`
}

// LoadSessionConfig loads a SessionConfig from a JSON file.
// The file is validated to ensure it has a .json extension and is under the
// max file size.
func LoadSessionConfig(path string) (*SessionConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &SessionConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *SessionConfig) Validate() error {
	if len(c.AOIColumns) == 0 {
		return fmt.Errorf("at least one aoi_columns entry is required")
	}
	seen := make(map[string]bool, len(c.AOIColumns))
	for i, a := range c.AOIColumns {
		if a.Name == "" || a.Column == "" {
			return fmt.Errorf("aoi_columns[%d] must set both name and column", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("duplicate AOI name %q", a.Name)
		}
		seen[a.Name] = true
	}

	if len(c.EpochBreaks) > 0 && len(c.EpochLabels) != len(c.EpochBreaks)-1 {
		return fmt.Errorf("epoch_labels must have one entry per interval: %d labels for %d breakpoints",
			len(c.EpochLabels), len(c.EpochBreaks))
	}

	if c.BaselineWindow != nil && *c.BaselineWindow <= 0 {
		return fmt.Errorf("baseline_window must be positive, got %d", *c.BaselineWindow)
	}
	if c.SmoothWidth != nil && (*c.SmoothWidth <= 0 || *c.SmoothWidth%2 == 0) {
		return fmt.Errorf("smooth_width must be a positive odd number, got %d", *c.SmoothWidth)
	}
	if c.MADScale != nil && *c.MADScale <= 0 {
		return fmt.Errorf("mad_scale must be positive, got %f", *c.MADScale)
	}

	return nil
}

// GetTimestampColumn returns the timestamp column name or the default.
func (c *SessionConfig) GetTimestampColumn() string {
	if c.TimestampColumn == nil {
		return "timestamp"
	}
	return *c.TimestampColumn
}

// GetLeftColumn returns the left-pupil column name or the default.
func (c *SessionConfig) GetLeftColumn() string {
	if c.LeftColumn == nil {
		return "left_pupil_mm"
	}
	return *c.LeftColumn
}

// GetRightColumn returns the right-pupil column name or the default.
func (c *SessionConfig) GetRightColumn() string {
	if c.RightColumn == nil {
		return "right_pupil_mm"
	}
	return *c.RightColumn
}

// GetSegmentStartColumn returns the segment-start column name or the default.
func (c *SessionConfig) GetSegmentStartColumn() string {
	if c.SegmentStartColumn == nil {
		return "segment_start"
	}
	return *c.SegmentStartColumn
}

// GetBaselineWindow returns the baseline_window value or the default.
func (c *SessionConfig) GetBaselineWindow() int {
	if c.BaselineWindow == nil {
		return 24 // ~400ms at 60Hz
	}
	return *c.BaselineWindow
}

// GetSmoothWidth returns the smooth_width value or the default.
func (c *SessionConfig) GetSmoothWidth() int {
	if c.SmoothWidth == nil {
		return 3
	}
	return *c.SmoothWidth
}

// GetMADScale returns the mad_scale value or the default.
func (c *SessionConfig) GetMADScale() float64 {
	if c.MADScale == nil {
		return 3.0
	}
	return *c.MADScale
}

// GetSubject returns the subject identifier or the default.
func (c *SessionConfig) GetSubject() string {
	if c.Subject == nil {
		return ""
	}
	return *c.Subject
}

// GetCorrect returns the correctness flag or the default.
func (c *SessionConfig) GetCorrect() bool {
	if c.Correct == nil {
		return false
	}
	return *c.Correct
}

// AOINames returns the configured AOI names in coalesce order.
func (c *SessionConfig) AOINames() []string {
	names := make([]string, len(c.AOIColumns))
	for i, a := range c.AOIColumns {
		names[i] = a.Name
	}
	return names
}
