package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gazelab/pupil.report/internal/pupil"
)

// Session is one persisted pipeline run.
type Session struct {
	SessionID    string
	Subject      string
	Correct      bool
	BaselineMM   float64
	RawRows      int
	FilteredRows int
	SummaryJSON  string
	CreatedAt    time.Time
}

// SaveResult stores a pipeline result as a new session and returns its
// generated session ID. The session row and all sample rows are written in
// one transaction so a failed save leaves nothing behind.
func (db *DB) SaveResult(meta pupil.SessionMeta, res *pupil.Result, summaryJSON string) (string, error) {
	sessionID := uuid.New().String()

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO sessions (session_id, subject, correct, baseline_mm, raw_rows, filtered_rows, summary_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, meta.Subject, boolToInt(meta.Correct), res.Baseline, res.RawRows, res.FilteredRows, summaryJSON)
	if err != nil {
		return "", fmt.Errorf("failed to insert session: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO samples (session_id, row_idx, time_ms, dilation_mm, focus, smooth_mm, segment, epoch, epoch_order, vel_mm_per_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare sample insert: %w", err)
	}
	defer stmt.Close()

	for i, s := range res.Samples {
		_, err := stmt.Exec(sessionID, i, s.TimeMs,
			readingToNull(s.Dilation), s.Focus, readingToNull(s.Smooth),
			s.Segment, s.Epoch, s.EpochOrder, readingToNull(s.Velocity))
		if err != nil {
			return "", fmt.Errorf("failed to insert sample %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit session: %w", err)
	}
	return sessionID, nil
}

// GetSession fetches one session row by ID.
func (db *DB) GetSession(sessionID string) (*Session, error) {
	var s Session
	var correct int
	err := db.QueryRow(`SELECT session_id, subject, correct, baseline_mm, raw_rows, filtered_rows, COALESCE(summary_json, ''), created_at
		FROM sessions WHERE session_id = ?`, sessionID).
		Scan(&s.SessionID, &s.Subject, &correct, &s.BaselineMM, &s.RawRows, &s.FilteredRows, &s.SummaryJSON, &s.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch session %s: %w", sessionID, err)
	}
	s.Correct = correct != 0
	return &s, nil
}

// ListSessions returns all sessions, newest first.
func (db *DB) ListSessions() ([]Session, error) {
	rows, err := db.Query(`SELECT session_id, subject, correct, baseline_mm, raw_rows, filtered_rows, COALESCE(summary_json, ''), created_at
		FROM sessions ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var correct int
		if err := rows.Scan(&s.SessionID, &s.Subject, &correct, &s.BaselineMM, &s.RawRows, &s.FilteredRows, &s.SummaryJSON, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Correct = correct != 0
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// LoadSamples reconstructs the processed sample table for a session, in
// time order, with the session metadata stamped back onto every row.
func (db *DB) LoadSamples(sessionID string) ([]pupil.Sample, error) {
	session, err := db.GetSession(sessionID)
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`SELECT time_ms, dilation_mm, focus, smooth_mm, segment, epoch, epoch_order, vel_mm_per_ms
		FROM samples WHERE session_id = ? ORDER BY row_idx`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query samples for %s: %w", sessionID, err)
	}
	defer rows.Close()

	var samples []pupil.Sample
	for rows.Next() {
		var s pupil.Sample
		var dilation, smooth, vel sql.NullFloat64
		if err := rows.Scan(&s.TimeMs, &dilation, &s.Focus, &smooth, &s.Segment, &s.Epoch, &s.EpochOrder, &vel); err != nil {
			return nil, fmt.Errorf("failed to scan sample: %w", err)
		}
		s.Dilation = nullToReading(dilation)
		s.Smooth = nullToReading(smooth)
		s.Velocity = nullToReading(vel)
		s.Subject = session.Subject
		s.Correct = session.Correct
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

func readingToNull(r pupil.Reading) sql.NullFloat64 {
	return sql.NullFloat64{Float64: r.Value, Valid: r.Valid}
}

func nullToReading(n sql.NullFloat64) pupil.Reading {
	if !n.Valid {
		return pupil.MissingReading()
	}
	return pupil.NewReading(n.Float64)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
