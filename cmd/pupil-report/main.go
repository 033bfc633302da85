// Command pupil-report processes one pupillometry recording session: it
// estimates a baseline from a calibration recording, runs the trial
// recording through the cleaning pipeline, prints a run summary, and
// optionally persists and exports the processed table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gazelab/pupil.report/internal/config"
	"github.com/gazelab/pupil.report/internal/db"
	"github.com/gazelab/pupil.report/internal/loader"
	"github.com/gazelab/pupil.report/internal/pupil"
	"github.com/gazelab/pupil.report/internal/report"
	"github.com/gazelab/pupil.report/internal/units"
)

// Config holds the command-line configuration for one run.
type Config struct {
	CalibrationFile string
	TrialFile       string
	SessionConfig   string
	DBPath          string
	CSVOut          string
	HTMLOut         string
	PNGOut          string
	Subject         string
	Verbose         bool
}

func parseFlags() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.CalibrationFile, "calibration", "", "calibration recording CSV (required)")
	flag.StringVar(&cfg.TrialFile, "trial", "", "trial recording CSV (required)")
	flag.StringVar(&cfg.SessionConfig, "config", "", "session config JSON (required)")
	flag.StringVar(&cfg.DBPath, "db", "", "SQLite database to store the session in (optional)")
	flag.StringVar(&cfg.CSVOut, "out-csv", "", "write the processed table to this CSV file")
	flag.StringVar(&cfg.HTMLOut, "out-html", "", "write an interactive dilation chart to this HTML file")
	flag.StringVar(&cfg.PNGOut, "out-png", "", "write a static dilation plot to this PNG file")
	flag.StringVar(&cfg.Subject, "subject", "", "override the subject identifier from the config")
	flag.BoolVar(&cfg.Verbose, "verbose", false, "log per-stage diagnostics")
	flag.Parse()

	if cfg.CalibrationFile == "" || cfg.TrialFile == "" || cfg.SessionConfig == "" {
		flag.Usage()
		os.Exit(1)
	}
	return cfg
}

func main() {
	cfg := parseFlags()

	session, err := config.LoadSessionConfig(cfg.SessionConfig)
	if err != nil {
		log.Fatalf("Failed to load session config: %v", err)
	}

	subject := session.GetSubject()
	if cfg.Subject != "" {
		subject = cfg.Subject
	}

	columns := loader.ColumnMap{
		Timestamp:    session.GetTimestampColumn(),
		Left:         session.GetLeftColumn(),
		Right:        session.GetRightColumn(),
		SegmentStart: session.GetSegmentStartColumn(),
	}
	for _, a := range session.AOIColumns {
		columns.AOI = append(columns.AOI, loader.AOIBinding{Name: a.Name, Column: a.Column})
	}

	calibration, err := loader.LoadCalibration(cfg.CalibrationFile, columns)
	if err != nil {
		log.Fatalf("Failed to load calibration recording: %v", err)
	}
	trial, err := loader.LoadTrial(cfg.TrialFile, columns)
	if err != nil {
		log.Fatalf("Failed to load trial recording: %v", err)
	}
	if cfg.Verbose {
		log.Printf("Loaded %d calibration rows, %d trial rows", len(calibration), len(trial))
	}

	pipeline, err := pupil.NewPipeline(pupil.Config{
		AOI:            pupil.AOIConfig{Names: session.AOINames()},
		BaselineWindow: session.GetBaselineWindow(),
		SmoothWidth:    session.GetSmoothWidth(),
		MADScale:       session.GetMADScale(),
		Meta: pupil.SessionMeta{
			Subject: subject,
			Correct: session.GetCorrect(),
		},
	})
	if err != nil {
		log.Fatalf("Invalid pipeline configuration: %v", err)
	}

	result, err := pipeline.Run(calibration, trial, pupil.EpochSpec{
		Breaks: session.EpochBreaks,
		Labels: session.EpochLabels,
	})
	if err != nil {
		log.Fatalf("Processing failed: %v", err)
	}

	summary := pupil.Summarize(result)
	printSummary(summary)

	if cfg.DBPath != "" {
		summaryJSON, err := summary.ToJSON()
		if err != nil {
			log.Fatalf("Failed to serialise summary: %v", err)
		}
		store, err := db.NewDB(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		defer store.Close()

		sessionID, err := store.SaveResult(pupil.SessionMeta{Subject: subject, Correct: session.GetCorrect()}, result, summaryJSON)
		if err != nil {
			log.Fatalf("Failed to store session: %v", err)
		}
		log.Printf("Stored session %s (%d samples)", sessionID, len(result.Samples))
	}

	if cfg.CSVOut != "" {
		if err := report.WriteCSVFile(cfg.CSVOut, result.Samples); err != nil {
			log.Fatalf("Failed to write CSV export: %v", err)
		}
		log.Printf("Wrote %s", cfg.CSVOut)
	}
	if cfg.HTMLOut != "" {
		if err := report.WriteHTMLFile(cfg.HTMLOut, result.Samples, subject); err != nil {
			log.Fatalf("Failed to write HTML chart: %v", err)
		}
		log.Printf("Wrote %s", cfg.HTMLOut)
	}
	if cfg.PNGOut != "" {
		if err := report.SavePNG(cfg.PNGOut, result.Samples, subject); err != nil {
			log.Fatalf("Failed to write PNG plot: %v", err)
		}
		log.Printf("Wrote %s", cfg.PNGOut)
	}
}

func printSummary(s *pupil.RunSummary) {
	fmt.Printf("baseline: %.3f mm\n", s.Baseline)
	fmt.Printf("rows: %d raw, %d retained, %d removed as blinks\n", s.RawRows, s.FilteredRows, s.RemovedRows)
	fmt.Printf("segments: %d, epochs: %d\n", s.Segments, s.Epochs)
	fmt.Printf("focus distribution:\n")
	for focus, count := range s.FocusCounts {
		fmt.Printf("  %-12s %d\n", focus, count)
	}
	fmt.Printf("dilation: mean %.3f mm, p50 %.3f, p95 %.3f (n=%d)\n",
		s.Dilation.Mean, s.Dilation.P50, s.Dilation.P95, s.Dilation.Count)
	fmt.Printf("velocity: mean %.3f %s, p95 %.3f (n=%d)\n",
		units.ConvertVelocity(s.Velocity.Mean, units.MMPerS), units.MMPerS,
		units.ConvertVelocity(s.Velocity.P95, units.MMPerS), s.Velocity.Count)
}
