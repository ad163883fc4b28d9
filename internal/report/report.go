// Package report saves simulation results as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/handsim/internal/hand"
	"github.com/lox/handsim/internal/simulator"
)

// Report is the persisted form of a simulation run
type Report struct {
	Hands       int            `json:"hands"`
	Denominator int            `json:"denominator"`
	Resolver    string         `json:"resolver"`
	Seed        int64          `json:"seed"`
	Workers     int            `json:"workers"`
	ElapsedMs   int64          `json:"elapsed_ms"`
	Categories  []CategoryLine `json:"categories"`
}

// CategoryLine holds the figures for one hand category
type CategoryLine struct {
	Category    string  `json:"category"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	Exact       float64 `json:"exact"`
	StdError    float64 `json:"std_error"`
}

// FromResult builds a report, strongest category first
func FromResult(res *simulator.Result) Report {
	r := Report{
		Hands:       res.Tally.Hands,
		Denominator: res.Denominator,
		Resolver:    res.Resolver.String(),
		Seed:        res.Seed,
		Workers:     res.Workers,
		ElapsedMs:   res.Elapsed.Milliseconds(),
	}
	for _, c := range hand.Categories() {
		r.Categories = append(r.Categories, CategoryLine{
			Category:    c.String(),
			Count:       res.Tally.Count(c),
			Probability: res.Probabilities[c],
			Exact:       hand.ExactProbability(c, res.Resolver),
			StdError:    res.Tally.StdError(c),
		})
	}
	return r
}

// Elapsed returns the recorded run time
func (r Report) Elapsed() time.Duration {
	return time.Duration(r.ElapsedMs) * time.Millisecond
}

// Write saves the report to filename. Data goes to a temporary file in the
// same directory first and is renamed into place, so readers never see a
// partial report.
func (r Report) Write(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')

	tmpFile, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	committed := false
	defer func() {
		if !committed {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	committed = true
	return nil
}

// Read loads a report written by Write
func Read(filename string) (Report, error) {
	var r Report
	data, err := os.ReadFile(filename)
	if err != nil {
		return r, err
	}
	if err := json.Unmarshal(data, &r); err != nil {
		return r, fmt.Errorf("failed to decode report %s: %w", filename, err)
	}
	return r, nil
}
