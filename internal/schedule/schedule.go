// Package schedule loads pipe schedules for the birb core.
//
// The wire format is CSV with a header row, one pipe per data row:
//
//	gap_center,gap_height,spawn_seconds
//	0.50,0.30,2.0
//
// Rows map 1:1 to pipe specs. Gap fractions are clamped into [0, 1] at
// ingestion so out-of-range rows cannot place a gap outside the canvas.
package schedule

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/okhmat/birb/internal/game"
)

//go:embed defaults/classic.csv
var defaultCSV []byte

// Default returns the embedded schedule shipped with the game.
func Default() []game.PipeSpec {
	specs, err := Parse(bytes.NewReader(defaultCSV))
	if err != nil {
		// The embedded schedule is validated by tests; an empty schedule is
		// the documented degenerate fallback.
		return nil
	}
	return specs
}

// Load reads a schedule from a CSV file.
func Load(path string) ([]game.PipeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schedule: cannot open %s: %w", path, err)
	}
	defer f.Close()

	specs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("schedule: %s: %w", path, err)
	}
	return specs, nil
}

// Parse reads schedule rows from CSV data. The header row is skipped; an
// input with no data rows yields an empty schedule, not an error.
func Parse(r io.Reader) ([]game.PipeSpec, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated per row below
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("malformed csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var specs []game.PipeSpec
	for i, rec := range records[1:] {
		row := i + 2 // 1-based, after the header
		if len(rec) < 3 {
			return nil, fmt.Errorf("row %d: expected 3 fields, got %d", row, len(rec))
		}

		center, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: gap center: %w", row, err)
		}
		height, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: gap height: %w", row, err)
		}
		spawn, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: spawn time: %w", row, err)
		}
		if spawn < 0 {
			return nil, fmt.Errorf("row %d: spawn time %f is negative", row, spawn)
		}

		specs = append(specs, game.PipeSpec{
			GapCenter:    clamp01(center),
			GapHeight:    clamp01(height),
			SpawnSeconds: spawn,
		})
	}
	return specs, nil
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
