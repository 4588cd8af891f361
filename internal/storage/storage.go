package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"stock_picks/internal/models"
)

// LatestFile is the fixed-name copy of the most recent report, next to the
// dated artifacts. Consumers that only care about "today" read this one.
const LatestFile = "latest_stock_picks.json"

// SaveReport writes the report to <dir>/stock_picks_<date>.json and
// refreshes <dir>/latest_stock_picks.json, both with an atomic write
// pattern:
//  1. Write to a temporary file.
//  2. Sync to ensure data is on disk.
//  3. Rename temporary file to destination (atomic operation).
//
// Re-running on the same date overwrites the prior artifact: last writer
// wins, no history is kept here (version control is the hosting platform's
// concern). Returns the dated artifact path.
func SaveReport(dir string, r *models.DailyReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	// MarshalIndent keeps the artifact human-readable in the repo.
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	datedPath := filepath.Join(dir, fmt.Sprintf("stock_picks_%s.json", r.Date))
	if err := writeAtomic(datedPath, b); err != nil {
		return "", err
	}
	if err := writeAtomic(filepath.Join(dir, LatestFile), b); err != nil {
		return "", err
	}
	return datedPath, nil
}

// LoadReport reads a report artifact back from disk.
func LoadReport(path string) (*models.DailyReport, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var r models.DailyReport
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &r, nil
}

func writeAtomic(path string, data []byte) error {
	// Create the temp file in the same directory so the rename cannot cross
	// filesystems.
	tmpFile := path + ".tmp"
	f, err := os.Create(tmpFile)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	// Ensure we close the file, even if writing fails
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	// Force sync to disk to prevent data loss on power failure before rename
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	// Close explicitly before renaming (essential on Windows)
	f.Close()

	if err := os.Rename(tmpFile, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
