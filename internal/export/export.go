// Write scraped records to disk

package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"linkedin-scraper/internal/scraper"
	"os"
	"path/filepath"
	"time"
)

// CSVPath returns "<outputName>.csv".
func CSVPath(outputName string) string {
	return outputName + ".csv"
}

// WriteCSV writes the header and one row per record. The file is created
// (or truncated) even when there are no records.
func WriteCSV(path string, records []scraper.JobRecord) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(scraper.CSVHeader); err != nil {
		return fmt.Errorf("failed to write header to CSV: %w", err)
	}
	for _, rec := range records {
		if err := writer.Write(rec.Row()); err != nil {
			return fmt.Errorf("failed to write record to CSV: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return file.Close()
}

// SaveJSON writes records to <dir>/job-search-YYYY-MM-DD.json and returns the path.
func SaveJSON(dir string, records []scraper.JobRecord, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	filename := fmt.Sprintf("job-search-%s.json", now.Format("2006-01-02"))
	path := filepath.Join(dir, filename)

	if records == nil {
		records = []scraper.JobRecord{}
	}
	data, err := json.MarshalIndent(records, "", " ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal jobs to JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write logs file: %w", err)
	}
	return path, nil
}
