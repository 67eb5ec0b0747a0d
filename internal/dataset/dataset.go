// Package dataset defines the record shape shared by the dataset builder and
// the stats command, along with CSV persistence and deduplication.
package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Row is one dataset record, in CSV column order.
type Row struct {
	SourcePage  string
	Category    string
	ItemName    string
	Description string
	Price       string
}

// Header is the CSV header row.
var Header = []string{"source_page", "category", "item_name", "description", "price"}

// Key returns the dedup key for r: the description, trimmed and lowercased.
func (r Row) Key() string {
	return strings.ToLower(strings.TrimSpace(r.Description))
}

// Dedup drops rows whose description repeats an earlier row's, comparing
// trimmed lowercase text (first occurrence wins). Rows whose key is five
// characters or fewer are dropped outright; they carry no usable signal.
func Dedup(rows []Row) []Row {
	seen := make(map[string]struct{}, len(rows))
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		key := row.Key()
		if len(key) <= 5 {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, row)
	}
	return out
}

// WriteCSV writes the header and rows to path.
func WriteCSV(rows []Row, path string) error {
	fl, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer fl.Close()

	w := csv.NewWriter(fl)
	if err := w.Write(Header); err != nil {
		return fmt.Errorf("failed to write header to %q: %w", path, err)
	}
	for _, row := range rows {
		record := []string{row.SourcePage, row.Category, row.ItemName, row.Description, row.Price}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write row to %q: %w", path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %q: %w", path, err)
	}
	return fl.Close()
}

// WriteCSVWithFallback writes rows to path, retrying once at fallback when
// the primary write fails (the usual cause is the file being held open in a
// spreadsheet). It returns the path actually written. Both paths failing is
// fatal to the run.
func WriteCSVWithFallback(rows []Row, path, fallback string) (string, error) {
	err := WriteCSV(rows, path)
	if err == nil {
		return path, nil
	}

	slog.Warn("Primary output not writable, using fallback", "path", path, "fallback", fallback, "error", err)
	if err := WriteCSV(rows, fallback); err != nil {
		return "", fmt.Errorf("failed to write dataset to %q and to fallback: %w", path, err)
	}
	return fallback, nil
}

// ReadCSV loads a dataset written by WriteCSV, validating the header.
func ReadCSV(path string) ([]Row, error) {
	fl, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer fl.Close()

	r := csv.NewReader(fl)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%q is empty, expected a header row", path)
	}
	if got := strings.Join(records[0], ","); got != strings.Join(Header, ",") {
		return nil, fmt.Errorf("%q has header %q, expected %q", path, got, strings.Join(Header, ","))
	}

	rows := make([]Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, Row{
			SourcePage:  rec[0],
			Category:    rec[1],
			ItemName:    rec[2],
			Description: rec[3],
			Price:       rec[4],
		})
	}
	return rows, nil
}
