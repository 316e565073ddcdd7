// Package runlog keeps an append-only CSV history of reconciliation runs.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Entry is one row in the run history.
type Entry struct {
	Timestamp  time.Time
	RunID      string
	Trips      string
	Tolls      string
	TripCount  int
	TotalMiles string
	TotalTolls string
	GrandTotal string
}

// Header is the CSV header of the history file.
const Header = "timestamp,run_id,trips,tolls,trip_count,total_miles,total_tolls,grand_total"

const (
	numFields     = 8
	colTimestamp  = 0
	colRunID      = 1
	colTrips      = 2
	colTolls      = 3
	colTripCount  = 4
	colTotalMiles = 5
	colTotalTolls = 6
	colGrandTotal = 7
)

// marshalEntry converts an Entry to a CSV row.
func marshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colRunID] = e.RunID
	row[colTrips] = e.Trips
	row[colTolls] = e.Tolls
	row[colTripCount] = strconv.Itoa(e.TripCount)
	row[colTotalMiles] = e.TotalMiles
	row[colTotalTolls] = e.TotalTolls
	row[colGrandTotal] = e.GrandTotal
	return row
}

// unmarshalEntry converts a CSV row to an Entry.
func unmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	count, err := strconv.Atoi(record[colTripCount])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing trip_count %q: %w", record[colTripCount], err)
	}

	return Entry{
		Timestamp:  ts,
		RunID:      record[colRunID],
		Trips:      record[colTrips],
		Tolls:      record[colTolls],
		TripCount:  count,
		TotalMiles: record[colTotalMiles],
		TotalTolls: record[colTotalTolls],
		GrandTotal: record[colGrandTotal],
	}, nil
}

// Append writes entries to the history file at path, creating it (and its
// directory) with a header if needed.
func Append(path string, entries []Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating history dir: %w", err)
		}
	}

	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run history: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(marshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing run history: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing run history: %w", err)
	}
	return nil
}

// Read returns all entries in the history file at path, or nil if it does
// not exist.
func Read(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run history: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run history CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := unmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
