package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// CSVHeader is the header row of the CSV report.
const CSVHeader = "Date,Start,End,Start Location,Destination,Description/Notes,Mileage,Tolls,Reimbursement"

const (
	numFields        = 9
	colDate          = 0
	colStart         = 1
	colEnd           = 2
	colStartLocation = 3
	colDestination   = 4
	colNotes         = 5
	colMileage       = 6
	colTolls         = 7
	colReimbursement = 8
)

// totalLabel marks the closing summary row.
const totalLabel = "TOTAL"

// WriteCSV writes the header, a row per trip and a closing TOTAL row holding
// the adjusted miles, tolls and grand total.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(strings.Split(CSVHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range rep.Rows {
		if err := cw.Write(MarshalRow(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	total := make([]string, numFields)
	total[colDate] = totalLabel
	total[colMileage] = rep.Totals.Miles
	total[colTolls] = rep.Totals.Tolls
	total[colReimbursement] = rep.Totals.GrandTotal
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("writing total: %w", err)
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}
	return nil
}

// MarshalRow converts a Row to a CSV record.
func MarshalRow(r Row) []string {
	row := make([]string, numFields)
	row[colDate] = r.Date
	row[colStart] = r.Start
	row[colEnd] = r.End
	row[colStartLocation] = r.StartLocation
	row[colDestination] = r.Destination
	row[colNotes] = r.Notes
	row[colMileage] = r.Mileage
	row[colTolls] = r.Tolls
	row[colReimbursement] = r.Reimbursement
	return row
}
