package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

const signatureLine = "________________________________________________________________"

// WriteText writes a plain text rendition: claimant block, account block, the
// trip table, totals and the certification.
func WriteText(w io.Writer, rep Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	e := rep.Employee

	lines := []string{
		"MILEAGE AND TOLL REIMBURSEMENT",
		"",
		"Employee:\t" + e.Name,
		"Address:\t" + e.Street,
		"\t" + e.CityLine,
		"ID:\t" + e.ID + "\tExtension:\t" + e.Extension,
		"Department:\t" + e.Department,
		"Location:\t" + e.Location,
		"E-mail:\t" + e.Email,
		"Department Head:\t" + e.DepartmentHead,
		"",
		"Rate:\t$" + rep.Totals.Rate,
		"Total Mileage:\t$" + rep.Totals.MileageAmount + "\tTotal Tolls:\t$" + rep.Totals.Tolls,
		"Total Reimbursement:\t$" + rep.Totals.GrandTotal,
	}
	if err := writeLines(tw, lines); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	a := rep.Accounts
	lines = []string{
		"",
		"Fund\tOrganization\tAccount\tProgram\tGrand Total",
		strings.Join([]string{a.Fund, a.Organization, a.MileageAccount, a.Program, "$" + rep.Totals.GrandTotal}, "\t"),
		"\t\t" + a.TollsAccount + "\t\t",
	}
	if err := writeLines(tw, lines); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing accounts: %w", err)
	}

	lines = []string{"", "Date\tStart\tEnd\tStart Location\tDestination\tMileage\tTolls\tReimbursement\tDescription/Notes"}
	for _, r := range rep.Rows {
		lines = append(lines, strings.Join([]string{
			r.Date, r.Start, r.End, r.StartLocation, r.Destination,
			r.Mileage, "$" + r.Tolls, "$" + r.Reimbursement, r.Notes,
		}, "\t"))
	}
	lines = append(lines, fmt.Sprintf("Total:\t\t\t\t\t%s\t$%s\t$%s\t", rep.Totals.Miles, rep.Totals.Tolls, rep.Totals.GrandTotal))
	if err := writeLines(tw, lines); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing trips: %w", err)
	}

	if rep.Totals.SkippedTrips > 0 || rep.Totals.SkippedTolls > 0 {
		if _, err := fmt.Fprintf(w, "\nSkipped: %d trip rows, %d toll rows\n", rep.Totals.SkippedTrips, rep.Totals.SkippedTolls); err != nil {
			return fmt.Errorf("writing skipped counts: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "\n%s\n\n%s\n%s\n", Certification, signatureLine, SignatureLabel); err != nil {
		return fmt.Errorf("writing certification: %w", err)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}
