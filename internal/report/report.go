// Package report renders a reconciled ledger for people: a row per trip with
// the claimant header and totals.
package report

import (
	"strings"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/model"
)

// Certification is printed above the claimant signature line.
const Certification = "I HEREBY CERTIFY THAT THE MILEAGE AND TOLL EXPENSE INDICATED ABOVE, " +
	"WAS ACCOMPLISHED IN THE PERFORMANCE OF OFFICIAL DUTIES PURSUANT TO TRAVEL AUTHORITY " +
	"GRANTED TO ME. I ALSO CERTIFY THAT ON THE DATE(S) WHEN THE ABOVE ITEMS OF EXPENSE WERE " +
	"INCURRED, THE VEHICLE I WAS USING ON UNIVERSITY BUSINESS WAS COVERED BY LIABILITY INSURANCE."

// SignatureLabel sits under the signature line.
const SignatureLabel = "(SIGNATURE OF CLAIMANT)"

// Row is one reconciled trip, formatted for display. Mileage and
// Reimbursement carry one decimal place, Tolls two.
type Row struct {
	Date          string `json:"date"`
	Start         string `json:"start"`
	End           string `json:"end"`
	StartLocation string `json:"startLocation"`
	Destination   string `json:"destination"`
	Notes         string `json:"notes"`
	Mileage       string `json:"mileage"`
	Tolls         string `json:"tolls"`
	Reimbursement string `json:"reimbursement"`
}

// Employee identifies the claimant.
type Employee struct {
	Name           string `json:"name"`
	ID             string `json:"id"`
	Extension      string `json:"extension"`
	Department     string `json:"department"`
	DepartmentHead string `json:"departmentHead"`
	Location       string `json:"location"`
	Email          string `json:"email"`
	Street         string `json:"street"`
	CityLine       string `json:"cityLine"`
}

// Accounts are the charge codes the totals are booked against.
type Accounts struct {
	Fund           string `json:"fund"`
	Organization   string `json:"organization"`
	MileageAccount string `json:"mileageAccount"`
	Program        string `json:"program"`
	TollsAccount   string `json:"tollsAccount"`
}

// Totals are the report-wide sums. Money values carry two decimal places.
type Totals struct {
	Rate          string `json:"rate"`
	Miles         string `json:"miles"`
	MileageAmount string `json:"mileageAmount"`
	Tolls         string `json:"tolls"`
	GrandTotal    string `json:"grandTotal"`
	SkippedTrips  int    `json:"skippedTrips"`
	SkippedTolls  int    `json:"skippedTolls"`
}

// Report is everything a writer needs.
type Report struct {
	RunID    string   `json:"runId,omitempty"`
	Employee Employee `json:"employee"`
	Accounts Accounts `json:"accounts"`
	Rows     []Row    `json:"rows"`
	Totals   Totals   `json:"totals"`
}

// New builds a report from a ledger and the settings that produced it.
func New(runID string, s config.Settings, l model.Ledger) Report {
	rows := make([]Row, 0, len(l.Trips))
	for _, t := range l.Trips {
		rows = append(rows, newRow(t))
	}
	return Report{
		RunID:    runID,
		Employee: employeeFrom(s),
		Accounts: Accounts{
			Fund:           s.Get(config.KeyFund),
			Organization:   s.Get(config.KeyOrganization),
			MileageAccount: s.Get(config.KeyMileageAccount),
			Program:        s.Get(config.KeyProgram),
			TollsAccount:   s.Get(config.KeyTollsAccount),
		},
		Rows: rows,
		Totals: Totals{
			Rate:          s.Get(config.KeyMileageRate),
			Miles:         model.FormatFixed(l.TotalMiles, 1),
			MileageAmount: model.FormatFixed(l.MileageAmount(), 2),
			Tolls:         l.TotalTolls.StringFixed(2),
			GrandTotal:    model.FormatFixed(l.GrandTotal(), 2),
			SkippedTrips:  l.SkippedTrips,
			SkippedTolls:  l.SkippedTolls,
		},
	}
}

func newRow(t model.Trip) Row {
	return Row{
		Date:          t.Date(),
		Start:         t.TimeStarted(),
		End:           t.TimeEnded(),
		StartLocation: t.From(),
		Destination:   t.To(),
		Notes:         t.Notes,
		Mileage:       model.FormatFixed(t.MilesAdjusted, 1),
		Tolls:         t.TollsForTrip.StringFixed(2),
		Reimbursement: model.FormatFixed(t.Reimbursement, 1),
	}
}

func employeeFrom(s config.Settings) Employee {
	street := joinNonEmpty(" ",
		s.Get(config.KeyHomeAddressNumber),
		s.Get(config.KeyHomeAddressStreetName),
		s.Get(config.KeyHomeAddressAdditional))

	city := s.Get(config.KeyHomeAddressCity)
	if st := s.Get(config.KeyHomeAddressState); st != "" {
		if city != "" {
			city += ", "
		}
		city += st
	}
	if zip := s.Get(config.KeyHomeAddressZip); zip != "" {
		city = strings.TrimSpace(city + "  " + zip)
	}

	return Employee{
		Name:           s.Get(config.KeyEmployeeName),
		ID:             s.Get(config.KeyEmployeeID),
		Extension:      s.Get(config.KeyEmployeeExtension),
		Department:     s.Get(config.KeyEmployeeDepartment),
		DepartmentHead: s.Get(config.KeyEmployeeDepartmentHead),
		Location:       s.Get(config.KeyEmployeeLocation),
		Email:          s.Get(config.KeyEmployeeEmail),
		Street:         street,
		CityLine:       city,
	}
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
