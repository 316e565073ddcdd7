package report

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// SheetName is the worksheet holding the log.
const SheetName = "Mileage Log"

var tableHeader = []interface{}{
	"Date", "Start", "End", "Start Location", "Destination",
	"Description/Notes", "Mileage", "Tolls", "Reimbursement",
}

// WriteXLSX writes the report as a single-sheet workbook. Numeric cells hold
// numbers; values that did not compute are written as the text NaN.
func WriteXLSX(w io.Writer, rep Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}
	wrap, err := f.NewStyle(&excelize.Style{Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"}})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	e := rep.Employee
	a := rep.Accounts
	t := rep.Totals
	block := [][]interface{}{
		{"MILEAGE AND TOLL REIMBURSEMENT"},
		{"Employee:", e.Name},
		{"Address:", e.Street},
		{"", e.CityLine},
		{"ID:", e.ID, "Extension:", e.Extension},
		{"Department:", e.Department},
		{"Location:", e.Location},
		{"E-mail:", e.Email},
		{"Department Head:", e.DepartmentHead},
		{"Rate:", cellNumber(t.Rate)},
		{"Total Mileage:", cellNumber(t.MileageAmount), "Total Tolls:", cellNumber(t.Tolls)},
		{"Total Reimbursement:", cellNumber(t.GrandTotal)},
		{},
		{"Fund", "Organization", "Account", "Program", "Grand Total"},
		{a.Fund, a.Organization, a.MileageAccount, a.Program, cellNumber(t.GrandTotal)},
		{"", "", a.TollsAccount},
		{},
	}

	row := 1
	for _, values := range block {
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}
	if err := styleRow(f, 1, 1, bold); err != nil {
		return err
	}
	if err := styleRow(f, 14, 5, bold); err != nil {
		return err
	}

	if err := setRow(f, row, tableHeader); err != nil {
		return err
	}
	if err := styleRow(f, row, len(tableHeader), bold); err != nil {
		return err
	}
	row++

	for _, r := range rep.Rows {
		values := []interface{}{
			r.Date, r.Start, r.End, r.StartLocation, r.Destination, r.Notes,
			cellNumber(r.Mileage), cellNumber(r.Tolls), cellNumber(r.Reimbursement),
		}
		if err := setRow(f, row, values); err != nil {
			return err
		}
		notes, _ := excelize.CoordinatesToCellName(6, row)
		if err := f.SetCellStyle(SheetName, notes, notes, wrap); err != nil {
			return fmt.Errorf("styling notes: %w", err)
		}
		row++
	}

	total := []interface{}{"Total:", "", "", "", "", "", cellNumber(t.Miles), cellNumber(t.Tolls), cellNumber(t.GrandTotal)}
	if err := setRow(f, row, total); err != nil {
		return err
	}
	if err := styleRow(f, row, len(total), bold); err != nil {
		return err
	}
	row += 2

	for _, values := range [][]interface{}{{Certification}, {}, {signatureLine}, {SignatureLabel}} {
		if err := setRow(f, row, values); err != nil {
			return err
		}
		row++
	}

	if err := f.SetColWidth(SheetName, "A", "E", 16); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.SetColWidth(SheetName, "F", "F", 60); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// cellNumber turns a formatted amount back into a number for the cell, leaving
// anything unparseable (NaN) as text.
func cellNumber(s string) interface{} {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.InexactFloat64()
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	if len(values) == 0 {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func styleRow(f *excelize.File, row, cols, style int) error {
	first, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	last, err := excelize.CoordinatesToCellName(cols, row)
	if err != nil {
		return fmt.Errorf("row %d: %w", row, err)
	}
	if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
		return fmt.Errorf("styling row %d: %w", row, err)
	}
	return nil
}
