package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a trip export row enriched by reconciliation.
type Trip struct {
	Record           Record
	Start            time.Time // zero if Date + Time Started did not parse
	End              time.Time // zero if Date + Time Ended did not parse
	DeductionApplied bool
	MilesAdjusted    decimal.NullDecimal // invalid when the commute distance is not a number
	TollsForTrip     decimal.Decimal
	Reimbursement    decimal.NullDecimal // rounded to one decimal place
	Notes            string
}

// Date returns the trip's Date column.
func (t Trip) Date() string { return t.Record.Value(ColDate) }

// From returns the start location.
func (t Trip) From() string { return t.Record.Value(ColFrom) }

// To returns the destination.
func (t Trip) To() string { return t.Record.Value(ColTo) }

// Miles returns the unmodified Miles column.
func (t Trip) Miles() string { return t.Record.Value(ColMiles) }

// TimeStarted returns the Time Started column as written in the export.
func (t Trip) TimeStarted() string { return t.Record.Value(ColTimeStarted) }

// TimeEnded returns the Time Ended column as written in the export.
func (t Trip) TimeEnded() string { return t.Record.Value(ColTimeEnded) }
