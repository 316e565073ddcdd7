package model

import "github.com/shopspring/decimal"

// Ledger is the reconciled, chronologically ordered set of trips with the
// report-wide accumulators. Totals are unrounded; rounding belongs to
// presentation.
type Ledger struct {
	Trips        []Trip
	TotalMiles   decimal.NullDecimal // sum of MilesAdjusted, before the rate
	TotalTolls   decimal.Decimal
	Rate         decimal.NullDecimal
	SkippedTrips int // rows dropped by the validity filter
	SkippedTolls int // TOLL rows whose time or amount did not parse
}

// MileageAmount returns TotalMiles multiplied by the mileage rate.
func (l Ledger) MileageAmount() decimal.NullDecimal {
	return MulNull(l.TotalMiles, l.Rate)
}

// GrandTotal returns the mileage amount plus all tolls.
func (l Ledger) GrandTotal() decimal.NullDecimal {
	return AddNull(l.MileageAmount(), Known(l.TotalTolls))
}
