// Package reconcile turns mapped trip and toll records into a reimbursement
// ledger. Reconcile is a pure function of its inputs: no I/O, no shared state,
// and identical inputs give an identical Ledger.
package reconcile

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mileagelog/mileagelog/internal/config"
	"github.com/mileagelog/mileagelog/internal/model"
)

const negativeDisclaimer = "Negative values included to offset other mileage reimbursement for same day."

// Options are the settings reconciliation depends on.
type Options struct {
	MileageRate     decimal.NullDecimal // currency per mile
	CommuteDistance decimal.NullDecimal // miles deducted once per day
	HomeStreet      string              // matched as a substring of From/To
	Location        *time.Location      // zone of export timestamps; nil means time.Local
}

// Provider supplies named configuration values.
type Provider interface {
	Get(key string) string
}

// OptionsFrom reads Options from a configuration provider. Numbers that do not
// parse become invalid amounts, which propagate into every value that depends
// on them instead of failing the run.
func OptionsFrom(p Provider) Options {
	return Options{
		MileageRate:     model.ParseNullable(p.Get(config.KeyMileageRate)),
		CommuteDistance: model.ParseNullable(p.Get(config.KeyDistanceToRowan)),
		HomeStreet:      p.Get(config.KeyHomeAddressStreetName),
	}
}

// sortedTrip is a trip record with its parsed start time.
type sortedTrip struct {
	record  model.Record
	start   time.Time
	startOK bool
}

// foldState is the accumulator threaded through the sorted trips.
type foldState struct {
	prev       *model.Trip // last trip that entered the ledger
	trips      []model.Trip
	totalMiles decimal.NullDecimal
	totalTolls decimal.Decimal
	skipped    int
}

type engine struct {
	opts   Options
	loc    *time.Location
	sorted []sortedTrip
	tolls  tollIndex
}

// Reconcile sorts trips by start time, applies the daily commute deduction,
// drops invalid rows, attaches tolls charged inside each trip's window and
// totals the result.
func Reconcile(trips, tolls []model.Record, opts Options) model.Ledger {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}
	e := engine{
		opts:   opts,
		loc:    loc,
		sorted: sortTrips(trips, loc),
		tolls:  buildTollIndex(tolls, loc),
	}

	state := foldState{totalMiles: model.Known(decimal.Zero), totalTolls: decimal.Zero}
	for i := range e.sorted {
		state = e.step(state, i)
	}

	return model.Ledger{
		Trips:        state.trips,
		TotalMiles:   state.totalMiles,
		TotalTolls:   state.totalTolls,
		Rate:         opts.MileageRate,
		SkippedTrips: state.skipped,
		SkippedTolls: e.tolls.skipped,
	}
}

// sortTrips orders trips by Date + Time Started, stable. Trips whose start does
// not parse go last, in their original order.
func sortTrips(trips []model.Record, loc *time.Location) []sortedTrip {
	sorted := make([]sortedTrip, len(trips))
	for i, rec := range trips {
		start, ok := parseLocal(rec.Value(model.ColDate), rec.Value(model.ColTimeStarted), loc)
		sorted[i] = sortedTrip{record: rec, start: start, startOK: ok}
	}
	slices.SortStableFunc(sorted, func(a, b sortedTrip) int {
		switch {
		case a.startOK && b.startOK:
			return a.start.Compare(b.start)
		case a.startOK:
			return -1
		case b.startOK:
			return 1
		default:
			return 0
		}
	})
	return sorted
}

// step folds the i-th sorted trip into acc.
func (e engine) step(acc foldState, i int) foldState {
	rec := e.sorted[i].record
	date := rec.Value(model.ColDate)
	to := rec.Value(model.ColTo)

	miles, ok := model.ParseNumber(rec.Value(model.ColMiles))
	if !ok || to == "" || date == "" {
		acc.skipped++
		return acc
	}

	// First of day looks back at the ledger; last of day looks ahead at the
	// sorted input, including rows that will be dropped.
	firstOfDay := acc.prev == nil || acc.prev.Date() != date
	lastOfDay := i == len(e.sorted)-1 || e.sorted[i+1].record.Value(model.ColDate) != date

	adjusted := model.Known(miles)
	deducted := false
	switch {
	case firstOfDay && strings.Contains(rec.Value(model.ColFrom), e.opts.HomeStreet):
		adjusted, deducted = model.SubNull(adjusted, e.opts.CommuteDistance), true
	case lastOfDay && strings.Contains(to, e.opts.HomeStreet):
		adjusted, deducted = model.SubNull(adjusted, e.opts.CommuteDistance), true
	}

	start, startOK := e.sorted[i].start, e.sorted[i].startOK
	end, endOK := parseLocal(date, rec.Value(model.ColTimeEnded), e.loc)
	tolls := decimal.Zero
	if startOK && endOK {
		tolls = e.tolls.sumBetween(start, end)
	}

	trip := model.Trip{
		Record:           rec,
		Start:            start,
		End:              end,
		DeductionApplied: deducted,
		MilesAdjusted:    adjusted,
		TollsForTrip:     tolls,
		Reimbursement:    model.RoundNull(model.AddNull(model.MulNull(adjusted, e.opts.MileageRate), model.Known(tolls)), 1),
		Notes:            notes(rec, deducted, e.opts.CommuteDistance, adjusted),
	}

	acc.trips = append(acc.trips, trip)
	acc.prev = &trip
	acc.totalMiles = model.AddNull(acc.totalMiles, adjusted)
	acc.totalTolls = acc.totalTolls.Add(tolls)
	return acc
}

func notes(rec model.Record, deducted bool, distance, adjusted decimal.NullDecimal) string {
	s := fmt.Sprintf("Trip Type: %s. Trip Purpose: %s", rec.Value(model.ColPurpose), rec.Value(model.ColBusinessLine))
	if !deducted {
		return s
	}
	disclaimer := ""
	if adjusted.Valid && adjusted.Decimal.IsNegative() {
		disclaimer = negativeDisclaimer
	}
	return s + fmt.Sprintf(". Mileage shown includes deduction of %s miles for daily commute.  Original Miles:  %s. %s",
		model.FormatFixed(distance, 1), rec.Value(model.ColMiles), disclaimer)
}
