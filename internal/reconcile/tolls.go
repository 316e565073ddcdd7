package reconcile

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mileagelog/mileagelog/internal/model"
)

// tollDescription marks toll charges; other toll export rows are payments,
// fees and adjustments.
const tollDescription = "TOLL"

// amountPrefixLen is the width of the currency prefix on AMOUNT values ("$ ").
const amountPrefixLen = 2

type tollCharge struct {
	at     time.Time
	amount decimal.Decimal
}

// tollIndex holds the parsed TOLL charges ordered by exit time.
type tollIndex struct {
	charges []tollCharge
	skipped int
}

func buildTollIndex(tolls []model.Record, loc *time.Location) tollIndex {
	var idx tollIndex
	for _, toll := range tolls {
		if toll.Value(model.ColTollDescription) != tollDescription {
			continue
		}
		at, ok := parseLocal(toll.Value(model.ColTollDate), toll.Value(model.ColTollExitTime), loc)
		if !ok {
			idx.skipped++
			continue
		}
		amount, ok := parseTollAmount(toll.Value(model.ColTollAmount))
		if !ok {
			idx.skipped++
			continue
		}
		idx.charges = append(idx.charges, tollCharge{at: at, amount: amount})
	}
	slices.SortStableFunc(idx.charges, func(a, b tollCharge) int {
		return a.at.Compare(b.at)
	})
	return idx
}

// sumBetween totals the charges strictly after start and strictly before end.
func (idx tollIndex) sumBetween(start, end time.Time) decimal.Decimal {
	sum := decimal.Zero
	i := sort.Search(len(idx.charges), func(i int) bool {
		return idx.charges[i].at.After(start)
	})
	for ; i < len(idx.charges) && idx.charges[i].at.Before(end); i++ {
		sum = sum.Add(idx.charges[i].amount)
	}
	return sum
}

// parseTollAmount drops the currency prefix and reads the number that follows.
func parseTollAmount(s string) (decimal.Decimal, bool) {
	r := []rune(s)
	if len(r) <= amountPrefixLen {
		return decimal.Zero, false
	}
	return model.ParseNumber(string(r[amountPrefixLen:]))
}
