package reconcile

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mileagelog/mileagelog/internal/model"
)

func TestParseTollAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"$ 2.50", "2.5", true},
		{"$ 12.00 ", "12", true},
		{"€ 3.10", "3.1", true},
		{"$ ", "0", false},
		{"$", "0", false},
		{"", "0", false},
		{"2.50", "50", true},
	}
	for _, tt := range tests {
		got, ok := parseTollAmount(tt.in)
		assert.Equal(t, tt.ok, ok, "parseTollAmount(%q)", tt.in)
		assert.True(t, got.Equal(dec(tt.want)), "parseTollAmount(%q) = %s", tt.in, got)
	}
}

func TestTollIndex_SortedAndSummed(t *testing.T) {
	tolls := []model.Record{
		toll("2024-01-05", "09:00", "TOLL", "$ 1.00"),
		toll("2024-01-05", "08:00", "TOLL", "$ 2.00"),
		toll("2024-01-05", "08:30", "PAYMENT", "$ 50.00"),
		toll("2024-01-05", "08:45", "TOLL", "$ 4.00"),
	}
	idx := buildTollIndex(tolls, time.UTC)
	require.Len(t, idx.charges, 3)
	assert.True(t, idx.charges[0].at.Before(idx.charges[1].at))
	assert.True(t, idx.charges[1].at.Before(idx.charges[2].at))

	at := func(clock string) time.Time {
		ts, ok := parseLocal("2024-01-05", clock, time.UTC)
		require.True(t, ok)
		return ts
	}
	assert.True(t, idx.sumBetween(at("07:00"), at("10:00")).Equal(dec("7")))
	assert.True(t, idx.sumBetween(at("08:00"), at("09:00")).Equal(dec("4")))
	assert.True(t, idx.sumBetween(at("09:30"), at("10:00")).IsZero())
}

func TestParseLocal(t *testing.T) {
	ts, ok := parseLocal("2024-01-05", "08:10", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 5, 8, 10, 0, 0, time.UTC), ts)

	ts, ok = parseLocal("01/05/2024", "08:10 PM", time.UTC)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 5, 20, 10, 0, 0, time.UTC), ts)

	_, ok = parseLocal("", "", time.UTC)
	assert.False(t, ok)
}
