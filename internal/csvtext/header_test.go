package csvtext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tripHeader = "Date,From,To,Miles,Time Started,Time Ended,Purpose,Business Line"

func TestLocateHeader_SkipsBanner(t *testing.T) {
	text := "Trip Log Export\r\nGenerated 2024-02-01,,\r\n" + tripHeader + "\r\n2024-01-05,A,B,3,08:00,08:10,Business,Teaching\r\n"
	assert.Equal(t, 2, LocateHeader(tripHeader, text))
}

func TestLocateHeader_ToleratesDrift(t *testing.T) {
	// Reordered, one column renamed, one extra column.
	text := "banner\nTo,Date,Vehicle,Miles,From,Start Time,Time Ended,Purpose,Business Line\n"
	assert.Equal(t, 1, LocateHeader(tripHeader, text))
}

func TestLocateHeader_TiesKeepFirst(t *testing.T) {
	text := "Date,Miles\nDate,Miles\n"
	assert.Equal(t, 0, LocateHeader(tripHeader, text))

	text = "x\nDate,Miles\nDate,Miles\n"
	assert.Equal(t, 1, LocateHeader(tripHeader, text))
}

func TestLocateHeader_NoMatch(t *testing.T) {
	assert.Equal(t, 0, LocateHeader("Q,R,S", "a,b\nc,d\n"))
	assert.Equal(t, 0, LocateHeader(tripHeader, ""))
}

func TestLocateHeader_Idempotent(t *testing.T) {
	text := "title\n" + tripHeader + "\n1,2,3\n"
	first := LocateHeader(tripHeader, text)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, LocateHeader(tripHeader, text))
	}
}

func TestLocateHeader_BareCRIsNotABreak(t *testing.T) {
	text := "banner\r" + tripHeader + "\n"
	assert.Equal(t, 0, LocateHeader(tripHeader, text))
}

func TestLines_MatchesLocateHeaderNumbering(t *testing.T) {
	text := "banner\r\nDate,From,To\nrow"
	lines := Lines(text)
	require.Len(t, lines, 3)
	assert.Equal(t, "Date,From,To", lines[LocateHeader("Date,From,To", text)])
}
