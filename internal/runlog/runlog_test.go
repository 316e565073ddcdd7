package runlog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 2, 1, 9, 15, 0, 0, time.UTC)

func testEntry() Entry {
	return Entry{
		Timestamp:  testTime,
		RunID:      "5f0c1c8e-8d1f-4a44-9c55-0f9bd1f1a2b3",
		Trips:      "exports/trips.csv",
		Tolls:      "exports/tolls, january.csv",
		TripCount:  5,
		TotalMiles: "43.5",
		TotalTolls: "5.00",
		GrandTotal: "26.75",
	}
}

func TestAppend_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "26.75", entries[0].GrandTotal)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Header+"\n")
}

func TestAppend_ExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	e2 := testEntry()
	e2.RunID = "second"
	e2.TripCount = 0
	require.NoError(t, Append(path, []Entry{e2}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 5, entries[0].TripCount)
	assert.Equal(t, "second", entries[1].RunID)
}

func TestRead_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	original := testEntry()
	require.NoError(t, Append(path, []Entry{original}))

	entries, err := Read(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	got := entries[0]
	assert.True(t, original.Timestamp.Equal(got.Timestamp))
	got.Timestamp = original.Timestamp
	assert.Equal(t, original, got)
}

func TestRead_NotFound(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "missing.csv"))
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_HeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	require.NoError(t, os.WriteFile(path, []byte(Header+"\n"), 0o644))

	entries, err := Read(path)
	require.NoError(t, err)
	assert.Nil(t, entries)
}

func TestRead_BadTripCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	body := Header + "\n2024-02-01T09:15:00Z,id,a,b,many,1,2,3\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "trip_count")
}

func TestUnmarshalEntry_BadFieldCount(t *testing.T) {
	_, err := unmarshalEntry([]string{"one", "two"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "expected 8 fields")
}

func TestTimestampFormat(t *testing.T) {
	row := marshalEntry(testEntry())
	assert.Equal(t, "2024-02-01T09:15:00Z", row[colTimestamp])
	assert.Equal(t, "5", row[colTripCount])
}

func TestAppend_CreatesDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "runs", "history.csv")
	require.NoError(t, Append(path, []Entry{testEntry()}))

	info, err := os.Stat(filepath.Join(dir, "logs", "runs"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestAppend_ReportsWriteFailure(t *testing.T) {
	if _, err := os.Stat("/dev/full"); err != nil {
		t.Skip("/dev/full not available")
	}

	err := Append("/dev/full", []Entry{testEntry()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "run history")
}
