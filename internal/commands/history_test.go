package commands_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mileagelog/mileagelog/internal/runlog"
)

func TestHistory_ListsRecordedRuns(t *testing.T) {
	history := filepath.Join(t.TempDir(), "history.csv")
	_, err := runMileagelog(t, reconcileArgs("--history", history)...)
	require.NoError(t, err)

	entries, err := runlog.Read(history)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	out, err := runMileagelog(t, "history", "--file", history)
	require.NoError(t, err, out)
	assert.Contains(t, out, "RUN")
	assert.Contains(t, out, entries[0].RunID)
	assert.Contains(t, out, "26.75")
}

func TestHistory_MissingFile(t *testing.T) {
	out, err := runMileagelog(t, "history", "--file", filepath.Join(t.TempDir(), "none.csv"))
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded")
}

func TestHistory_RequiresFile(t *testing.T) {
	_, err := runMileagelog(t, "history")
	assert.Error(t, err)
}
