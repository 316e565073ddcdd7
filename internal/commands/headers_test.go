package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaders_Trips(t *testing.T) {
	out, err := runMileagelog(t, "headers", "--file", testdata("trips.csv"), "--config", testdata("mileageLog.conf"))
	require.NoError(t, err, out)
	assert.Contains(t, out, "header line: 3")
	assert.Contains(t, out, "text: Date,Purpose,Business Line,From,To")
	assert.Contains(t, out, "data rows start at line 4")
}

func TestHeaders_Tolls(t *testing.T) {
	out, err := runMileagelog(t, "headers", "--file", testdata("tolls.csv"), "--config", testdata("mileageLog.conf"), "--dataset", "tolls")
	require.NoError(t, err, out)
	assert.Contains(t, out, "header line: 2")
}

func TestHeaders_UnknownDataset(t *testing.T) {
	out, err := runMileagelog(t, "headers", "--file", testdata("tolls.csv"), "--config", testdata("mileageLog.conf"), "--dataset", "fuel")
	require.Error(t, err)
	assert.Contains(t, out, `unknown dataset "fuel"`)
}

func TestHeaders_RequiresFile(t *testing.T) {
	_, err := runMileagelog(t, "headers")
	assert.Error(t, err)
}
