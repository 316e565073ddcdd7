package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mileagelog/mileagelog/internal/config"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build the binary once for all tests.
	tmpDir, err := os.MkdirTemp("", "mileagelog-test-*")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(tmpDir)

	binaryPath = filepath.Join(tmpDir, "mileagelog")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/mileagelog")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		panic("failed to build binary: " + err.Error())
	}

	os.Exit(m.Run())
}

func runMileagelog(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func TestInit_WritesDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	out, err := runMileagelog(t, "init", dir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "Wrote default settings")

	s, err := config.Load(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestInit_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new", "place")
	_, err := runMileagelog(t, "init", dir)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, config.FileName))
	assert.NoError(t, err)
}

func TestInit_RefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte("mileageRate: \"9\"\n"), 0o644))

	out, err := runMileagelog(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "mileageRate: \"9\"\n", string(data))

	_, err = runMileagelog(t, "init", dir, "--force")
	require.NoError(t, err)
	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "0.545", s.Get(config.KeyMileageRate))
}

func TestVersion(t *testing.T) {
	out, err := runMileagelog(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "dev (commit: none, built: unknown)")
}
