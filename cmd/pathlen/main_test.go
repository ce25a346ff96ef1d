package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "pathlen version devel\n", out)
}

func TestLengthCommand(t *testing.T) {
	out, err := run(t, "length", "--a=0", "--b=10", "-n", "10")
	require.NoError(t, err)
	assert.Equal(t, "17.4255351965\n", out)
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "pathlen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("a: 0\nb: 10\nsegment_counts: [10, 51]\n"), 0o644))

	out, err := run(t, "analyze", "--config", cfgPath, "--speed=2", "--out-dir", dir, "--no-banner")
	require.NoError(t, err)
	assert.Contains(t, out, "Estimated travel time (T = L/v): ")
	assert.NotContains(t, out, "NPC Path Length Analyzer")

	data, err := os.ReadFile(filepath.Join(dir, "convergence_analysis.csv"))
	require.NoError(t, err)
	assert.Equal(t, "n_segments,calculated_length\n10,17.425535\n51,17.194147\n", string(data))

	data, err = os.ReadFile(filepath.Join(dir, "path_data.csv"))
	require.NoError(t, err)
	assert.Equal(t, 201, strings.Count(string(data), "\n"))
}

func TestLocateCommandMissingSpeed(t *testing.T) {
	_, err := run(t, "locate", "--a=0", "--b=1")
	assert.ErrorIs(t, err, errMissingSpeed)
}
