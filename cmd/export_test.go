package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand(t *testing.T) {
	manifestPath := writeTestManifest(t)
	outputDir := t.TempDir()

	cmd := newExportCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--quiet", "--output", outputDir, manifestPath})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(outputDir, "VK_LAYER_TEST_cli.html"))
	require.NoError(t, err)
	html := string(data)
	assert.Contains(t, html, "VK_LAYER_TEST_cli")
	assert.Contains(t, html, "test_cli.enable")

	exportOutputDir = ""
	exportQuiet = false
}

func TestExportCommandBadManifestFails(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	badPath := filepath.Join(tempDir, "bad.json")
	require.NoError(t, os.WriteFile(badPath, []byte("{not json"), 0644))

	cmd := newExportCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--quiet", "--output", tempDir, badPath})

	assert.Error(t, cmd.Execute())

	exportOutputDir = ""
	exportQuiet = false
}

func TestExportCommandMultipleManifests(t *testing.T) {
	manifestPath := writeTestManifest(t)
	outputDir := t.TempDir()

	// Same manifest twice exercises the concurrent path; both exports
	// target the same layer key and must still succeed.
	cmd := newExportCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--quiet", "--output", outputDir, manifestPath, manifestPath})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(outputDir, "VK_LAYER_TEST_cli.html"))
	assert.NoError(t, err)

	exportOutputDir = ""
	exportQuiet = false
}
