package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cliTestManifest = `{
  "file_format_version": "1.2.0",
  "layer": {
    "name": "VK_LAYER_TEST_cli",
    "api_version": "1.3.204",
    "description": "CLI test layer",
    "features": {
      "settings": [
        {
          "key": "enable",
          "label": "Enable",
          "type": "BOOL",
          "default": true
        },
        {
          "key": "mode",
          "label": "Mode",
          "type": "ENUM",
          "default": "fast",
          "values": [
            {"key": "fast", "label": "Fast"},
            {"key": "slow", "label": "Slow"}
          ]
        }
      ]
    }
  }
}`

// writeTestManifest writes the shared CLI fixture into a temp dir and
// points HOME there so no real user config is picked up.
func writeTestManifest(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	manifestPath := filepath.Join(tempDir, "VkLayer_test_cli.json")
	require.NoError(t, os.WriteFile(manifestPath, []byte(cliTestManifest), 0644))
	return manifestPath
}

func TestListCommand(t *testing.T) {
	manifestPath := writeTestManifest(t)

	cmd := newListCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{manifestPath})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "VK_LAYER_TEST_cli")
	assert.Contains(t, out, "test_cli.enable")
	assert.Contains(t, out, "TRUE")
	assert.Contains(t, out, "test_cli.mode")
}

func TestListCommandJSONOutput(t *testing.T) {
	manifestPath := writeTestManifest(t)

	cmd := newListCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"--output", "json", manifestPath})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), `"name": "VK_LAYER_TEST_cli"`)
	listOutputFormat = ""
}

func TestListCommandMissingManifest(t *testing.T) {
	writeTestManifest(t)

	cmd := newListCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"/nonexistent/manifest.json"})

	assert.Error(t, cmd.Execute())
}
