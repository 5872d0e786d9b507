package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Helper function to create a temporary config file
func createTempConfigFile(t *testing.T, dir string, content LayerdocConfig) {
	t.Helper()
	data, err := yaml.Marshal(&content)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, configFileName), data, 0644)
	require.NoError(t, err)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	tempDir := t.TempDir()

	loaded, err := LoadConfig(tempDir)
	assert.NoError(t, err)
	assert.Equal(t, GetDefaultConfig(), loaded)
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	tempDir := t.TempDir()
	createTempConfigFile(t, tempDir, LayerdocConfig{
		Export:      ExportConfig{OutputDir: "/tmp/docs"},
		List:        ListConfig{Format: "table"},
		SearchPaths: []string{"/usr/share/vulkan/explicit_layer.d"},
	})

	loaded, err := LoadConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/docs", loaded.Export.OutputDir)
	assert.Equal(t, "table", loaded.List.Format)
	assert.Equal(t, []string{"/usr/share/vulkan/explicit_layer.d"}, loaded.SearchPaths)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, configFileName), []byte("list:\n  format: json\n"), 0644)
	require.NoError(t, err)

	loaded, err := LoadConfig(tempDir)
	require.NoError(t, err)
	assert.Equal(t, "json", loaded.List.Format)
	assert.Equal(t, ".", loaded.Export.OutputDir)
}

func TestLoadConfig_MalformedFileFails(t *testing.T) {
	tempDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tempDir, configFileName), []byte("export: [not a map"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(tempDir)
	assert.Error(t, err)
}
