package config

// LayerdocConfig is the top-level configuration structure for layerdoc.
type LayerdocConfig struct {
	Export ExportConfig `yaml:"export"`
	List   ListConfig   `yaml:"list"`

	// SearchPaths are extra directories scanned when a manifest is
	// referenced by layer key instead of by file path.
	SearchPaths []string `yaml:"searchPaths,omitempty"`
}

// ExportConfig defines defaults for the export command.
type ExportConfig struct {
	OutputDir string `yaml:"outputDir,omitempty"` // Directory HTML files are written to (default: ".")
}

// ListConfig defines defaults for the list command.
type ListConfig struct {
	Format string `yaml:"format,omitempty"` // Output format (default: "console")
}

// GetDefaultConfig returns the default configuration for layerdoc.
func GetDefaultConfig() LayerdocConfig {
	return LayerdocConfig{
		Export: ExportConfig{
			OutputDir: ".",
		},
		List: ListConfig{
			Format: "console",
		},
	}
}
