package formatting

import (
	"fmt"
	"strings"

	"layerdoc/internal/layer"
)

// ConsoleFormatter provides simple human-readable console output
type ConsoleFormatter struct {
	options Options
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(options Options) Formatter {
	return &ConsoleFormatter{
		options: options,
	}
}

// FormatLayer renders the layer header and settings as indented text lines.
func (f *ConsoleFormatter) FormatLayer(l *layer.Layer) (string, error) {
	summary, err := Summarize(l)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if summary.Status != "" {
		fmt.Fprintf(&sb, "%s (%s)\n", summary.Name, summary.Status)
	} else {
		fmt.Fprintf(&sb, "%s\n", summary.Name)
	}
	if summary.Description != "" && !f.options.Quiet {
		fmt.Fprintf(&sb, "  %s\n", summary.Description)
	}
	if summary.APIVersion != "" {
		fmt.Fprintf(&sb, "  API Version: %s\n", summary.APIVersion)
	}
	if summary.Platforms != "" {
		fmt.Fprintf(&sb, "  Platforms: %s\n", summary.Platforms)
	}

	if len(summary.Settings) == 0 {
		sb.WriteString("\nNo settings declared.\n")
		return sb.String(), nil
	}

	fmt.Fprintf(&sb, "\nSettings (%d):\n", len(summary.Settings))
	for _, row := range summary.Settings {
		env := row.Env
		if env == "" {
			env = "N/A"
		}
		fmt.Fprintf(&sb, "  %-30s %-12s default=%-16q env=%s\n", row.Variable, row.Type, row.Default, env)
	}

	if len(summary.Presets) > 0 {
		fmt.Fprintf(&sb, "\nPresets (%d): %s\n", len(summary.Presets), strings.Join(summary.Presets, ", "))
	}
	return sb.String(), nil
}

// SetOptions updates the formatter options
func (f *ConsoleFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *ConsoleFormatter) GetOptions() Options {
	return f.options
}
