package formatting

import (
	"encoding/json"
	"fmt"

	"layerdoc/internal/layer"
)

// JSONFormatter provides JSON output formatting
type JSONFormatter struct {
	options Options
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(options Options) Formatter {
	return &JSONFormatter{
		options: options,
	}
}

// FormatLayer renders the layer summary as indented JSON.
func (f *JSONFormatter) FormatLayer(l *layer.Layer) (string, error) {
	summary, err := Summarize(l)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling layer summary: %w", err)
	}
	return string(data) + "\n", nil
}

// SetOptions updates the formatter options
func (f *JSONFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *JSONFormatter) GetOptions() Options {
	return f.options
}
