package formatting

import (
	"fmt"

	"sigs.k8s.io/yaml"

	"layerdoc/internal/layer"
)

// YAMLFormatter provides YAML output formatting
type YAMLFormatter struct {
	options Options
}

// NewYAMLFormatter creates a new YAML formatter
func NewYAMLFormatter(options Options) Formatter {
	return &YAMLFormatter{
		options: options,
	}
}

// FormatLayer renders the layer summary as YAML. The field names come from
// the summary's JSON tags.
func (f *YAMLFormatter) FormatLayer(l *layer.Layer) (string, error) {
	summary, err := Summarize(l)
	if err != nil {
		return "", err
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("marshaling layer summary: %w", err)
	}
	return string(data), nil
}

// SetOptions updates the formatter options
func (f *YAMLFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *YAMLFormatter) GetOptions() Options {
	return f.options
}
