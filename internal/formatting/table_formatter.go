package formatting

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"layerdoc/internal/layer"
)

// TableFormatter provides rich table output formatting
type TableFormatter struct {
	options Options
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(options Options) Formatter {
	return &TableFormatter{
		options: options,
	}
}

// FormatLayer renders the layer's documented settings as a table.
func (f *TableFormatter) FormatLayer(l *layer.Layer) (string, error) {
	rows, err := SettingRows(l)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return f.formatEmptyMessage(fmt.Sprintf("Layer %s has no settings", l.Key)), nil
	}

	t := f.createTable()
	t.SetTitle(l.Key)
	t.AppendHeader(table.Row{
		f.header("KEY"),
		f.header("TYPE"),
		f.header("DEFAULT"),
		f.header("VARIABLE"),
		f.header("PLATFORMS"),
	})

	for _, row := range rows {
		t.AppendRow(table.Row{
			row.Key,
			row.Type,
			row.Default,
			row.Variable,
			row.Platforms,
		})
	}

	return t.Render() + "\n", nil
}

// SetOptions updates the formatter options
func (f *TableFormatter) SetOptions(options Options) {
	f.options = options
}

// GetOptions returns the current formatter options
func (f *TableFormatter) GetOptions() Options {
	return f.options
}

// Helper methods

// createTable creates a new table with standard styling
func (f *TableFormatter) createTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	return t
}

// header colors a header cell when color output is enabled
func (f *TableFormatter) header(name string) string {
	if !f.options.Color {
		return name
	}
	return text.FgHiCyan.Sprint(name)
}

// formatEmptyMessage formats empty result messages
func (f *TableFormatter) formatEmptyMessage(message string) string {
	if !f.options.Color {
		return message + "\n"
	}
	return text.FgYellow.Sprint(message) + "\n"
}
