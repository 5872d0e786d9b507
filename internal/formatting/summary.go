package formatting

import (
	"layerdoc/internal/layer"
	"layerdoc/internal/setting"
	"layerdoc/internal/vk"
)

// SettingRow is one settings-overview entry: a non-group, non-hidden
// setting with its rendered default and derived variable names. JSON tags
// double as the YAML field names through sigs.k8s.io/yaml.
type SettingRow struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Default   string `json:"default"`
	Variable  string `json:"variable"`
	Env       string `json:"environment,omitempty"`
	Platforms string `json:"platforms,omitempty"`
}

// LayerSummary is the serializable form of a layer used by the structured
// output formats.
type LayerSummary struct {
	Name                  string       `json:"name"`
	Description           string       `json:"description,omitempty"`
	URL                   string       `json:"url,omitempty"`
	APIVersion            string       `json:"apiVersion,omitempty"`
	ImplementationVersion string       `json:"implementationVersion,omitempty"`
	Platforms             string       `json:"platforms,omitempty"`
	Status                string       `json:"status,omitempty"`
	Settings              []SettingRow `json:"settings"`
	Presets               []string     `json:"presets,omitempty"`
}

// Summarize flattens a layer into its summary form. The settings filter
// matches the documentation generator: group nodes and hidden settings are
// skipped while their children are still traversed.
func Summarize(l *layer.Layer) (LayerSummary, error) {
	summary := LayerSummary{
		Name:                  l.Key,
		Description:           l.Description,
		URL:                   l.URL,
		ImplementationVersion: l.ImplementationVersion,
		Platforms:             l.Platforms.String(),
	}
	if !l.APIVersion.IsZero() {
		summary.APIVersion = l.APIVersion.String()
	}
	if l.Status != vk.StatusStable {
		summary.Status = l.Status.Token()
	}
	for _, preset := range l.Presets {
		summary.Presets = append(summary.Presets, preset.Label)
	}

	rows, err := SettingRows(l)
	if err != nil {
		return LayerSummary{}, err
	}
	summary.Settings = rows
	return summary, nil
}

// SettingRows builds the overview rows for every documented setting.
func SettingRows(l *layer.Layer) ([]SettingRow, error) {
	var rows []SettingRow
	var rowErr error

	l.Settings.Walk(func(meta *setting.Meta) {
		if rowErr != nil || meta.Type == setting.TypeGroup || meta.View == setting.ViewHidden {
			return
		}

		defaultValue, err := setting.FormatDefault(meta)
		if err != nil {
			rowErr = err
			return
		}

		rows = append(rows, SettingRow{
			Key:       meta.Key,
			Label:     meta.Label,
			Type:      meta.Type.Token(),
			Default:   defaultValue,
			Variable:  l.SettingPrefix() + meta.Key,
			Env:       meta.Env,
			Platforms: meta.Platforms.String(),
		})
	})
	if rowErr != nil {
		return nil, rowErr
	}
	return rows, nil
}
