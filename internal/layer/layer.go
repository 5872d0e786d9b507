// Package layer models a Vulkan layer as described by its manifest: the
// layer's identity and versions, the platforms it supports, its settings
// tree and any recommended setting presets.
package layer

import (
	"strings"

	"layerdoc/internal/setting"
	"layerdoc/internal/vk"
)

// Preset is a named bundle of setting values representing a recommended
// configuration shipped with the layer.
type Preset struct {
	Label       string `json:"label"`
	Description string `json:"description"`

	// Settings are the values the preset applies, keyed against the
	// layer's meta tree.
	Settings []*setting.Data `json:"-"`
}

// Layer aggregates everything the manifest declares about one layer. A
// loaded Layer is immutable for the duration of an editing or export
// session.
type Layer struct {
	Key                   string       `json:"name"`
	URL                   string       `json:"url,omitempty"`
	Description           string       `json:"description,omitempty"`
	Introduction          string       `json:"introduction,omitempty"`
	APIVersion            vk.Version   `json:"api_version"`
	ImplementationVersion string       `json:"implementation_version,omitempty"`
	FileFormatVersion     vk.Version   `json:"file_format_version"`
	ManifestPath          string       `json:"-"`
	BinaryPath            string       `json:"library_path,omitempty"`
	Platforms             vk.Platforms `json:"-"`
	Status                vk.Status    `json:"-"`

	Settings setting.MetaSet `json:"-"`
	Presets  []Preset        `json:"-"`
}

// FindSetting resolves a setting key anywhere in the layer's meta tree,
// returning a typed lookup error when absent.
func (l *Layer) FindSetting(key string) (*setting.Meta, error) {
	if meta := l.Settings.Find(key); meta != nil {
		return meta, nil
	}
	return nil, setting.NewSettingNotFoundError(key)
}

// NewDataSet creates a data set holding the default value of every setting
// the layer declares.
func (l *Layer) NewDataSet() (*setting.DataSet, error) {
	return setting.NewDataSet(l.Settings)
}

// SettingPrefix returns the variable prefix used in vk_layer_settings.txt
// for this layer: the layer key without its "VK_LAYER_" prefix, lowercased,
// with a trailing dot ("VK_LAYER_KHRONOS_validation" -> "khronos_validation.").
func (l *Layer) SettingPrefix() string {
	return SettingPrefix(l.Key)
}

// SettingPrefix derives the vk_layer_settings.txt variable prefix from a
// layer key.
func SettingPrefix(layerKey string) string {
	key := strings.TrimPrefix(layerKey, "VK_LAYER_")
	return strings.ToLower(key) + "."
}
