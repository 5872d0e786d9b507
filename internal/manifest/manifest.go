// Package manifest loads Vulkan layer JSON manifests into the layer model.
//
// A manifest carries the layer identity under "layer", its settings tree
// under "layer.features.settings" (older manifests use "layer.settings")
// and presets under "layer.features.presets". Settings nest through their
// "settings" array; enum and flags settings declare their closed value
// list under "values".
package manifest

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"layerdoc/internal/layer"
	"layerdoc/internal/setting"
	"layerdoc/internal/vk"
	"layerdoc/pkg/logging"
)

const subsystem = "ManifestLoader"

// Load reads and parses the layer manifest at path.
func Load(path string) (*layer.Layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	l, err := Parse(data, path)
	if err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	logging.Info(subsystem, "loaded %s with %d settings and %d presets",
		l.Key, l.Settings.CountValues(), len(l.Presets))
	return l, nil
}

// Parse builds a Layer from raw manifest JSON. manifestPath is recorded on
// the layer for documentation purposes only; no file access happens here.
func Parse(data []byte, manifestPath string) (*layer.Layer, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("manifest is not valid JSON")
	}

	root := gjson.ParseBytes(data)
	node := root.Get("layer")
	if !node.Exists() {
		return nil, fmt.Errorf(`manifest has no "layer" object`)
	}

	l := &layer.Layer{
		Key:                   node.Get("name").String(),
		URL:                   node.Get("url").String(),
		Description:           node.Get("description").String(),
		Introduction:          node.Get("introduction").String(),
		ImplementationVersion: node.Get("implementation_version").String(),
		BinaryPath:            node.Get("library_path").String(),
		ManifestPath:          manifestPath,
	}
	if l.Key == "" {
		return nil, fmt.Errorf("layer has no name")
	}

	var err error
	if raw := root.Get("file_format_version").String(); raw != "" {
		if l.FileFormatVersion, err = vk.ParseVersion(raw); err != nil {
			return nil, err
		}
	}
	if raw := node.Get("api_version").String(); raw != "" {
		if l.APIVersion, err = vk.ParseVersion(raw); err != nil {
			return nil, err
		}
	}
	if l.Status, err = vk.ParseStatus(node.Get("status").String()); err != nil {
		return nil, err
	}
	if l.Platforms, err = parsePlatformList(node.Get("platforms")); err != nil {
		return nil, err
	}

	settingsNode := node.Get("features.settings")
	if !settingsNode.Exists() {
		settingsNode = node.Get("settings")
	}
	var fixups []dependenceFixup
	if l.Settings, err = parseSettings(settingsNode, &fixups); err != nil {
		return nil, err
	}
	if err := l.Settings.Validate(); err != nil {
		return nil, err
	}
	if err := resolveDependence(l, fixups); err != nil {
		return nil, err
	}

	presetsNode := node.Get("features.presets")
	if !presetsNode.Exists() {
		presetsNode = node.Get("presets")
	}
	if l.Presets, err = parsePresets(l, presetsNode); err != nil {
		return nil, err
	}

	return l, nil
}

func parsePlatformList(node gjson.Result) (vk.Platforms, error) {
	if !node.Exists() {
		return vk.ParsePlatforms(nil)
	}
	var tokens []string
	for _, entry := range node.Array() {
		tokens = append(tokens, entry.String())
	}
	return vk.ParsePlatforms(tokens)
}

// dependenceFixup defers dependence resolution until the full tree exists,
// since a dependence may reference a setting declared after its dependent.
type dependenceFixup struct {
	meta *setting.Meta
	node gjson.Result
}

func parseSettings(node gjson.Result, fixups *[]dependenceFixup) (setting.MetaSet, error) {
	if !node.Exists() {
		return nil, nil
	}

	var metas setting.MetaSet
	var parseErr error
	node.ForEach(func(_, entry gjson.Result) bool {
		meta, err := parseSetting(entry, fixups)
		if err != nil {
			parseErr = err
			return false
		}
		metas = append(metas, meta)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return metas, nil
}

func parseSetting(node gjson.Result, fixups *[]dependenceFixup) (*setting.Meta, error) {
	key := node.Get("key").String()
	if key == "" {
		return nil, fmt.Errorf("setting without a key")
	}

	settingType, err := setting.ParseType(node.Get("type").String())
	if err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}

	meta := &setting.Meta{
		Key:         key,
		Label:       node.Get("label").String(),
		Description: node.Get("description").String(),
		Type:        settingType,
		Env:         node.Get("env").String(),
	}
	if meta.View, err = setting.ParseView(node.Get("view").String()); err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}
	if meta.Status, err = vk.ParseStatus(node.Get("status").String()); err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}
	if meta.Platforms, err = parsePlatformList(node.Get("platforms")); err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}

	if meta.Spec, err = parseSpec(settingType, node); err != nil {
		return nil, fmt.Errorf("setting %s: %w", key, err)
	}

	if dep := node.Get("dependence"); dep.Exists() {
		*fixups = append(*fixups, dependenceFixup{meta: meta, node: dep})
	}

	if meta.Children, err = parseSettings(node.Get("settings"), fixups); err != nil {
		return nil, err
	}
	return meta, nil
}

func parseSpec(settingType setting.Type, node gjson.Result) (setting.Spec, error) {
	defaultNode := node.Get("default")

	switch settingType {
	case setting.TypeGroup:
		return nil, nil

	case setting.TypeBool, setting.TypeBoolNumeric:
		return &setting.BoolSpec{Default: defaultNode.Bool()}, nil

	case setting.TypeInt:
		spec := &setting.IntSpec{Default: int(defaultNode.Int())}
		if min := node.Get("min"); min.Exists() {
			v := int(min.Int())
			spec.Min = &v
		}
		if max := node.Get("max"); max.Exists() {
			v := int(max.Int())
			spec.Max = &v
		}
		return spec, nil

	case setting.TypeFloat:
		spec := &setting.FloatSpec{
			Default:   defaultNode.Float(),
			Width:     int(node.Get("width").Int()),
			Precision: int(node.Get("precision").Int()),
		}
		if min := node.Get("min"); min.Exists() {
			v := min.Float()
			spec.Min = &v
		}
		if max := node.Get("max"); max.Exists() {
			v := max.Float()
			spec.Max = &v
		}
		return spec, nil

	case setting.TypeString:
		return &setting.StringSpec{Default: defaultNode.String()}, nil

	case setting.TypeFrames:
		return &setting.FramesSpec{Default: defaultNode.String()}, nil

	case setting.TypeEnum:
		return &setting.EnumSpec{
			Default: defaultNode.String(),
			Values:  parseEnumValues(node.Get("values")),
		}, nil

	case setting.TypeFlags:
		spec := &setting.FlagsSpec{Values: parseEnumValues(node.Get("values"))}
		for _, entry := range defaultNode.Array() {
			spec.Default = append(spec.Default, entry.String())
		}
		return spec, nil

	case setting.TypeList:
		return &setting.ListSpec{
			Default: parseListElements(defaultNode),
			Allowed: parseListElements(node.Get("values")),
		}, nil

	case setting.TypeLoadFile, setting.TypeSaveFile, setting.TypeSaveFolder:
		return &setting.FilesystemSpec{
			Default: defaultNode.String(),
			Filter:  node.Get("filter").String(),
		}, nil

	default:
		return nil, &setting.UnsupportedTypeError{Type: settingType}
	}
}

func parseEnumValues(node gjson.Result) []setting.EnumValue {
	var values []setting.EnumValue
	for _, entry := range node.Array() {
		value := setting.EnumValue{
			Key:         entry.Get("key").String(),
			Label:       entry.Get("label").String(),
			Description: entry.Get("description").String(),
		}
		// Hidden enum values are legal; other parse problems are not
		// worth failing the whole manifest over, so the view falls
		// back to standard on an unknown token.
		value.View, _ = setting.ParseView(entry.Get("view").String())
		value.Platforms, _ = parseEnumValuePlatforms(entry.Get("platforms"))
		values = append(values, value)
	}
	return values
}

// parseEnumValuePlatforms differs from parsePlatformList in that an absent
// list means "inherit from the setting" (mask 0), not "all platforms".
func parseEnumValuePlatforms(node gjson.Result) (vk.Platforms, error) {
	if !node.Exists() {
		return 0, nil
	}
	var tokens []string
	for _, entry := range node.Array() {
		tokens = append(tokens, entry.String())
	}
	return vk.ParsePlatforms(tokens)
}

func parseListElements(node gjson.Result) []setting.ListElement {
	var elements []setting.ListElement
	for _, entry := range node.Array() {
		element := setting.ListElement{Enabled: true}
		switch {
		case entry.IsObject():
			element.Key = entry.Get("key").String()
			element.Number = int(entry.Get("number").Int())
			if enabled := entry.Get("enabled"); enabled.Exists() {
				element.Enabled = enabled.Bool()
			}
		case entry.Type == gjson.Number:
			element.Number = int(entry.Int())
		default:
			element.Key = entry.String()
		}
		elements = append(elements, element)
	}
	return elements
}

func resolveDependence(l *layer.Layer, fixups []dependenceFixup) error {
	for _, fixup := range fixups {
		mode := setting.DependenceAll
		if fixup.node.Get("mode").String() == "ANY" {
			mode = setting.DependenceAny
		}

		var dependence []*setting.Data
		var resolveErr error
		fixup.node.Get("settings").ForEach(func(_, entry gjson.Result) bool {
			key := entry.Get("key").String()
			meta, err := l.FindSetting(key)
			if err != nil {
				resolveErr = fmt.Errorf("setting %s: dependence on unknown setting %q", fixup.meta.Key, key)
				return false
			}
			data, err := parseDataValue(meta, entry.Get("value"))
			if err != nil {
				resolveErr = fmt.Errorf("setting %s: %w", fixup.meta.Key, err)
				return false
			}
			dependence = append(dependence, data)
			return true
		})
		if resolveErr != nil {
			return resolveErr
		}

		fixup.meta.Dependence = dependence
		fixup.meta.DependenceMode = mode
	}
	return nil
}

func parsePresets(l *layer.Layer, node gjson.Result) ([]layer.Preset, error) {
	if !node.Exists() {
		return nil, nil
	}

	var presets []layer.Preset
	var parseErr error
	node.ForEach(func(_, entry gjson.Result) bool {
		preset := layer.Preset{
			Label:       entry.Get("label").String(),
			Description: entry.Get("description").String(),
		}

		entry.Get("settings").ForEach(func(_, value gjson.Result) bool {
			key := value.Get("key").String()
			meta, err := l.FindSetting(key)
			if err != nil {
				parseErr = fmt.Errorf("preset %q references unknown setting %q", preset.Label, key)
				return false
			}
			data, err := parseDataValue(meta, value.Get("value"))
			if err != nil {
				parseErr = fmt.Errorf("preset %q: %w", preset.Label, err)
				return false
			}
			preset.Settings = append(preset.Settings, data)
			return true
		})
		if parseErr != nil {
			return false
		}

		presets = append(presets, preset)
		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return presets, nil
}

// parseDataValue converts a manifest JSON value into a data record typed
// after meta.
func parseDataValue(meta *setting.Meta, value gjson.Result) (*setting.Data, error) {
	data := &setting.Data{Key: meta.Key, Type: meta.Type}

	switch meta.Type {
	case setting.TypeGroup:
		return nil, fmt.Errorf("setting %s: groups carry no value", meta.Key)
	case setting.TypeBool, setting.TypeBoolNumeric:
		data.Bool = value.Bool()
	case setting.TypeInt:
		data.Int = int(value.Int())
	case setting.TypeFloat:
		data.Float = value.Float()
	case setting.TypeString, setting.TypeFrames, setting.TypeEnum,
		setting.TypeLoadFile, setting.TypeSaveFile, setting.TypeSaveFolder:
		data.String = value.String()
	case setting.TypeFlags:
		for _, entry := range value.Array() {
			data.Flags = append(data.Flags, entry.String())
		}
	case setting.TypeList:
		data.List = parseListElements(value)
	default:
		return nil, &setting.UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
	}
	return data, nil
}
