package doc

import (
	"fmt"
	"html"
	"os"
	"strings"

	"layerdoc/internal/layer"
	"layerdoc/internal/setting"
	"layerdoc/internal/vk"
	"layerdoc/pkg/logging"
)

const subsystem = "DocGenerator"

// settingsDocCutover is the API version at which the per-SDK settings
// documentation URL became available; older layers link the master branch.
var settingsDocCutover = vk.Version{Major: 1, Minor: 7, Patch: 176}

// Writer hands a finished document to its destination. The default writer
// is os.WriteFile.
type Writer func(path string, data []byte) error

func defaultWriter(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

// Generator produces HTML documentation for layers. The zero value is
// ready to use and writes through os.WriteFile.
type Generator struct {
	// Writer overrides the destination collaborator, mainly for tests.
	Writer Writer

	diagnostics []string
}

// NewGenerator creates a generator writing through os.WriteFile.
func NewGenerator() *Generator {
	return &Generator{Writer: defaultWriter}
}

// Diagnostics returns the non-fatal problems encountered by the last
// Generate call, such as preset values without a matching setting.
func (g *Generator) Diagnostics() []string {
	return append([]string(nil), g.diagnostics...)
}

// Export generates the document for l and writes it to path. A destination
// that cannot be written is reported as an error, never swallowed.
func (g *Generator) Export(l *layer.Layer, path string) error {
	text, err := g.Generate(l)
	if err != nil {
		return err
	}

	writer := g.Writer
	if writer == nil {
		writer = defaultWriter
	}
	if err := writer(path, []byte(text)); err != nil {
		return fmt.Errorf("writing layer documentation to %s: %w", path, err)
	}
	logging.Info(subsystem, "exported documentation for %s to %s", l.Key, path)
	return nil
}

// Generate produces the complete HTML document describing l.
func (g *Generator) Generate(l *layer.Layer) (string, error) {
	g.diagnostics = nil

	data := shellData{
		Title:                 html.EscapeString(l.Key),
		URL:                   l.URL,
		Description:           html.EscapeString(l.Description),
		Introduction:          html.EscapeString(l.Introduction),
		ImplementationVersion: html.EscapeString(l.ImplementationVersion),
		ManifestPath:          l.ManifestPath,
		BinaryPath:            html.EscapeString(l.BinaryPath),
		Platforms:             platformsHTML(l.Platforms),
		SettingCount:          l.Settings.CountValues(),
		PresetCount:           len(l.Presets),
	}
	if !l.APIVersion.IsZero() {
		data.APIVersion = l.APIVersion.String()
	}
	if !l.FileFormatVersion.IsZero() {
		data.FileFormatVersion = l.FileFormatVersion.String()
	}
	if l.Status != vk.StatusStable {
		data.StatusToken = l.Status.Token()
	}

	if data.SettingCount > 0 {
		settingsHTML, err := g.buildSettings(l)
		if err != nil {
			return "", err
		}
		data.SettingsHTML = settingsHTML
	}
	if data.PresetCount > 0 {
		data.PresetsHTML = g.buildPresets(l)
	}

	return renderShell(data)
}

// settingsDocURL returns the documentation page for vk_layer_settings.txt
// matching the layer's API version.
func settingsDocURL(l *layer.Layer) string {
	if l.APIVersion.GreaterThan(settingsDocCutover) {
		return fmt.Sprintf(
			"https://github.com/LunarG/VulkanTools/tree/sdk-%s.0/vkconfig#vulkan-layers-settings",
			l.APIVersion)
	}
	return "https://github.com/LunarG/VulkanTools/tree/master/vkconfig#vulkan-layers-settings"
}

// platformsHTML renders a platform mask as code-styled tokens. An empty
// mask renders as the empty string.
func platformsHTML(mask vk.Platforms) string {
	tokens := mask.Tokens()
	var sb strings.Builder
	for i, token := range tokens {
		sb.WriteString(`<span class="code">` + token + `</span>`)
		if i < len(tokens)-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// documented reports whether a setting gets its own overview row and
// detail section. Group nodes and hidden settings are suppressed, but
// their children are still traversed by the callers.
func documented(meta *setting.Meta) bool {
	return meta.Type != setting.TypeGroup && meta.View != setting.ViewHidden
}

func (g *Generator) buildSettings(l *layer.Layer) (string, error) {
	var sb strings.Builder

	sb.WriteString("<h2><a href=\"#top\" id=\"settings\">Layer Settings Overview</a></h2>\n")
	sb.WriteString("<table><thead><tr>")
	sb.WriteString(fmt.Sprintf(
		"<th>Setting</th><th>Type</th><th>Default Value</th>"+
			"<th><a href=\"%s\">vk_layer_settings.txt</a> Variable</th>"+
			"<th>Environment Variable</th><th>Supported Platforms</th>",
		settingsDocURL(l)))
	sb.WriteString("</tr></thead><tbody>\n")
	if err := g.writeOverview(&sb, l, l.Settings); err != nil {
		return "", err
	}
	sb.WriteString("</tbody></table>\n")

	sb.WriteString("<h2><a href=\"#top\">Layer Settings Details</a></h2>\n")
	if err := g.writeDetails(&sb, l, l.Settings); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (g *Generator) writeOverview(sb *strings.Builder, l *layer.Layer, settings setting.MetaSet) error {
	for _, meta := range settings {
		if documented(meta) {
			defaultValue, err := setting.FormatDefault(meta)
			if err != nil {
				return err
			}

			sb.WriteString("<tr>\n")
			sb.WriteString(fmt.Sprintf("\t<td><a id=\"%s\" href=\"#%s-detailed\">%s</a></td>\n",
				meta.Key, meta.Key, html.EscapeString(meta.Label)))
			sb.WriteString(fmt.Sprintf("\t<td><span class=\"code\">%s</span></td>\n", meta.Type.Token()))
			sb.WriteString(fmt.Sprintf("\t<td><span class=\"code\">%s</span></td>\n", html.EscapeString(defaultValue)))
			sb.WriteString(fmt.Sprintf("\t<td><span class=\"code\">%s</span></td>\n", l.SettingPrefix()+meta.Key))
			if meta.Env == "" {
				sb.WriteString("\t<td>N/A</td>\n")
			} else {
				sb.WriteString(fmt.Sprintf("\t<td><span class=\"code\">%s</span></td>\n", meta.Env))
			}
			sb.WriteString(fmt.Sprintf("\t<td>%s</td>\n", platformsHTML(meta.Platforms)))
			sb.WriteString("</tr>\n")
		}

		if err := g.writeOverview(sb, l, meta.Children); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeDetails(sb *strings.Builder, l *layer.Layer, settings setting.MetaSet) error {
	for _, meta := range settings {
		if documented(meta) {
			if err := g.writeDetail(sb, l, meta); err != nil {
				return err
			}
		}

		if err := g.writeDetails(sb, l, meta.Children); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) writeDetail(sb *strings.Builder, l *layer.Layer, meta *setting.Meta) error {
	label := html.EscapeString(meta.Label)
	if meta.Status == vk.StatusStable {
		sb.WriteString(fmt.Sprintf("<h3><a id=\"%s-detailed\" href=\"#%s\">%s</a></h3>\n",
			meta.Key, meta.Key, label))
	} else {
		sb.WriteString(fmt.Sprintf("<h3><a id=\"%s-detailed\" href=\"#%s\">%s</a> (%s)</h3>\n",
			meta.Key, meta.Key, label, meta.Status.Token()))
	}

	sb.WriteString(fmt.Sprintf("\t<p>%s</p>\n", html.EscapeString(meta.Description)))

	sb.WriteString("<h4>Setting Properties:</h4>\n")
	sb.WriteString("<ul>\n")
	sb.WriteString(fmt.Sprintf(
		"\t<li><a href=\"%s\">vk_layer_settings.txt</a> Variable: <span class=\"code\">%s</span></li>\n",
		settingsDocURL(l), l.SettingPrefix()+meta.Key))
	if meta.Env == "" {
		sb.WriteString("\t<li>Environment Variable: <span class=\"code\">N/A</span></li>\n")
	} else {
		sb.WriteString(fmt.Sprintf("\t<li>Environment Variable: <span class=\"code\">%s</span></li>\n", meta.Env))
	}
	sb.WriteString(fmt.Sprintf("\t<li>Platforms Supported: %s</li>\n", platformsHTML(meta.Platforms)))
	if meta.View != setting.ViewStandard {
		sb.WriteString(fmt.Sprintf("\t<li>Setting Level: %s</li>\n", meta.View.Token()))
	}
	sb.WriteString("</ul>\n")

	defaultValue, err := setting.FormatDefault(meta)
	if err != nil {
		return err
	}
	sb.WriteString(fmt.Sprintf(
		"\t<p>Setting Type: <span class=\"code\">%s</span> - Setting Default Value: <span class=\"code\">%s</span></p>\n",
		meta.Type.Token(), html.EscapeString(defaultValue)))

	if meta.Type.IsEnumeration() {
		g.writeEnumTable(sb, meta)
	}
	return nil
}

// enumValues extracts the declared value list of an enumeration setting.
func enumValues(meta *setting.Meta) []setting.EnumValue {
	switch spec := meta.Spec.(type) {
	case *setting.EnumSpec:
		return spec.Values
	case *setting.FlagsSpec:
		return spec.Values
	default:
		return nil
	}
}

func (g *Generator) writeEnumTable(sb *strings.Builder, meta *setting.Meta) {
	sb.WriteString("<table>\n")
	sb.WriteString("<thead><tr><th>Enum Value</th><th>Label</th><th class=\"desc\">Description</th><th>Platforms Supported</th></tr></thead>\n")
	sb.WriteString("<tbody>\n")
	for _, value := range enumValues(meta) {
		if value.View == setting.ViewHidden {
			continue
		}

		platforms := value.Platforms
		if platforms == 0 {
			platforms = meta.Platforms
		}

		sb.WriteString("<tr>\n")
		sb.WriteString(fmt.Sprintf("\t<td>%s</td>\n", value.Key))
		sb.WriteString(fmt.Sprintf("\t<td>%s</td>\n", html.EscapeString(value.Label)))
		if value.Description == "" {
			sb.WriteString("\t<td>N/A</td>\n")
		} else {
			sb.WriteString(fmt.Sprintf("\t<td class=\"desc\">%s</td>\n", html.EscapeString(value.Description)))
		}
		sb.WriteString(fmt.Sprintf("\t<td>%s</td>\n", platformsHTML(platforms)))
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody></table>\n")
}

func (g *Generator) buildPresets(l *layer.Layer) string {
	var sb strings.Builder

	sb.WriteString("<h2><a href=\"#top\" id=\"presets\">Layer Presets</a></h2>\n")
	for _, preset := range l.Presets {
		sb.WriteString(fmt.Sprintf("<h3>%s</h3>\n", html.EscapeString(preset.Label)))
		sb.WriteString(fmt.Sprintf("<p>%s</p>", html.EscapeString(preset.Description)))

		sb.WriteString("<h4>Preset Setting Values:</h4>\n")
		sb.WriteString("<ul>\n")
		for _, data := range preset.Settings {
			meta, err := l.FindSetting(data.Key)
			if err != nil {
				g.report(fmt.Sprintf("preset %q references unknown setting %q", preset.Label, data.Key))
				continue
			}
			value, err := setting.FormatValue(meta, data)
			if err != nil {
				g.report(fmt.Sprintf("preset %q: cannot format value for %q: %v", preset.Label, data.Key, err))
				continue
			}
			sb.WriteString(fmt.Sprintf(
				"\t<li><a href=\"#%s-detailed\">%s</a>: <span class=\"code\">%s</span></li>\n",
				meta.Key, html.EscapeString(meta.Label), html.EscapeString(value)))
		}
		sb.WriteString("</ul>\n")
	}

	return sb.String()
}

func (g *Generator) report(diagnostic string) {
	g.diagnostics = append(g.diagnostics, diagnostic)
	logging.Warn(subsystem, "%s", diagnostic)
}
