package doc

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// shellTemplate renders the document frame: doctype, stylesheet, the layer
// header and the "Layer Properties" list. Settings and preset sections are
// prebuilt HTML injected verbatim. Property lines are emitted only when the
// underlying field is present; absence suppresses the line entirely.
const shellTemplate = `<!DOCTYPE html>
<html>
<head><title>{{ .Title }}</title></head>
<body>
<style>
	a {color: #A41E22;}
	h1 {color: #A41E22;}
	h2 {color: #A41E22;}
	table {border: 1px solid; width: 100%; margin-left: auto; margin-right: auto;}
	td {border: 1px dotted;}
	.code {color: #008000; font-family: consolas; }
	.desc {width:50%;}
</style>
<h1 id="top">{{ if .URL }}<a href="{{ .URL }}">{{ .Title }}</a>{{ else }}{{ .Title }}{{ end }}{{ if .StatusToken }} ({{ .StatusToken }}){{ end }}</h1>
{{ if .Description }}<h3>{{ .Description }}</h3>
{{ end }}{{ if .Introduction }}<p>{{ .Introduction }}</p>
{{ end }}<h2><a href="#top">Layer Properties</a></h2>
<ul>
{{ if .APIVersion }}	<li>API Version: {{ .APIVersion }}</li>
{{ end }}{{ if .ImplementationVersion }}	<li>Implementation Version: {{ .ImplementationVersion }}</li>
{{ end }}{{ if .ManifestPath }}	<li>Layer Manifest: {{ base .ManifestPath }}<ul>
{{ if .FileFormatVersion }}		<li>File Format: {{ .FileFormatVersion }}</li>
{{ end }}{{ if .BinaryPath }}		<li>Layer Binary Path: {{ .BinaryPath }}</li>
{{ end }}	</ul></li>
{{ end }}{{ if .Platforms }}	<li>Supported Platforms: {{ .Platforms }}</li>
{{ end }}{{ if .StatusToken }}	<li>Status: {{ .StatusToken }}</li>
{{ end }}{{ if .SettingCount }}	<li><a href="#settings">Number of Layer Settings: {{ .SettingCount }}</a></li>
{{ end }}{{ if .PresetCount }}	<li><a href="#presets">Number of Layer Presets: {{ .PresetCount }}</a></li>
{{ end }}</ul>
{{ if .URL }}<p>Visit <a href="{{ .URL }}">{{ .Title }} home page</a> for more information.</p>
{{ end }}{{ .SettingsHTML }}{{ .PresetsHTML }}</body>
</html>
`

// shellData is the context the shell template renders from. String fields
// holding layer text are escaped before they land here; the *HTML fields
// carry prebuilt markup.
type shellData struct {
	Title                 string
	URL                   string
	StatusToken           string
	Description           string
	Introduction          string
	APIVersion            string
	ImplementationVersion string
	ManifestPath          string
	FileFormatVersion     string
	BinaryPath            string
	Platforms             string
	SettingCount          int
	PresetCount           int
	SettingsHTML          string
	PresetsHTML           string
}

var shell = template.Must(template.New("shell").Funcs(sprig.TxtFuncMap()).Parse(shellTemplate))

func renderShell(data shellData) (string, error) {
	var sb strings.Builder
	if err := shell.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
