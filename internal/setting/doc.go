// Package setting implements the typed settings model of a Vulkan layer.
//
// A layer declares its configurable options as an ordered tree of Meta
// nodes. Each Meta carries the static description of one option: its key,
// type, visibility, supported platforms and a type-specific payload (Spec)
// holding the default value and constraints. Group nodes carry no value of
// their own and exist purely to nest other settings.
//
// The current value of a setting lives in a Data record, joined to its Meta
// by key through a DataSet. Meta trees are immutable once loaded from a
// manifest; DataSets are created per editing session and mutated freely.
//
// Formatting of defaults and values into their canonical textual form is
// provided by FormatDefault and FormatValue, which dispatch on the setting
// type exactly once per operation. An unknown or mismatched type surfaces
// as an UnsupportedTypeError rather than undefined behavior.
package setting
