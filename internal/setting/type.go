package setting

import (
	"fmt"
	"strings"
)

// Type is the closed set of setting kinds a layer manifest can declare.
type Type int

const (
	TypeGroup Type = iota
	TypeBool
	TypeBoolNumeric // deprecated numeric encoding of a boolean ("1"/"0")
	TypeInt
	TypeFloat
	TypeString
	TypeEnum
	TypeFlags
	TypeList
	TypeFrames
	TypeLoadFile
	TypeSaveFile
	TypeSaveFolder
)

var typeTokens = map[Type]string{
	TypeGroup:       "GROUP",
	TypeBool:        "BOOL",
	TypeBoolNumeric: "BOOL_NUMERIC_DEPRECATED",
	TypeInt:         "INT",
	TypeFloat:       "FLOAT",
	TypeString:      "STRING",
	TypeEnum:        "ENUM",
	TypeFlags:       "FLAGS",
	TypeList:        "LIST",
	TypeFrames:      "FRAMES",
	TypeLoadFile:    "LOAD_FILE",
	TypeSaveFile:    "SAVE_FILE",
	TypeSaveFolder:  "SAVE_FOLDER",
}

// Token returns the stable uppercase token for the type, as used in layer
// manifests and generated documentation.
func (t Type) Token() string {
	if token, ok := typeTokens[t]; ok {
		return token
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// String makes Type satisfy fmt.Stringer.
func (t Type) String() string { return t.Token() }

// IsValid reports whether t is a member of the closed taxonomy.
func (t Type) IsValid() bool {
	_, ok := typeTokens[t]
	return ok
}

// IsFilesystem reports whether the type stores a filesystem path.
func (t Type) IsFilesystem() bool {
	return t == TypeLoadFile || t == TypeSaveFile || t == TypeSaveFolder
}

// IsEnumeration reports whether the type declares a closed value list
// (single-choice enums and multi-choice flags).
func (t Type) IsEnumeration() bool {
	return t == TypeEnum || t == TypeFlags
}

// ParseType maps a manifest token to its Type. The legacy "BOOL_NUMERIC"
// spelling is accepted as an alias of the deprecated numeric bool.
func ParseType(token string) (Type, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if normalized == "BOOL_NUMERIC" {
		return TypeBoolNumeric, nil
	}
	for t, candidate := range typeTokens {
		if candidate == normalized {
			return t, nil
		}
	}
	return TypeGroup, &UnsupportedTypeError{Token: token}
}

// View is the visibility tier of a setting, controlling whether it appears
// in documentation and in the standard editing surface.
type View int

const (
	ViewStandard View = iota
	ViewAdvanced
	ViewHidden
)

var viewTokens = map[View]string{
	ViewStandard: "Standard",
	ViewAdvanced: "Advanced",
	ViewHidden:   "Hidden",
}

// Token returns the display token for the view tier.
func (v View) Token() string {
	if token, ok := viewTokens[v]; ok {
		return token
	}
	return "Unknown"
}

// String makes View satisfy fmt.Stringer.
func (v View) String() string { return v.Token() }

// ParseView maps a manifest token to its View. An empty token defaults to
// the standard tier.
func ParseView(token string) (View, error) {
	if token == "" {
		return ViewStandard, nil
	}
	for view, t := range viewTokens {
		if strings.EqualFold(t, token) {
			return view, nil
		}
	}
	return ViewStandard, fmt.Errorf("unknown setting view %q", token)
}
