package setting

import (
	"fmt"

	"layerdoc/internal/vk"
)

// EnumValue is one declared value of an enum- or flags-typed setting.
type EnumValue struct {
	Key         string
	Label       string
	Description string
	View        View
	Platforms   vk.Platforms
}

// ListElement is one entry of a list-typed setting. An element is addressed
// either by its key or, for keyless entries, by its numeric field.
type ListElement struct {
	Key     string
	Number  int
	Enabled bool
}

// Spec is the type-specific payload of a Meta node: the default value plus
// any constraints. Exactly one Spec implementation matches each non-group
// Type; group nodes carry a nil Spec.
type Spec interface {
	settingSpec()
}

// BoolSpec is the payload of a TypeBool or TypeBoolNumeric setting.
type BoolSpec struct {
	Default bool
}

// IntSpec is the payload of a TypeInt setting. Nil bounds are unbounded.
type IntSpec struct {
	Default int
	Min     *int
	Max     *int
}

// IsValid reports whether v satisfies the declared range.
func (s *IntSpec) IsValid(v int) bool {
	if s.Min != nil && v < *s.Min {
		return false
	}
	if s.Max != nil && v > *s.Max {
		return false
	}
	return true
}

// FloatSpec is the payload of a TypeFloat setting. Nil bounds are
// unbounded. Width and Precision declare the rendering format.
type FloatSpec struct {
	Default   float64
	Min       *float64
	Max       *float64
	Width     int
	Precision int
}

// IsValid reports whether v satisfies the declared range.
func (s *FloatSpec) IsValid(v float64) bool {
	if s.Min != nil && v < *s.Min {
		return false
	}
	if s.Max != nil && v > *s.Max {
		return false
	}
	return true
}

// Format returns the fmt verb rendering a value of this setting, built
// from the declared width and precision ("%1.2f", "%.3f", "%f").
func (s *FloatSpec) Format() string {
	verb := "%"
	if s.Width > 0 {
		verb += fmt.Sprintf("%d", s.Width)
	}
	if s.Precision > 0 {
		verb += fmt.Sprintf(".%d", s.Precision)
	}
	return verb + "f"
}

// StringSpec is the payload of a TypeString setting.
type StringSpec struct {
	Default string
}

// FramesSpec is the payload of a TypeFrames setting. The value is a frame
// range expression kept verbatim ("1-10,30,60-70").
type FramesSpec struct {
	Default string
}

// EnumSpec is the payload of a TypeEnum setting: a single choice among an
// ordered closed value list.
type EnumSpec struct {
	Default string
	Values  []EnumValue
}

// Value returns the declared enum value for key, or nil.
func (s *EnumSpec) Value(key string) *EnumValue {
	for i := range s.Values {
		if s.Values[i].Key == key {
			return &s.Values[i]
		}
	}
	return nil
}

// FlagsSpec is the payload of a TypeFlags setting: any combination of an
// ordered closed value list.
type FlagsSpec struct {
	Default []string
	Values  []EnumValue
}

// Value returns the declared flag value for key, or nil.
func (s *FlagsSpec) Value(key string) *EnumValue {
	for i := range s.Values {
		if s.Values[i].Key == key {
			return &s.Values[i]
		}
	}
	return nil
}

// ListSpec is the payload of a TypeList setting. Allowed, when non-empty,
// restricts the elements a value may contain.
type ListSpec struct {
	Default []ListElement
	Allowed []ListElement
}

// FilesystemSpec is the payload of the load-file, save-file and save-folder
// types. Filter is the file-dialog filter expression from the manifest.
type FilesystemSpec struct {
	Default string
	Filter  string
}

func (*BoolSpec) settingSpec()       {}
func (*IntSpec) settingSpec()        {}
func (*FloatSpec) settingSpec()      {}
func (*StringSpec) settingSpec()     {}
func (*FramesSpec) settingSpec()     {}
func (*EnumSpec) settingSpec()       {}
func (*FlagsSpec) settingSpec()      {}
func (*ListSpec) settingSpec()       {}
func (*FilesystemSpec) settingSpec() {}

// DependenceMode selects how a setting's dependence list is evaluated when
// deciding whether the setting is currently enabled.
type DependenceMode int

const (
	// DependenceNone means the setting has no dependence and is always enabled.
	DependenceNone DependenceMode = iota
	// DependenceAll enables the setting only when every listed value matches.
	DependenceAll
	// DependenceAny enables the setting when at least one listed value matches.
	DependenceAny
)

// Meta is the static description of one configurable setting. Group nodes
// structure the tree and carry no payload; every other node owns a Spec
// matching its Type.
type Meta struct {
	Key         string
	Label       string
	Description string
	Type        Type
	View        View
	Status      vk.Status
	Platforms   vk.Platforms

	// Env is the environment variable overriding this setting, if any.
	Env string

	// Children are nested settings, traversed in declaration order.
	Children MetaSet

	// Dependence lists values of other settings that gate this one,
	// evaluated under DependenceMode against the live data set.
	Dependence     []*Data
	DependenceMode DependenceMode

	Spec Spec
}

// MetaSet is an ordered collection of sibling setting descriptions.
type MetaSet []*Meta

// Find resolves key anywhere in the tree, depth first in declaration order.
// It returns nil when the key is absent; callers decide whether that is an
// error.
func (s MetaSet) Find(key string) *Meta {
	for _, meta := range s {
		if meta.Key == key {
			return meta
		}
		if found := meta.Children.Find(key); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node of the tree depth first in declaration order.
func (s MetaSet) Walk(visit func(*Meta)) {
	for _, meta := range s {
		visit(meta)
		meta.Children.Walk(visit)
	}
}

// CountValues returns the number of value-carrying (non-group) settings in
// the whole tree.
func (s MetaSet) CountValues() int {
	count := 0
	s.Walk(func(meta *Meta) {
		if meta.Type != TypeGroup {
			count++
		}
	})
	return count
}

// Validate checks the tree invariants: unique keys, valid types, and a
// payload matching each node's declared type.
func (s MetaSet) Validate() error {
	seen := make(map[string]bool)
	var err error
	s.Walk(func(meta *Meta) {
		if err != nil {
			return
		}
		if seen[meta.Key] {
			err = fmt.Errorf("duplicate setting key %q", meta.Key)
			return
		}
		seen[meta.Key] = true
		if !meta.Type.IsValid() {
			err = &UnsupportedTypeError{Key: meta.Key, Type: meta.Type}
			return
		}
		if specErr := meta.checkSpec(); specErr != nil {
			err = specErr
		}
	})
	return err
}

// checkSpec verifies the payload kind agrees with the declared type.
func (m *Meta) checkSpec() error {
	ok := false
	switch m.Type {
	case TypeGroup:
		ok = m.Spec == nil
	case TypeBool, TypeBoolNumeric:
		_, ok = m.Spec.(*BoolSpec)
	case TypeInt:
		_, ok = m.Spec.(*IntSpec)
	case TypeFloat:
		_, ok = m.Spec.(*FloatSpec)
	case TypeString:
		_, ok = m.Spec.(*StringSpec)
	case TypeFrames:
		_, ok = m.Spec.(*FramesSpec)
	case TypeEnum:
		_, ok = m.Spec.(*EnumSpec)
	case TypeFlags:
		_, ok = m.Spec.(*FlagsSpec)
	case TypeList:
		_, ok = m.Spec.(*ListSpec)
	case TypeLoadFile, TypeSaveFile, TypeSaveFolder:
		_, ok = m.Spec.(*FilesystemSpec)
	}
	if !ok {
		return &UnsupportedTypeError{Key: m.Key, Type: m.Type}
	}
	return nil
}
