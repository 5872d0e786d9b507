package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestFormatDefault(t *testing.T) {
	tests := []struct {
		name     string
		meta     *Meta
		expected string
	}{
		{
			name:     "group renders empty",
			meta:     &Meta{Key: "group", Type: TypeGroup},
			expected: "",
		},
		{
			name:     "bool true",
			meta:     &Meta{Key: "enable", Type: TypeBool, Spec: &BoolSpec{Default: true}},
			expected: "TRUE",
		},
		{
			name:     "bool false",
			meta:     &Meta{Key: "enable", Type: TypeBool, Spec: &BoolSpec{Default: false}},
			expected: "FALSE",
		},
		{
			name:     "numeric bool",
			meta:     &Meta{Key: "legacy", Type: TypeBoolNumeric, Spec: &BoolSpec{Default: true}},
			expected: "1",
		},
		{
			name:     "int decimal",
			meta:     &Meta{Key: "count", Type: TypeInt, Spec: &IntSpec{Default: 42}},
			expected: "42",
		},
		{
			name:     "float with precision",
			meta:     &Meta{Key: "scale", Type: TypeFloat, Spec: &FloatSpec{Default: 1.5, Precision: 2}},
			expected: "1.50",
		},
		{
			name:     "string verbatim",
			meta:     &Meta{Key: "message", Type: TypeString, Spec: &StringSpec{Default: "hello"}},
			expected: "hello",
		},
		{
			name:     "frames verbatim",
			meta:     &Meta{Key: "range", Type: TypeFrames, Spec: &FramesSpec{Default: "1-10,30"}},
			expected: "1-10,30",
		},
		{
			name:     "enum key verbatim",
			meta:     &Meta{Key: "mode", Type: TypeEnum, Spec: &EnumSpec{Default: "fast"}},
			expected: "fast",
		},
		{
			name:     "load file path verbatim",
			meta:     &Meta{Key: "input", Type: TypeLoadFile, Spec: &FilesystemSpec{Default: "/tmp/in.json"}},
			expected: "/tmp/in.json",
		},
		{
			name: "flags join all tokens",
			meta: &Meta{Key: "checks", Type: TypeFlags, Spec: &FlagsSpec{
				Default: []string{"CORE", "SYNC", "GPU"},
			}},
			expected: "CORE,SYNC,GPU",
		},
		{
			name: "list skips disabled elements",
			meta: &Meta{Key: "ids", Type: TypeList, Spec: &ListSpec{
				Default: []ListElement{
					{Key: "first", Enabled: true},
					{Key: "second", Enabled: false},
					{Key: "third", Enabled: true},
				},
			}},
			expected: "first,third",
		},
		{
			name: "list keyless element falls back to number",
			meta: &Meta{Key: "ids", Type: TypeList, Spec: &ListSpec{
				Default: []ListElement{
					{Number: 7, Enabled: true},
					{Key: "named", Enabled: true},
				},
			}},
			expected: "7,named",
		},
		{
			name: "list leading disabled element emits no leading separator",
			meta: &Meta{Key: "ids", Type: TypeList, Spec: &ListSpec{
				Default: []ListElement{
					{Key: "off", Enabled: false},
					{Key: "on", Enabled: true},
				},
			}},
			expected: "on",
		},
		{
			name: "list all disabled renders empty",
			meta: &Meta{Key: "ids", Type: TypeList, Spec: &ListSpec{
				Default: []ListElement{
					{Key: "a", Enabled: false},
					{Key: "b", Enabled: false},
				},
			}},
			expected: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatDefault(tc.meta)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)

			// Formatting is deterministic and idempotent.
			again, err := FormatDefault(tc.meta)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestFormatDefaultUnsupportedType(t *testing.T) {
	_, err := FormatDefault(&Meta{Key: "bad", Type: Type(99)})
	require.Error(t, err)
	assert.True(t, IsUnsupportedType(err))

	// Payload mismatch is the same contract violation.
	_, err = FormatDefault(&Meta{Key: "bad", Type: TypeBool, Spec: &IntSpec{}})
	require.Error(t, err)
	assert.True(t, IsUnsupportedType(err))
}

func TestFormatValue(t *testing.T) {
	floatMeta := &Meta{
		Key:  "scale",
		Type: TypeFloat,
		Spec: &FloatSpec{Default: 1.0, Min: floatPtr(0), Max: floatPtr(2), Precision: 2},
	}

	tests := []struct {
		name     string
		meta     *Meta
		data     *Data
		expected string
	}{
		{
			name:     "bool true",
			meta:     &Meta{Key: "enable", Type: TypeBool, Spec: &BoolSpec{}},
			data:     &Data{Key: "enable", Type: TypeBool, Bool: true},
			expected: "TRUE",
		},
		{
			name:     "numeric bool false",
			meta:     &Meta{Key: "legacy", Type: TypeBoolNumeric, Spec: &BoolSpec{}},
			data:     &Data{Key: "legacy", Type: TypeBoolNumeric, Bool: false},
			expected: "0",
		},
		{
			name:     "int",
			meta:     &Meta{Key: "count", Type: TypeInt, Spec: &IntSpec{}},
			data:     &Data{Key: "count", Type: TypeInt, Int: -3},
			expected: "-3",
		},
		{
			name:     "float in range renders value",
			meta:     floatMeta,
			data:     &Data{Key: "scale", Type: TypeFloat, Float: 1.25},
			expected: "1.25",
		},
		{
			name:     "float out of range falls back to default",
			meta:     floatMeta,
			data:     &Data{Key: "scale", Type: TypeFloat, Float: 9.5},
			expected: "1.00",
		},
		{
			name:     "enum key",
			meta:     &Meta{Key: "mode", Type: TypeEnum, Spec: &EnumSpec{}},
			data:     &Data{Key: "mode", Type: TypeEnum, String: "thorough"},
			expected: "thorough",
		},
		{
			name: "list separator only between emitted elements",
			meta: &Meta{Key: "ids", Type: TypeList, Spec: &ListSpec{}},
			data: &Data{Key: "ids", Type: TypeList, List: []ListElement{
				{Key: "a", Enabled: true},
				{Key: "b", Enabled: false},
				{Key: "c", Enabled: false},
				{Key: "d", Enabled: true},
			}},
			expected: "a,d",
		},
		{
			name:     "flags join without enable filter",
			meta:     &Meta{Key: "checks", Type: TypeFlags, Spec: &FlagsSpec{}},
			data:     &Data{Key: "checks", Type: TypeFlags, Flags: []string{"CORE", "SYNC"}},
			expected: "CORE,SYNC",
		},
		{
			name:     "save folder path",
			meta:     &Meta{Key: "out", Type: TypeSaveFolder, Spec: &FilesystemSpec{}},
			data:     &Data{Key: "out", Type: TypeSaveFolder, String: "/var/capture"},
			expected: "/var/capture",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatValue(tc.meta, tc.data)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestFormatValueFloatFallbackMatchesDefault(t *testing.T) {
	meta := &Meta{
		Key:  "scale",
		Type: TypeFloat,
		Spec: &FloatSpec{Default: 0.75, Min: floatPtr(0.5), Max: floatPtr(1.0), Precision: 3},
	}

	fallback, err := FormatValue(meta, &Data{Key: "scale", Type: TypeFloat, Float: 12.0})
	require.NoError(t, err)

	defaulted, err := FormatDefault(meta)
	require.NoError(t, err)

	assert.Equal(t, defaulted, fallback)
}

func TestFloatSpecFormat(t *testing.T) {
	tests := []struct {
		name     string
		spec     FloatSpec
		expected string
	}{
		{"bare", FloatSpec{}, "%f"},
		{"precision only", FloatSpec{Precision: 2}, "%.2f"},
		{"width only", FloatSpec{Width: 6}, "%6f"},
		{"width and precision", FloatSpec{Width: 6, Precision: 3}, "%6.3f"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.spec.Format())
		})
	}
}
