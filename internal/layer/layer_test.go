package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layerdoc/internal/setting"
)

func TestSettingPrefix(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "khronos validation layer",
			key:      "VK_LAYER_KHRONOS_validation",
			expected: "khronos_validation.",
		},
		{
			name:     "lunarg api dump layer",
			key:      "VK_LAYER_LUNARG_api_dump",
			expected: "lunarg_api_dump.",
		},
		{
			name:     "key without the canonical prefix",
			key:      "MyLayer",
			expected: "mylayer.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SettingPrefix(tc.key))
		})
	}
}

func TestLayerFindSetting(t *testing.T) {
	l := &Layer{
		Key: "VK_LAYER_TEST_demo",
		Settings: setting.MetaSet{
			&setting.Meta{
				Key:  "group",
				Type: setting.TypeGroup,
				Children: setting.MetaSet{
					&setting.Meta{Key: "nested", Type: setting.TypeBool, Spec: &setting.BoolSpec{}},
				},
			},
		},
	}

	meta, err := l.FindSetting("nested")
	require.NoError(t, err)
	assert.Equal(t, setting.TypeBool, meta.Type)

	_, err = l.FindSetting("absent")
	require.Error(t, err)
	assert.True(t, setting.IsNotFound(err))
}

func TestLayerNewDataSet(t *testing.T) {
	l := &Layer{
		Key: "VK_LAYER_TEST_demo",
		Settings: setting.MetaSet{
			&setting.Meta{Key: "enable", Type: setting.TypeBool, Spec: &setting.BoolSpec{Default: true}},
		},
	}

	ds, err := l.NewDataSet()
	require.NoError(t, err)

	enabled, err := ds.Bool("enable")
	require.NoError(t, err)
	assert.True(t, enabled)
}
