package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dependenceTree() MetaSet {
	return MetaSet{
		&Meta{Key: "capture", Type: TypeBool, Spec: &BoolSpec{Default: false}},
		&Meta{Key: "mode", Type: TypeEnum, Spec: &EnumSpec{
			Default: "idle",
			Values:  []EnumValue{{Key: "idle"}, {Key: "record"}},
		}},
		&Meta{
			Key:  "capture_path",
			Type: TypeSaveFolder,
			Spec: &FilesystemSpec{Default: "/tmp"},
			Dependence: []*Data{
				{Key: "capture", Type: TypeBool, Bool: true},
				{Key: "mode", Type: TypeEnum, String: "record"},
			},
			DependenceMode: DependenceAll,
		},
	}
}

func TestCheckDependence(t *testing.T) {
	tree := dependenceTree()
	dependent := tree.Find("capture_path")
	require.NotNil(t, dependent)

	ds, err := NewDataSet(tree)
	require.NoError(t, err)

	// Defaults do not satisfy the dependence list.
	assert.False(t, CheckDependence(dependent, ds))

	ds.Set(&Data{Key: "capture", Type: TypeBool, Bool: true})
	assert.False(t, CheckDependence(dependent, ds), "all mode requires every entry to match")

	ds.Set(&Data{Key: "mode", Type: TypeEnum, String: "record"})
	assert.True(t, CheckDependence(dependent, ds))
}

func TestCheckDependenceAnyMode(t *testing.T) {
	tree := dependenceTree()
	dependent := tree.Find("capture_path")
	require.NotNil(t, dependent)
	dependent.DependenceMode = DependenceAny

	ds, err := NewDataSet(tree)
	require.NoError(t, err)
	assert.False(t, CheckDependence(dependent, ds))

	ds.Set(&Data{Key: "capture", Type: TypeBool, Bool: true})
	assert.True(t, CheckDependence(dependent, ds))
}

func TestCheckDependenceWithoutList(t *testing.T) {
	tree := dependenceTree()
	ds, err := NewDataSet(tree)
	require.NoError(t, err)

	assert.True(t, CheckDependence(tree.Find("capture"), ds))
}

func TestCheckDependenceMissingKeyNeverMatches(t *testing.T) {
	meta := &Meta{
		Key:            "orphan",
		Type:           TypeBool,
		Spec:           &BoolSpec{},
		Dependence:     []*Data{{Key: "gone", Type: TypeBool, Bool: true}},
		DependenceMode: DependenceAll,
	}

	ds, err := NewDataSet(MetaSet{})
	require.NoError(t, err)
	assert.False(t, CheckDependence(meta, ds))
}
