package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTree() MetaSet {
	return MetaSet{
		&Meta{Key: "enable", Type: TypeBool, Spec: &BoolSpec{Default: true}},
		&Meta{
			Key:  "tuning",
			Type: TypeGroup,
			Children: MetaSet{
				&Meta{Key: "threads", Type: TypeInt, Spec: &IntSpec{Default: 4}},
				&Meta{Key: "scale", Type: TypeFloat, Spec: &FloatSpec{Default: 1.0, Precision: 2}},
			},
		},
		&Meta{Key: "log_path", Type: TypeSaveFile, Spec: &FilesystemSpec{Default: "log.txt"}},
	}
}

func TestMetaSetFind(t *testing.T) {
	tree := testTree()

	assert.NotNil(t, tree.Find("enable"))
	assert.NotNil(t, tree.Find("tuning"))

	// Nested keys resolve through group nodes.
	nested := tree.Find("scale")
	require.NotNil(t, nested)
	assert.Equal(t, TypeFloat, nested.Type)

	assert.Nil(t, tree.Find("missing"))
}

func TestMetaSetWalkOrder(t *testing.T) {
	var visited []string
	testTree().Walk(func(meta *Meta) {
		visited = append(visited, meta.Key)
	})

	assert.Equal(t, []string{"enable", "tuning", "threads", "scale", "log_path"}, visited)
}

func TestMetaSetCountValues(t *testing.T) {
	// Groups are excluded from the count; their children are not.
	assert.Equal(t, 4, testTree().CountValues())
	assert.Equal(t, 0, MetaSet{}.CountValues())
}

func TestMetaSetValidate(t *testing.T) {
	assert.NoError(t, testTree().Validate())

	duplicated := MetaSet{
		&Meta{Key: "same", Type: TypeBool, Spec: &BoolSpec{}},
		&Meta{
			Key:  "group",
			Type: TypeGroup,
			Children: MetaSet{
				&Meta{Key: "same", Type: TypeInt, Spec: &IntSpec{}},
			},
		},
	}
	assert.ErrorContains(t, duplicated.Validate(), "duplicate setting key")

	badType := MetaSet{&Meta{Key: "bad", Type: Type(77)}}
	assert.True(t, IsUnsupportedType(badType.Validate()))

	badSpec := MetaSet{&Meta{Key: "bad", Type: TypeFloat, Spec: &BoolSpec{}}}
	assert.True(t, IsUnsupportedType(badSpec.Validate()))
}

func TestEnumSpecValue(t *testing.T) {
	spec := &EnumSpec{
		Default: "fast",
		Values: []EnumValue{
			{Key: "fast", Label: "Fast"},
			{Key: "thorough", Label: "Thorough"},
		},
	}

	require.NotNil(t, spec.Value("thorough"))
	assert.Equal(t, "Thorough", spec.Value("thorough").Label)
	assert.Nil(t, spec.Value("unknown"))
}

func TestIntSpecIsValid(t *testing.T) {
	unbounded := &IntSpec{}
	assert.True(t, unbounded.IsValid(-1000))

	bounded := &IntSpec{Min: intPtr(0), Max: intPtr(10)}
	assert.True(t, bounded.IsValid(0))
	assert.True(t, bounded.IsValid(10))
	assert.False(t, bounded.IsValid(-1))
	assert.False(t, bounded.IsValid(11))
}
