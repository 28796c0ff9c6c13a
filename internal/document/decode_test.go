package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	src := `{
		"children": [
			{"name": "name", "values": ["mylib"], "line": 1},
			{"name": "dependency", "values": ["vibe-d"], "attributes": {"version": ["~>0.9.0"], "optional": [true]}, "line": 2},
			{"name": "configuration", "values": ["unittest"], "line": 3, "children": [
				{"name": "libs", "values": ["curl"], "line": 4}
			]}
		],
		"line": 0
	}`

	root, err := Decode(strings.NewReader(src), "dub.sdl")
	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	nameTag := root.Children[0]
	assert.Equal(t, "name", nameTag.Name)
	assert.Equal(t, Location{File: "dub.sdl", Line: 1}, nameTag.Location)
	require.Len(t, nameTag.Values, 1)
	s, ok := nameTag.Values[0].Text()
	require.True(t, ok)
	assert.Equal(t, "mylib", s)

	dep := root.Children[1]
	version, ok := dep.Attribute("version")
	require.True(t, ok)
	vs, ok := version.Text()
	require.True(t, ok)
	assert.Equal(t, "~>0.9.0", vs)

	optional, ok := dep.Attribute("optional")
	require.True(t, ok)
	b, ok := optional.Boolean()
	require.True(t, ok)
	assert.True(t, b)

	_, ok = dep.Attribute("path")
	assert.False(t, ok)

	conf := root.Children[2]
	require.Len(t, conf.Children, 1)
	assert.Equal(t, "libs", conf.Children[0].Name)
	assert.Equal(t, 4, conf.Children[0].Location.Line)
}

func TestDecodeRejectsNonScalarValues(t *testing.T) {
	src := `{"children": [{"name": "libs", "values": [["nested"]], "line": 1}]}`
	_, err := Decode(strings.NewReader(src), "dub.sdl")
	assert.ErrorContains(t, err, "must be a string, boolean, or number")
}

func TestValueAccessors(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v := String("hello")
		assert.Equal(t, KindString, v.Kind())
		s, ok := v.Text()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)
		_, ok = v.Boolean()
		assert.False(t, ok)
		_, ok = v.Float()
		assert.False(t, ok)
	})

	t.Run("bool", func(t *testing.T) {
		v := Bool(true)
		assert.Equal(t, KindBool, v.Kind())
		b, ok := v.Boolean()
		assert.True(t, ok)
		assert.True(t, b)
		_, ok = v.Text()
		assert.False(t, ok)
	})

	t.Run("number", func(t *testing.T) {
		v := Number(4.5)
		assert.Equal(t, KindNumber, v.Kind())
		f, ok := v.Float()
		assert.True(t, ok)
		assert.Equal(t, 4.5, f)
		_, ok = v.Text()
		assert.False(t, ok)
	})
}

func TestLocationString(t *testing.T) {
	assert.Equal(t, "dub.sdl(12)", Location{File: "dub.sdl", Line: 12}.String())
	assert.Equal(t, "(3)", Location{Line: 3}.String())
}
