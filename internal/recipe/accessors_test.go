package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/recipekit/internal/document"
)

func tag(name string, values ...document.Value) *document.Node {
	return &document.Node{Name: name, Values: values, Location: document.Location{File: "dub.sdl", Line: 7}}
}

func TestSingleString(t *testing.T) {
	t.Run("returns the single string value", func(t *testing.T) {
		s, err := singleString(tag("license", document.String("MIT")), false)
		require.NoError(t, err)
		assert.Equal(t, "MIT", s)
	})

	t.Run("fails on zero values", func(t *testing.T) {
		_, err := singleString(tag("license"), false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, 7, verr.Location.Line)
		assert.Contains(t, verr.Message, "requires a value")
	})

	t.Run("fails on two values", func(t *testing.T) {
		_, err := singleString(tag("license", document.String("MIT"), document.String("BSL")), false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "exactly one value")
	})

	t.Run("fails on a non-string value", func(t *testing.T) {
		_, err := singleString(tag("license", document.Number(1)), false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "string value")
	})

	t.Run("fails on unexpected children", func(t *testing.T) {
		n := tag("license", document.String("MIT"))
		n.Children = []*document.Node{tag("nested")}
		_, err := singleString(n, false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "child tags")
	})

	t.Run("allows children when requested", func(t *testing.T) {
		n := tag("configuration", document.String("unittest"))
		n.Children = []*document.Node{tag("libs", document.String("curl"))}
		s, err := singleString(n, true)
		require.NoError(t, err)
		assert.Equal(t, "unittest", s)
	})
}

func TestStringArray(t *testing.T) {
	t.Run("returns all values in order", func(t *testing.T) {
		vals, err := stringArray(tag("libs", document.String("z"), document.String("curl")), false)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "curl"}, vals)
	})

	t.Run("may be empty", func(t *testing.T) {
		vals, err := stringArray(tag("libs"), false)
		require.NoError(t, err)
		assert.Empty(t, vals)
	})

	t.Run("fails on a non-string value", func(t *testing.T) {
		_, err := stringArray(tag("libs", document.String("z"), document.Bool(true)), false)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Message, "string values")
	})

	t.Run("fails on unexpected children", func(t *testing.T) {
		n := tag("libs")
		n.Children = []*document.Node{tag("nested")}
		_, err := stringArray(n, false)
		assert.Error(t, err)
	})
}

func TestPlatformKey(t *testing.T) {
	t.Run("empty without the attribute", func(t *testing.T) {
		key, err := platformKey(tag("dflags"))
		require.NoError(t, err)
		assert.Equal(t, "", key)
	})

	t.Run("prefixes the platform identifier", func(t *testing.T) {
		n := tag("dflags", document.String("-g"))
		n.Attributes = map[string][]document.Value{"platform": {document.String("windows-x86")}}
		key, err := platformKey(n)
		require.NoError(t, err)
		assert.Equal(t, "-windows-x86", key)
	})

	t.Run("fails on a non-string platform", func(t *testing.T) {
		n := tag("dflags")
		n.Attributes = map[string][]document.Value{"platform": {document.Number(64)}}
		_, err := platformKey(n)
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
