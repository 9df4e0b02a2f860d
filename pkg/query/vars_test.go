package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVars_SeededFromDefaults(t *testing.T) {
	defaults := map[string]any{"size": 10, "ngram:field": "name.default"}
	vs := NewVars(defaults)

	size, ok := vs.Number("size")
	require.True(t, ok)
	assert.Equal(t, 10.0, size)

	vs.Set("ngram:field", "name.en")
	assert.Equal(t, "name.default", defaults["ngram:field"], "defaults must not change")

	field, _ := vs.String("ngram:field")
	assert.Equal(t, "name.en", field)
}

func TestVars_SetAndIsSet(t *testing.T) {
	vs := NewVars(nil)
	assert.False(t, vs.IsSet("input:name"))

	vs.SetMany(map[string]any{"input:name": "foo", "track_scores": true})
	assert.True(t, vs.IsSet("input:name"))

	b, ok := vs.Bool("track_scores")
	assert.True(t, ok)
	assert.True(t, b)

	_, ok = vs.Number("input:name")
	assert.False(t, ok, "typed getters reject other types")

	assert.Equal(t, []string{"input:name", "track_scores"}, vs.Keys())
}

func TestVars_SlicesAreCopied(t *testing.T) {
	in := []string{"a", "b"}
	vs := NewVars(nil)
	vs.Set("layers", in)
	in[0] = "mutated"

	got, ok := vs.Strings("layers")
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, got)

	got[1] = "mutated"
	again, _ := vs.Strings("layers")
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestVars_CloneIsIndependent(t *testing.T) {
	vs := NewVars(map[string]any{"input:name": "foo"})
	cp := vs.Clone()
	cp.Set("input:name", "bar")
	cp.Set("extra", 1)

	name, _ := vs.String("input:name")
	assert.Equal(t, "foo", name)
	assert.False(t, vs.IsSet("extra"))
}

func TestVars_ExportCopies(t *testing.T) {
	vs := NewVars(map[string]any{"sources": []string{"osm"}})
	exp := vs.Export()
	exp["sources"].([]string)[0] = "wof"

	got, _ := vs.Strings("sources")
	assert.Equal(t, []string{"osm"}, got)
}

func TestVars_UnsupportedTypePanics(t *testing.T) {
	vs := NewVars(nil)
	assert.Panics(t, func() { vs.Set("bad", map[string]int{}) })
}
