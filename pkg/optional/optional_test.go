package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type payload struct {
	Lat    Optional[float64]  `json:"lat" yaml:"lat"`
	Name   Optional[string]   `json:"name" yaml:"name"`
	Tokens Optional[[]string] `json:"tokens" yaml:"tokens"`
}

func TestOptional_Basics(t *testing.T) {
	var absent Optional[int]
	_, ok := absent.Get()
	assert.False(t, ok)
	assert.False(t, absent.IsSet())
	assert.Equal(t, 7, absent.OrElse(7))

	some := Some(3)
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, some.OrElse(7))

	assert.False(t, None[string]().IsSet())
}

func TestOptional_JSON(t *testing.T) {
	t.Run("missing and null are absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &p))
		assert.False(t, p.Lat.IsSet())
		assert.False(t, p.Name.IsSet())
		assert.False(t, p.Tokens.IsSet())
	})

	t.Run("empty array is present", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"tokens":[],"lat":0}`), &p))
		tokens, ok := p.Tokens.Get()
		assert.True(t, ok)
		assert.Empty(t, tokens)
		lat, ok := p.Lat.Get()
		assert.True(t, ok)
		assert.Equal(t, 0.0, lat)
	})

	t.Run("wrong type is an error", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"lat":"north"}`), &p))
	})

	t.Run("absent marshals as null", func(t *testing.T) {
		out, err := json.Marshal(payload{Name: Some("x")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"lat":null,"name":"x","tokens":null}`, string(out))
	})
}

func TestOptional_YAML(t *testing.T) {
	var p payload
	require.NoError(t, yaml.Unmarshal([]byte("lat: 1.5\nname: ~\ntokens: [a, b]\n"), &p))
	lat, ok := p.Lat.Get()
	assert.True(t, ok)
	assert.Equal(t, 1.5, lat)
	assert.False(t, p.Name.IsSet())
	assert.Equal(t, []string{"a", "b"}, p.Tokens.OrElse(nil))
}
