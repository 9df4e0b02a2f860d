package query

import (
	"fmt"
	"slices"
)

// Reader is the read-only view of a variable context handed to views.
type Reader interface {
	IsSet(key string) bool
	Get(key string) (any, bool)
	String(key string) (string, bool)
	Number(key string) (float64, bool)
	Bool(key string) (bool, bool)
	Strings(key string) ([]string, bool)
	Clone() *Vars
}

// Vars is a per-request variable context. Values are strings, float64
// numbers, bools or string slices. Keys can be added or overwritten but never
// removed. A Vars must not be shared between goroutines.
type Vars struct {
	values map[string]any
}

// NewVars returns a context seeded with a copy of defaults.
func NewVars(defaults map[string]any) *Vars {
	vs := &Vars{values: make(map[string]any, len(defaults))}
	vs.SetMany(defaults)
	return vs
}

// Set adds or overwrites key. Integer types are stored as float64 and slices
// are copied. Any other type panics.
func (vs *Vars) Set(key string, value any) {
	vs.values[key] = normalize(key, value)
}

// SetMany sets every entry of m.
func (vs *Vars) SetMany(m map[string]any) {
	for k, v := range m {
		vs.Set(k, v)
	}
}

func (vs *Vars) IsSet(key string) bool {
	_, ok := vs.values[key]
	return ok
}

func (vs *Vars) Get(key string) (any, bool) {
	v, ok := vs.values[key]
	if s, isSlice := v.([]string); isSlice {
		return slices.Clone(s), ok
	}
	return v, ok
}

func (vs *Vars) String(key string) (string, bool) {
	s, ok := vs.values[key].(string)
	return s, ok
}

func (vs *Vars) Number(key string) (float64, bool) {
	n, ok := vs.values[key].(float64)
	return n, ok
}

func (vs *Vars) Bool(key string) (bool, bool) {
	b, ok := vs.values[key].(bool)
	return b, ok
}

// Strings returns a copy of a string slice variable.
func (vs *Vars) Strings(key string) ([]string, bool) {
	s, ok := vs.values[key].([]string)
	if !ok {
		return nil, false
	}
	return slices.Clone(s), true
}

// Keys returns all set keys in sorted order.
func (vs *Vars) Keys() []string {
	var keys []string
	for k := range vs.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Export returns a copy of every variable.
func (vs *Vars) Export() map[string]any {
	out := make(map[string]any, len(vs.values))
	for k := range vs.values {
		out[k], _ = vs.Get(k)
	}
	return out
}

// Clone returns an independent copy. Views use it to derive values without
// touching the request context.
func (vs *Vars) Clone() *Vars {
	return NewVars(vs.values)
}

func normalize(key string, value any) any {
	switch v := value.(type) {
	case string, bool, float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case []string:
		return slices.Clone(v)
	default:
		panic(fmt.Sprintf("query: unsupported variable type %T for %q", value, key))
	}
}
