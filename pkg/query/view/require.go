// Package view holds the generic clause views shared by query layouts.
package view

import (
	"strconv"

	"autocomplete-srv/pkg/query"
)

// Requirement reads variables and remembers whether any was missing, so a
// view can read everything it needs and bail out once.
type Requirement struct {
	vs query.Reader
	ok bool
}

// Require starts reading required variables from vs.
func Require(vs query.Reader) *Requirement {
	return &Requirement{vs: vs, ok: true}
}

func (r *Requirement) String(key string) string {
	s, ok := r.vs.String(key)
	if !ok || s == "" {
		r.ok = false
	}
	return s
}

func (r *Requirement) Number(key string) float64 {
	n, ok := r.vs.Number(key)
	if !ok {
		r.ok = false
	}
	return n
}

// Strings requires a non-empty string slice.
func (r *Requirement) Strings(key string) []string {
	s, ok := r.vs.Strings(key)
	if !ok || len(s) == 0 {
		r.ok = false
	}
	return s
}

// OK reports whether every requested variable was present.
func (r *Requirement) OK() bool {
	return r.ok
}

// Field is a document field with an optional boost.
type Field struct {
	Name  string
	Boost float64
}

func (f Field) String() string {
	if f.Boost == 0 {
		return f.Name
	}
	return f.Name + "^" + strconv.FormatFloat(f.Boost, 'f', -1, 64)
}

// MultiMatch builds a multi_match clause. Empty typ or analyzer are omitted.
func MultiMatch(fields []Field, typ, analyzer, text string) query.Clause {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	mm := map[string]any{
		"fields": names,
		"query":  text,
	}
	if typ != "" {
		mm["type"] = typ
	}
	if analyzer != "" {
		mm["analyzer"] = analyzer
	}
	return query.Clause{"multi_match": mm}
}
