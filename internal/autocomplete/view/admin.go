package view

import (
	"slices"
	"strings"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/pkg/query"
	pkgView "autocomplete-srv/pkg/query/view"
)

// NgramsLastTokenOnlyMulti matches the incomplete tokens with the ngram
// analyzer on the name field plus every admin field the parser filled in.
func NgramsLastTokenOnlyMulti(adminFields []string) (query.View, error) {
	if len(adminFields) == 0 {
		return nil, autocomplete.ErrNoAdminFields
	}
	fields := slices.Clone(adminFields)

	return query.ViewFunc(func(vs query.Reader) query.Clause {
		tokens, ok := vs.Strings("input:name:tokens_incomplete")
		if !ok || len(tokens) == 0 {
			return nil
		}
		r := pkgView.Require(vs)
		field := r.String("ngram:field")
		analyzer := r.String("ngram:analyzer")
		boost := r.Number("ngram:boost")
		if !r.OK() {
			return nil
		}
		targets := []pkgView.Field{{Name: field, Boost: boost}}
		targets, _ = adminTargets(vs, fields, targets)
		return pkgView.MultiMatch(targets, "phrase", analyzer, strings.Join(tokens, " "))
	}), nil
}

// AdminMultiMatchFirst matches the first admin value found by the parser
// against every admin field that has a value.
func AdminMultiMatchFirst(adminFields []string) (query.View, error) {
	return adminMultiMatch(adminFields, func(values []string) (string, bool) {
		if len(values) == 0 {
			return "", false
		}
		return values[0], true
	})
}

// AdminMultiMatchLast matches the last admin value when the parser found
// more than one.
func AdminMultiMatchLast(adminFields []string) (query.View, error) {
	return adminMultiMatch(adminFields, func(values []string) (string, bool) {
		if len(values) < 2 {
			return "", false
		}
		return values[len(values)-1], true
	})
}

func adminMultiMatch(adminFields []string, pick func([]string) (string, bool)) (query.View, error) {
	if len(adminFields) == 0 {
		return nil, autocomplete.ErrNoAdminFields
	}
	fields := slices.Clone(adminFields)

	return query.ViewFunc(func(vs query.Reader) query.Clause {
		analyzer, ok := vs.String("admin:analyzer")
		if !ok {
			return nil
		}
		targets, values := adminTargets(vs, fields, nil)
		text, ok := pick(values)
		if !ok {
			return nil
		}
		return pkgView.MultiMatch(targets, "", analyzer, text)
	}), nil
}

// adminTargets appends the admin fields whose input, field and boost
// variables are all set. values holds the input text of each real admin
// field in order; the synthetic name field contributes a target only.
func adminTargets(vs query.Reader, fields []string, targets []pkgView.Field) ([]pkgView.Field, []string) {
	var values []string
	for _, f := range fields {
		input, ok := vs.String("input:" + f)
		if !ok || input == "" {
			continue
		}
		name, ok := vs.String("admin:" + f + ":field")
		if !ok || name == "" {
			continue
		}
		boost, ok := vs.Number("admin:" + f + ":boost")
		if !ok {
			continue
		}
		if f != autocomplete.AddNameToMultiMatch {
			values = append(values, input)
		}
		if slices.ContainsFunc(targets, func(t pkgView.Field) bool { return t.Name == name }) {
			continue
		}
		targets = append(targets, pkgView.Field{Name: name, Boost: boost})
	}
	return targets, values
}
