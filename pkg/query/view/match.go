package view

import "autocomplete-srv/pkg/query"

// Phrase matches input:name as a phrase on phrase:field.
var Phrase query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	text := r.String("input:name")
	field := r.String("phrase:field")
	analyzer := r.String("phrase:analyzer")
	boost := r.Number("phrase:boost")
	slop := r.Number("phrase:slop")
	if !r.OK() {
		return nil
	}
	return query.Clause{"match_phrase": map[string]any{
		field: map[string]any{
			"query":    text,
			"analyzer": analyzer,
			"boost":    boost,
			"slop":     slop,
		},
	}}
})

// Ngrams matches input:name on ngram:field with the ngram analyzer.
var Ngrams query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	text := r.String("input:name")
	field := r.String("ngram:field")
	analyzer := r.String("ngram:analyzer")
	boost := r.Number("ngram:boost")
	if !r.OK() {
		return nil
	}
	return query.Clause{"match": map[string]any{
		field: map[string]any{
			"query":    text,
			"analyzer": analyzer,
			"boost":    boost,
		},
	}}
})

// Address matches input:<property> against its address_parts field. It
// returns nil for an empty property so registration fails.
func Address(property string) query.View {
	if property == "" {
		return nil
	}
	prefix := "address:" + property + ":"
	return query.ViewFunc(func(vs query.Reader) query.Clause {
		r := Require(vs)
		text := r.String("input:" + property)
		field := r.String(prefix + "field")
		analyzer := r.String(prefix + "analyzer")
		boost := r.Number(prefix + "boost")
		if !r.OK() {
			return nil
		}
		return query.Clause{"match": map[string]any{
			field: map[string]any{
				"query":    text,
				"analyzer": analyzer,
				"boost":    boost,
			},
		}}
	})
}
