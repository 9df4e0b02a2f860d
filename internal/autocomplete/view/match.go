// Package view holds the views specific to the autocomplete layout.
package view

import (
	"strings"

	"autocomplete-srv/pkg/query"
	pkgView "autocomplete-srv/pkg/query/view"
)

// PhraseFirstTokensOnly matches the complete tokens as a phrase. The
// incomplete last token is left to the ngram views.
var PhraseFirstTokensOnly query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	tokens, ok := vs.Strings("input:name:tokens_complete")
	if !ok || len(tokens) == 0 {
		return nil
	}
	derived := vs.Clone()
	derived.Set("input:name", strings.Join(tokens, " "))
	return pkgView.Phrase.Render(derived)
})

// NgramsStrict is an ngram match that requires every token.
var NgramsStrict query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := pkgView.Require(vs)
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
			"operator": "and",
		},
	}}
})

// PopSubquery is the unboosted base query for the popularity and population
// function scores.
var PopSubquery query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := pkgView.Require(vs)
	text := r.String("input:name")
	field := r.String("ngram:field")
	analyzer := r.String("phrase:analyzer")
	if !r.OK() {
		return nil
	}
	return query.Clause{"match": map[string]any{
		field: map[string]any{
			"query":    text,
			"analyzer": analyzer,
		},
	}}
})
