package view

import (
	"fmt"
	"math"
	"slices"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/pkg/query"
)

// BoostConfig maps a target field ("source" or "layer") to per value boosts.
type BoostConfig map[string]map[string]float64

var boostTargets = []string{"source", "layer"}

type boostEntry struct {
	target string
	value  string
	boost  float64
}

// BoostSourcesAndLayers returns a view that adds a constant score for the
// configured sources and layers. An empty table renders nothing.
func BoostSourcesAndLayers(cfg BoostConfig) (query.View, error) {
	for target, boosts := range cfg {
		if !slices.Contains(boostTargets, target) {
			return nil, fmt.Errorf("%w: unknown target %q", autocomplete.ErrInvalidBoosts, target)
		}
		for value, boost := range boosts {
			if value == "" {
				return nil, fmt.Errorf("%w: empty %s", autocomplete.ErrInvalidBoosts, target)
			}
			if !(boost > 0) || math.IsInf(boost, 0) {
				return nil, fmt.Errorf("%w: %s %q has boost %v", autocomplete.ErrInvalidBoosts, target, value, boost)
			}
		}
	}

	var entries []boostEntry
	for _, target := range boostTargets {
		var values []string
		for value := range cfg[target] {
			values = append(values, value)
		}
		slices.Sort(values)
		for _, value := range values {
			entries = append(entries, boostEntry{target: target, value: value, boost: cfg[target][value]})
		}
	}

	return query.ViewFunc(func(vs query.Reader) query.Clause {
		if len(entries) == 0 {
			return nil
		}
		clauses := make([]query.Clause, len(entries))
		for i, e := range entries {
			clauses[i] = query.Clause{"constant_score": map[string]any{
				"filter": map[string]any{"term": map[string]any{e.target: e.value}},
				"boost":  e.boost,
			}}
		}
		if len(clauses) == 1 {
			return clauses[0]
		}
		return query.Clause{"bool": map[string]any{"should": clauses}}
	}), nil
}
