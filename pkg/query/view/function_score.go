package view

import "autocomplete-srv/pkg/query"

// Focus wraps sub in a decay function around the focus point.
func Focus(sub query.View) query.View {
	if sub == nil {
		return nil
	}
	return query.ViewFunc(func(vs query.Reader) query.Clause {
		r := Require(vs)
		lat := r.Number("focus:point:lat")
		lon := r.Number("focus:point:lon")
		centroid := r.String("centroid:field")
		fn := r.String("focus:function")
		offset := r.String("focus:offset")
		scale := r.String("focus:scale")
		decay := r.Number("focus:decay")
		weight := r.Number("focus:weight")
		scoreMode := r.String("function_score:score_mode")
		boostMode := r.String("function_score:boost_mode")
		if !r.OK() {
			return nil
		}
		subQuery := sub.Render(vs)
		if subQuery == nil {
			return nil
		}
		return query.Clause{"function_score": map[string]any{
			"query": subQuery,
			"functions": []any{map[string]any{
				"weight": weight,
				fn: map[string]any{
					centroid: map[string]any{
						"origin": map[string]any{"lat": lat, "lon": lon},
						"offset": offset,
						"scale":  scale,
						"decay":  decay,
					},
				},
			}},
			"score_mode": scoreMode,
			"boost_mode": boostMode,
		}}
	})
}

// Popularity boosts sub by the popularity field.
func Popularity(sub query.View) query.View {
	return fieldValueFactor("popularity", sub)
}

// Population boosts sub by the population field.
func Population(sub query.View) query.View {
	return fieldValueFactor("population", sub)
}

func fieldValueFactor(prefix string, sub query.View) query.View {
	if sub == nil {
		return nil
	}
	return query.ViewFunc(func(vs query.Reader) query.Clause {
		r := Require(vs)
		field := r.String(prefix + ":field")
		modifier := r.String(prefix + ":modifier")
		maxBoost := r.Number(prefix + ":max_boost")
		weight := r.Number(prefix + ":weight")
		if !r.OK() {
			return nil
		}
		subQuery := sub.Render(vs)
		if subQuery == nil {
			return nil
		}
		return query.Clause{"function_score": map[string]any{
			"query":     subQuery,
			"max_boost": maxBoost,
			"functions": []any{map[string]any{
				"field_value_factor": map[string]any{
					"modifier": modifier,
					"field":    field,
					"missing":  1,
				},
				"weight": weight,
			}},
			"score_mode": "first",
			"boost_mode": "replace",
		}}
	})
}
