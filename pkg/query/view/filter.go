package view

import "autocomplete-srv/pkg/query"

// Sources restricts results to the requested sources.
var Sources = terms("sources", "source")

// Layers restricts results to the requested layers.
var Layers = terms("layers", "layer")

// Categories restricts results to the requested categories.
var Categories = terms("input:categories", "category")

func terms(variable, field string) query.View {
	return query.ViewFunc(func(vs query.Reader) query.Clause {
		r := Require(vs)
		values := r.Strings(variable)
		if !r.OK() {
			return nil
		}
		return query.Clause{"terms": map[string]any{field: values}}
	})
}

// BoundaryRect keeps results whose centroid lies inside the rectangle.
var BoundaryRect query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	top := r.Number("boundary:rect:top")
	right := r.Number("boundary:rect:right")
	bottom := r.Number("boundary:rect:bottom")
	left := r.Number("boundary:rect:left")
	typ := r.String("boundary:rect:type")
	centroid := r.String("centroid:field")
	if !r.OK() {
		return nil
	}
	return query.Clause{"geo_bounding_box": map[string]any{
		"type": typ,
		centroid: map[string]any{
			"top":    top,
			"right":  right,
			"bottom": bottom,
			"left":   left,
		},
	}}
})

// BoundaryCircle keeps results within boundary:circle:radius of the center.
var BoundaryCircle query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	lat := r.Number("boundary:circle:lat")
	lon := r.Number("boundary:circle:lon")
	radius := r.String("boundary:circle:radius")
	distanceType := r.String("boundary:circle:distance_type")
	centroid := r.String("centroid:field")
	if !r.OK() {
		return nil
	}
	return query.Clause{"geo_distance": map[string]any{
		"distance":      radius,
		"distance_type": distanceType,
		centroid:        map[string]any{"lat": lat, "lon": lon},
	}}
})

// BoundaryCountry matches the space separated country codes in
// boundary:country against the parent country and dependency codes.
var BoundaryCountry query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	countries := r.String("boundary:country")
	if !r.OK() {
		return nil
	}
	return MultiMatch([]Field{{Name: "parent.country_a"}, {Name: "parent.dependency_a"}}, "", "standard", countries)
})

// BoundaryGid keeps results that have boundary:gid among their parents.
var BoundaryGid query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := Require(vs)
	gid := r.String("boundary:gid")
	if !r.OK() {
		return nil
	}
	return MultiMatch([]Field{{Name: "parent.*_id"}}, "", "", gid)
})
