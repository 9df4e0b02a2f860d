package view

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/pkg/query"
	pkgView "autocomplete-srv/pkg/query/view"

	"golang.org/x/text/unicode/norm"
)

// MaxCharacterCountLayerFilter excludes layers while the input text is at
// most maxLength characters long.
func MaxCharacterCountLayerFilter(layers []string, maxLength int) (query.View, error) {
	if len(layers) == 0 {
		return nil, fmt.Errorf("%w: no layers", autocomplete.ErrInvalidLayerFilter)
	}
	if maxLength < 0 {
		return nil, fmt.Errorf("%w: negative max length %d", autocomplete.ErrInvalidLayerFilter, maxLength)
	}
	layers = slices.Clone(layers)

	return query.ViewFunc(func(vs query.Reader) query.Clause {
		text, ok := vs.String("input:name")
		if !ok {
			return nil
		}
		if CharCount(text) > maxLength {
			return nil
		}
		return query.Clause{"bool": map[string]any{
			"must_not": map[string]any{
				"terms": map[string]any{"layer": slices.Clone(layers)},
			},
		}}
	}), nil
}

// FocusPointDistanceFilter keeps results near the focus point while the input
// text is too short to rank on its own.
var FocusPointDistanceFilter query.View = query.ViewFunc(func(vs query.Reader) query.Clause {
	r := pkgView.Require(vs)
	text := r.String("input:name")
	lat := r.Number("focus:point:lat")
	lon := r.Number("focus:point:lon")
	radius := r.String("focus:point:filter:radius")
	maxLength := r.Number("focus:point:filter:max_length")
	distanceType := r.String("boundary:circle:distance_type")
	centroid := r.String("centroid:field")
	if !r.OK() {
		return nil
	}
	if float64(CharCount(text)) > maxLength {
		return nil
	}
	return query.Clause{"geo_distance": map[string]any{
		"distance":      radius,
		"distance_type": distanceType,
		centroid:        map[string]any{"lat": lat, "lon": lon},
	}}
})

// CharCount counts the characters of s after NFC normalization.
func CharCount(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
