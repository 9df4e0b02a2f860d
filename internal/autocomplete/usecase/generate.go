package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/internal/model"
	"autocomplete-srv/pkg/optional"
	"autocomplete-srv/pkg/query"
)

// GenerateQuery - map the request onto a fresh context and render the layout
func (uc *implUseCase) GenerateQuery(ctx context.Context, clean model.CleanRequest) (autocomplete.Query, error) {
	vs := uc.Vars(ctx, clean)

	body, err := uc.layout.Render(vs)
	if err != nil {
		uc.l.Errorf(ctx, "autocomplete.usecase.GenerateQuery: Render failed: %v", err)
		return autocomplete.Query{}, fmt.Errorf("%w: %v", autocomplete.ErrRenderFailed, err)
	}

	uc.l.Debugf(ctx, "autocomplete.usecase.GenerateQuery: must=%d, should=%d, filter=%d",
		len(body.Query.Bool.Must), len(body.Query.Bool.Should), len(body.Filters()))

	return autocomplete.Query{
		Type: autocomplete.QueryType,
		Body: body,
	}, nil
}

// Vars - map request fields onto query variables. A field that is missing
// or has the wrong shape is skipped.
func (uc *implUseCase) Vars(ctx context.Context, clean model.CleanRequest) *query.Vars {
	vs := autocomplete.NewVars()

	// sources
	if sources, ok := nonEmpty(clean.Sources); ok {
		vs.Set("sources", sources)
	}

	// layers
	if layers, ok := nonEmpty(clean.Layers); ok {
		vs.Set("layers", layers)
	}

	// boundary country
	if countries, ok := nonEmpty(clean.BoundaryCountry); ok {
		vs.Set("boundary:country", strings.Join(countries, " "))
	}

	// tokens: views pick the track they need
	if tokens, ok := clean.Tokens.Get(); ok {
		vs.Set("input:name:tokens", tokens)
		if complete, ok := clean.TokensComplete.Get(); ok {
			vs.Set("input:name:tokens_complete", complete)
		}
		if incomplete, ok := clean.TokensIncomplete.Get(); ok {
			vs.Set("input:name:tokens_incomplete", incomplete)
		}
	}

	// input text
	if text, ok := clean.Text.Get(); ok {
		vs.Set("input:name", text)
	}

	// once tokenized, the complete and incomplete tokens replace the text;
	// they can differ from the raw tokens since some grams are dropped
	complete, okComplete := clean.TokensComplete.Get()
	incomplete, okIncomplete := clean.TokensIncomplete.Get()
	if okComplete && okIncomplete {
		combined := make([]string, 0, len(complete)+len(incomplete))
		combined = append(combined, complete...)
		combined = append(combined, incomplete...)
		if len(combined) > 0 {
			vs.Set("input:name", strings.Join(combined, " "))
		}
	}

	// focus point
	lat, okLat := number(clean.FocusPointLat)
	lon, okLon := number(clean.FocusPointLon)
	if okLat && okLon {
		vs.SetMany(map[string]any{
			"focus:point:lat": lat,
			"focus:point:lon": lon,
		})
	}

	// boundary rect
	minLat, okMinLat := number(clean.BoundaryRectMinLat)
	maxLat, okMaxLat := number(clean.BoundaryRectMaxLat)
	minLon, okMinLon := number(clean.BoundaryRectMinLon)
	maxLon, okMaxLon := number(clean.BoundaryRectMaxLon)
	if okMinLat && okMaxLat && okMinLon && okMaxLon {
		vs.SetMany(map[string]any{
			"boundary:rect:top":    maxLat,
			"boundary:rect:right":  maxLon,
			"boundary:rect:bottom": minLat,
			"boundary:rect:left":   minLon,
		})
	}

	// boundary circle
	circleLat, okCircleLat := number(clean.BoundaryCircleLat)
	circleLon, okCircleLon := number(clean.BoundaryCircleLon)
	if okCircleLat && okCircleLon {
		vs.SetMany(map[string]any{
			"boundary:circle:lat": circleLat,
			"boundary:circle:lon": circleLon,
		})
		if radius, ok := number(clean.BoundaryCircleRadius); ok {
			vs.Set("boundary:circle:radius", radiusKm(radius))
		}
	}

	// boundary gid
	if gid, ok := clean.BoundaryGid.Get(); ok && gid != "" {
		vs.Set("boundary:gid", gid)
	}

	// categories
	if categories, ok := nonEmpty(clean.Categories); ok {
		vs.Set("input:categories", categories)
	}

	// address parser
	if clean.ParsedText != nil && uc.parser != nil {
		uc.parser.Parse(ctx, clean, vs)
	}

	for _, field := range uc.adminFields {
		if vs.IsSet("input:" + field) {
			vs.Set("input:"+autocomplete.AddNameToMultiMatch, autocomplete.AddNameToMultiMatchValue)
			break
		}
	}
	vs.Set("admin:"+autocomplete.AddNameToMultiMatch+":field", autocomplete.AddNameToMultiMatchField)

	return vs
}

func nonEmpty(o optional.Optional[[]string]) ([]string, bool) {
	v, ok := o.Get()
	if !ok || len(v) == 0 {
		return nil, false
	}
	return v, true
}

// number treats NaN and infinities as absent.
func number(o optional.Optional[float64]) (float64, bool) {
	v, ok := o.Get()
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// radiusKm rounds half up, so 5.5 becomes "6km" and -5.5 becomes "-5km".
func radiusKm(radius float64) string {
	return fmt.Sprintf("%dkm", int64(math.Floor(radius+0.5)))
}
