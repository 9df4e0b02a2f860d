package usecase

import (
	"fmt"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/internal/autocomplete/view"
	"autocomplete-srv/pkg/query"
	pkgView "autocomplete-srv/pkg/query/view"
)

// NewLayout registers the autocomplete views. Registration order is the
// order of the clauses in every rendered query.
func NewLayout(adminFields []string, cfg Config) (*query.Layout, error) {
	lastTokenMulti, err := view.NgramsLastTokenOnlyMulti(adminFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}
	adminFirst, err := view.AdminMultiMatchFirst(adminFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}
	adminLast, err := view.AdminMultiMatchLast(adminFields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}
	customBoosts, err := view.BoostSourcesAndLayers(cfg.CustomBoosts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}
	addressLength, err := view.MaxCharacterCountLayerFilter([]string{autocomplete.ExcludeAddressLayer}, cfg.ExcludeAddressLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}

	b := query.NewBuilder()

	// mandatory matches
	b.Score(view.PhraseFirstTokensOnly, query.RoleMust)
	b.Score(lastTokenMulti, query.RoleMust)

	// admin components
	b.Score(adminFirst, query.RoleMust)
	b.Score(adminLast, query.RoleMust)

	// address components
	b.Score(pkgView.Address("housenumber"), query.RoleShould)
	b.Score(pkgView.Address("street"), query.RoleShould)
	b.Score(pkgView.Address("cross_street"), query.RoleShould)
	b.Score(pkgView.Address("postcode"), query.RoleShould)

	// scoring boost
	b.Score(pkgView.Focus(view.NgramsStrict), query.RoleShould)
	b.Score(pkgView.Popularity(view.PopSubquery), query.RoleShould)
	b.Score(pkgView.Population(view.PopSubquery), query.RoleShould)
	b.Score(customBoosts, query.RoleShould)

	// non-scoring hard filters
	b.Filter(addressLength)
	b.Filter(pkgView.Sources)
	b.Filter(pkgView.Layers)
	b.Filter(pkgView.BoundaryRect)
	b.Filter(pkgView.BoundaryCircle)
	b.Filter(pkgView.BoundaryCountry)
	b.Filter(pkgView.Categories)
	b.Filter(pkgView.BoundaryGid)
	b.Filter(view.FocusPointDistanceFilter)

	layout, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", autocomplete.ErrInvalidLayout, err)
	}
	return layout, nil
}
