package usecase

import (
	"slices"

	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/internal/autocomplete/view"
	"autocomplete-srv/internal/model"
	"autocomplete-srv/pkg/log"
	"autocomplete-srv/pkg/query"
)

// Config - startup parameters of the autocomplete layout
type Config struct {
	CustomBoosts         view.BoostConfig // api.custom_boosts
	ExcludeAddressLength int              // api.autocomplete.exclude_address_length
	PlaceTypes           []string         // defaults to model.PlaceTypes
}

// DefaultConfig - no custom boosts, address layer excluded for empty input only
func DefaultConfig() Config {
	return Config{
		PlaceTypes: slices.Clone(model.PlaceTypes),
	}
}

type implUseCase struct {
	l           log.Logger
	parser      autocomplete.TextParser
	layout      *query.Layout
	adminFields []string
}

// New builds the layout once. A configuration the views reject is returned
// as an error so the process can stop before serving anything.
func New(l log.Logger, parser autocomplete.TextParser, cfg Config) (autocomplete.UseCase, error) {
	placeTypes := cfg.PlaceTypes
	if len(placeTypes) == 0 {
		placeTypes = model.PlaceTypes
	}
	adminFields := autocomplete.AdminFields(placeTypes)

	layout, err := NewLayout(adminFields, cfg)
	if err != nil {
		return nil, err
	}

	return &implUseCase{
		l:           l,
		parser:      parser,
		layout:      layout,
		adminFields: adminFields,
	}, nil
}
