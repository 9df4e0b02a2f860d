package autocomplete

import (
	"context"

	"autocomplete-srv/internal/model"
	"autocomplete-srv/pkg/query"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GenerateQuery maps clean onto a fresh variable context and renders the
	// autocomplete layout. It never modifies clean.
	GenerateQuery(ctx context.Context, clean model.CleanRequest) (Query, error)
	// Vars returns the populated variable context without rendering.
	Vars(ctx context.Context, clean model.CleanRequest) *query.Vars
}

// TextParser copies the structured fields of the parsed input text into vs.
type TextParser interface {
	Parse(ctx context.Context, clean model.CleanRequest, vs *query.Vars)
}
