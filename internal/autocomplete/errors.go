package autocomplete

import "errors"

// Domain errors
var (
	// ErrInvalidBoosts - custom boost table is malformed
	ErrInvalidBoosts = errors.New("autocomplete: invalid custom boosts")

	// ErrInvalidLayerFilter - layer filter parameters are malformed
	ErrInvalidLayerFilter = errors.New("autocomplete: invalid layer filter")

	// ErrNoAdminFields - admin views need at least one field
	ErrNoAdminFields = errors.New("autocomplete: no admin fields")

	// ErrInvalidLayout - the layout could not be registered
	ErrInvalidLayout = errors.New("autocomplete: invalid layout")

	// ErrRenderFailed - a view failed while rendering a request
	ErrRenderFailed = errors.New("autocomplete: render failed")
)
