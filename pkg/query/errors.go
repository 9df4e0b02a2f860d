package query

import "errors"

var (
	// ErrNilView - a nil view was registered
	ErrNilView = errors.New("query: nil view")

	// ErrInvalidRole - a view was registered with an unknown role
	ErrInvalidRole = errors.New("query: invalid role")

	// ErrRenderFault - a view failed while rendering
	ErrRenderFault = errors.New("query: render fault")
)
