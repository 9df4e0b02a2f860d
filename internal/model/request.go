package model

import "autocomplete-srv/pkg/optional"

// CleanRequest is a validated autocomplete request. Every field is optional;
// upstream sanitisation guarantees the types.
type CleanRequest struct {
	Text             optional.Optional[string]   `json:"text" yaml:"text"`
	Tokens           optional.Optional[[]string] `json:"tokens" yaml:"tokens"`
	TokensComplete   optional.Optional[[]string] `json:"tokens_complete" yaml:"tokens_complete"`
	TokensIncomplete optional.Optional[[]string] `json:"tokens_incomplete" yaml:"tokens_incomplete"`

	Sources    optional.Optional[[]string] `json:"sources" yaml:"sources"`
	Layers     optional.Optional[[]string] `json:"layers" yaml:"layers"`
	Categories optional.Optional[[]string] `json:"categories" yaml:"categories"`

	FocusPointLat optional.Optional[float64] `json:"focus.point.lat" yaml:"focus.point.lat"`
	FocusPointLon optional.Optional[float64] `json:"focus.point.lon" yaml:"focus.point.lon"`

	BoundaryRectMinLat optional.Optional[float64] `json:"boundary.rect.min_lat" yaml:"boundary.rect.min_lat"`
	BoundaryRectMaxLat optional.Optional[float64] `json:"boundary.rect.max_lat" yaml:"boundary.rect.max_lat"`
	BoundaryRectMinLon optional.Optional[float64] `json:"boundary.rect.min_lon" yaml:"boundary.rect.min_lon"`
	BoundaryRectMaxLon optional.Optional[float64] `json:"boundary.rect.max_lon" yaml:"boundary.rect.max_lon"`

	BoundaryCircleLat    optional.Optional[float64] `json:"boundary.circle.lat" yaml:"boundary.circle.lat"`
	BoundaryCircleLon    optional.Optional[float64] `json:"boundary.circle.lon" yaml:"boundary.circle.lon"`
	BoundaryCircleRadius optional.Optional[float64] `json:"boundary.circle.radius" yaml:"boundary.circle.radius"`

	BoundaryCountry optional.Optional[[]string] `json:"boundary.country" yaml:"boundary.country"`
	BoundaryGid     optional.Optional[string]   `json:"boundary.gid" yaml:"boundary.gid"`

	// ParsedText is set when the address parser produced a solution.
	ParsedText *ParsedText `json:"parsed_text,omitempty" yaml:"parsed_text,omitempty"`
}

// ParsedText holds the structured fields found in the input text.
type ParsedText struct {
	Subject       string `json:"subject,omitempty" yaml:"subject,omitempty"`
	Housenumber   string `json:"housenumber,omitempty" yaml:"housenumber,omitempty"`
	Street        string `json:"street,omitempty" yaml:"street,omitempty"`
	CrossStreet   string `json:"cross_street,omitempty" yaml:"cross_street,omitempty"`
	Postalcode    string `json:"postalcode,omitempty" yaml:"postalcode,omitempty"`
	Neighbourhood string `json:"neighbourhood,omitempty" yaml:"neighbourhood,omitempty"`
	Borough       string `json:"borough,omitempty" yaml:"borough,omitempty"`
	City          string `json:"city,omitempty" yaml:"city,omitempty"`
	County        string `json:"county,omitempty" yaml:"county,omitempty"`
	State         string `json:"state,omitempty" yaml:"state,omitempty"`
	Country       string `json:"country,omitempty" yaml:"country,omitempty"`
}
