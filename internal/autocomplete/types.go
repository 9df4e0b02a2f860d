package autocomplete

import (
	"slices"

	"autocomplete-srv/pkg/query"
)

const (
	QueryType = "autocomplete"

	// AddNameToMultiMatch is the synthetic admin field that adds the name
	// field to the admin multi_match views.
	AddNameToMultiMatch      = "add_name_to_multimatch"
	AddNameToMultiMatchValue = "enabled"
	AddNameToMultiMatchField = "name.default"

	// ExcludeAddressLayer is the layer dropped for short inputs.
	ExcludeAddressLayer = "address"
)

// AdminAbbreviations are the abbreviation fields the text parser can detect.
var AdminAbbreviations = []string{"locality_a", "region_a", "country_a"}

// Query is the generated backend query.
type Query struct {
	Type string     `json:"type"`
	Body query.Body `json:"body"`
}

// AdminFields returns the admin capable fields for placeTypes: the place
// types, the abbreviation fields and the synthetic name field, in that order.
func AdminFields(placeTypes []string) []string {
	fields := slices.Clone(placeTypes)
	fields = append(fields, AdminAbbreviations...)
	return append(fields, AddNameToMultiMatch)
}
