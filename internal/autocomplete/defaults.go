package autocomplete

import (
	"maps"

	"autocomplete-srv/pkg/query"
)

var defaults = map[string]any{
	"size":           10,
	"track_scores":   true,
	"centroid:field": "center_point",

	"ngram:analyzer": "peliasQuery",
	"ngram:field":    "name.default",
	"ngram:boost":    100,

	"phrase:analyzer": "peliasPhrase",
	"phrase:field":    "phrase.default",
	"phrase:boost":    1,
	"phrase:slop":     3,

	"admin:analyzer": "peliasAdmin",

	"focus:function": "exp",
	"focus:offset":   "0km",
	"focus:scale":    "100km",
	"focus:decay":    0.5,
	"focus:weight":   40,

	"focus:point:filter:radius":     "100km",
	"focus:point:filter:max_length": 2,

	"function_score:score_mode": "avg",
	"function_score:boost_mode": "replace",

	"address:housenumber:analyzer": "peliasHousenumber",
	"address:housenumber:field":    "address_parts.number",
	"address:housenumber:boost":    2,

	"address:street:analyzer": "peliasStreet",
	"address:street:field":    "address_parts.street",
	"address:street:boost":    5,

	"address:cross_street:analyzer": "peliasStreet",
	"address:cross_street:field":    "address_parts.cross_street",
	"address:cross_street:boost":    5,

	"address:postcode:analyzer": "peliasZip",
	"address:postcode:field":    "address_parts.zip",
	"address:postcode:boost":    2000,

	"admin:country_a:field": "parent.country_a",
	"admin:country_a:boost": 1,

	"admin:country:field": "parent.country",
	"admin:country:boost": 1,

	"admin:dependency:field": "parent.dependency",
	"admin:dependency:boost": 1,

	"admin:region:field": "parent.region",
	"admin:region:boost": 1,

	"admin:region_a:field": "parent.region_a",
	"admin:region_a:boost": 1,

	"admin:macroregion:field": "parent.macroregion",
	"admin:macroregion:boost": 1,

	"admin:county:field": "parent.county",
	"admin:county:boost": 1,

	"admin:macrocounty:field": "parent.macrocounty",
	"admin:macrocounty:boost": 1,

	"admin:localadmin:field": "parent.localadmin",
	"admin:localadmin:boost": 1,

	"admin:locality:field": "parent.locality",
	"admin:locality:boost": 1,

	"admin:locality_a:field": "parent.locality_a",
	"admin:locality_a:boost": 1,

	"admin:borough:field": "parent.borough",
	"admin:borough:boost": 1,

	"admin:neighbourhood:field": "parent.neighbourhood",
	"admin:neighbourhood:boost": 1,

	"admin:add_name_to_multimatch:boost": 1,

	"popularity:field":     "popularity",
	"popularity:modifier":  "log1p",
	"popularity:max_boost": 20,
	"popularity:weight":    1,

	"population:field":     "population",
	"population:modifier":  "log1p",
	"population:max_boost": 20,
	"population:weight":    3,

	"boundary:circle:radius":        "50km",
	"boundary:circle:distance_type": "plane",

	"boundary:rect:type": "indexed",
}

// Defaults returns a copy of the default autocomplete variables.
func Defaults() map[string]any {
	return maps.Clone(defaults)
}

// NewVars returns a variable context seeded with the defaults.
func NewVars() *query.Vars {
	return query.NewVars(defaults)
}
