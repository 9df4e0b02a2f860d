package parser

import (
	"context"
	"strings"
	"unicode"

	"autocomplete-srv/internal/model"
	"autocomplete-srv/pkg/query"
)

// Parse copies the parsed address fields of clean into vs. Blank fields are
// skipped. It does nothing when clean carries no parsed text.
func (p *implParser) Parse(ctx context.Context, clean model.CleanRequest, vs *query.Vars) {
	parsed := clean.ParsedText
	if parsed == nil {
		return
	}

	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			vs.Set(key, value)
		}
	}

	// a lone number is more likely a name or postcode than a housenumber
	if strings.TrimSpace(parsed.Street) != "" {
		set("input:housenumber", parsed.Housenumber)
	}
	set("input:street", parsed.Street)
	set("input:cross_street", parsed.CrossStreet)
	set("input:postcode", parsed.Postalcode)

	set("input:neighbourhood", parsed.Neighbourhood)
	set("input:borough", parsed.Borough)
	set("input:locality", parsed.City)
	set("input:county", parsed.County)

	state := strings.TrimSpace(parsed.State)
	set("input:region", state)
	if isAbbreviation(state, 2, 2) {
		set("input:region_a", state)
	}

	country := strings.TrimSpace(parsed.Country)
	set("input:country", country)
	if isAbbreviation(country, 2, 3) {
		set("input:country_a", country)
	}

	p.l.Debugf(ctx, "autocomplete.parser.Parse: mapped parsed text %+v", *parsed)
}

// isAbbreviation reports whether s is between lo and hi letters long and
// made of letters only.
func isAbbreviation(s string, lo, hi int) bool {
	n := 0
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n >= lo && n <= hi
}
