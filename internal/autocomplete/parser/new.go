package parser

import (
	"autocomplete-srv/internal/autocomplete"
	"autocomplete-srv/pkg/log"
)

type implParser struct {
	l log.Logger
}

// New returns the TextParser that maps parsed_text onto query variables.
func New(l log.Logger) autocomplete.TextParser {
	return &implParser{l: l}
}
