package matching

import (
	"errors"
	"strings"

	"github.com/tzok/mcq-cli/structures"
)

// Query is an opaque parsed selection expression. Its representation belongs
// to the QueryParser/SelectionFactory pair that produced and consumes it.
type Query interface{}

// QueryParser parses a textual selection expression. Malformed expressions
// fail with a syntax error.
type QueryParser interface {
	Parse(text string) (Query, error)
}

// SelectionFactory builds selections from whole structures. Create applies
// the factory's default decomposition; CreateFromQuery restricts the
// selection to what a parsed query matches.
type SelectionFactory interface {
	Create(name string, s *structures.Structure) (Selection, error)
	CreateFromQuery(name string, s *structures.Structure, q Query) (Selection, error)
}

// ErrNoQueryParser is returned by Select when a query directive is given but
// no parser is available.
var ErrNoQueryParser = errors.New("no selection query parser available")

// Directive is the user's choice of how to partition a structure.
type Directive int

const (
	// Wildcard treats all residues in file order as a single fragment,
	// ignoring chain breaks.
	Wildcard Directive = iota

	// Auto lets the selection factory divide the structure into compact
	// fragments on its own.
	Auto

	// ExplicitQuery parses the directive text as a selection expression.
	ExplicitQuery
)

// ClassifyDirective maps directive text to its variant: exactly "*" is
// Wildcard, empty or whitespace-only is Auto, anything else is an explicit
// query. The three cases are exhaustive and mutually exclusive.
func ClassifyDirective(text string) Directive {
	switch {
	case text == "*":
		return Wildcard
	case strings.TrimSpace(text) == "":
		return Auto
	default:
		return ExplicitQuery
	}
}

// Select makes a selection on a structure. The directive text decides the
// strategy per ClassifyDirective. Wildcard selections are built here; Auto
// and query selections are delegated to the factory. Query parse failures
// propagate untranslated.
func Select(
	s *structures.Structure,
	name string,
	directive string,
	factory SelectionFactory,
	parser QueryParser,
) (Selection, error) {
	switch ClassifyDirective(directive) {
	case Wildcard:
		frag := CompactFragment{Name: name, Residues: s.Residues}
		return Selection{Name: name, Fragments: []CompactFragment{frag}}, nil
	case Auto:
		return factory.Create(name, s)
	default:
		if parser == nil {
			return Selection{}, ErrNoQueryParser
		}
		q, err := parser.Parse(directive)
		if err != nil {
			return Selection{}, err
		}
		return factory.CreateFromQuery(name, s, q)
	}
}
