package matching

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/TuftsBCB/structure"

	"github.com/tzok/mcq-cli/structures"
)

// DefaultBreakDistance is the inter-residue backbone distance in angstroms
// above which AutoFactory starts a new fragment. Consecutive backbone atoms
// sit well under 8A in both nucleic acids (P-P ~6A) and proteins (CA-CA
// ~3.8A).
const DefaultBreakDistance = 10.0

// AutoFactory is the default selection factory: it divides a structure into
// compact fragments at chain boundaries, at gaps in residue numbering and at
// backbone breaks detected by inter-residue distance.
//
// AutoFactory does not evaluate selection expressions; CreateFromQuery
// always fails. Wiring a query-capable factory is the caller's concern.
type AutoFactory struct {
	// BreakDistance overrides DefaultBreakDistance when positive.
	BreakDistance float64
}

// Create partitions all residues of s into compact fragments. Each fragment
// is named after the selection name plus its chain and residue range.
func (f AutoFactory) Create(name string, s *structures.Structure) (Selection, error) {
	if len(s.Residues) == 0 {
		return Selection{}, fmt.Errorf(
			"cannot select from '%s': structure has no residues", name)
	}

	limit := f.BreakDistance
	if limit <= 0 {
		limit = DefaultBreakDistance
	}

	var frags []CompactFragment
	start := 0
	for i := 1; i <= len(s.Residues); i++ {
		if i < len(s.Residues) && !breakBetween(s.Residues[i-1], s.Residues[i], limit) {
			continue
		}
		run := s.Residues[start:i]
		frags = append(frags, CompactFragment{
			Name:     fragmentName(name, run),
			Residues: run,
		})
		start = i
	}
	return Selection{Name: name, Fragments: frags}, nil
}

// CreateFromQuery always fails: AutoFactory has no query evaluator.
func (f AutoFactory) CreateFromQuery(
	name string, s *structures.Structure, q Query,
) (Selection, error) {
	return Selection{}, errors.New(
		"selection queries are not supported by the default factory")
}

func fragmentName(name string, run []structures.Residue) string {
	first, last := run[0], run[len(run)-1]
	return fmt.Sprintf("%s %c.%d-%d",
		name, first.Chain, first.SequenceNum, last.SequenceNum)
}

// breakBetween reports whether a new fragment starts at b. A chain change
// always breaks. Within a chain, a jump in residue numbering breaks unless
// an insertion code keeps the numbering flat. When both residues carry a
// backbone atom, a distance above limit breaks regardless of numbering.
func breakBetween(a, b structures.Residue, limit float64) bool {
	if a.Chain != b.Chain {
		return true
	}
	if b.SequenceNum-a.SequenceNum > 1 {
		return true
	}
	ca, aok := backboneCoords(a)
	cb, bok := backboneCoords(b)
	if aok && bok && dist(ca, cb) > limit {
		return true
	}
	return false
}

// backboneCoords picks a representative backbone atom for a residue: the
// phosphorus for nucleic acids, then C4', then the alpha carbon.
func backboneCoords(r structures.Residue) (structure.Coords, bool) {
	for _, want := range []string{"P", "C4'", "CA"} {
		for i := range r.Atoms {
			if strings.TrimSpace(r.Atoms[i].Name) == want {
				return r.Atoms[i].Coords, true
			}
		}
	}
	return structure.Coords{}, false
}

func dist(a, b structure.Coords) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
