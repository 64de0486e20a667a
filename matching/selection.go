// Package matching carves loaded structures into named selections of compact
// fragments, the unit handed to torsion-angle comparison.
package matching

import "github.com/tzok/mcq-cli/structures"

// CompactFragment is a contiguous, ordered run of residues treated as one
// comparison unit. A fragment is never empty and preserves residue order
// from the source structure.
type CompactFragment struct {
	Name     string
	Residues []structures.Residue
}

// Selection is a named collection of one or more compact fragments drawn
// from a single structure.
type Selection struct {
	Name      string
	Fragments []CompactFragment
}

// ResidueCount sums the residues across all fragments.
func (s Selection) ResidueCount() int {
	n := 0
	for i := range s.Fragments {
		n += len(s.Fragments[i].Residues)
	}
	return n
}
