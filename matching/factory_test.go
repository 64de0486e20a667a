package matching

import (
	"testing"

	"github.com/TuftsBCB/io/pdb"
	"github.com/TuftsBCB/structure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tzok/mcq-cli/structures"
)

func res(chain byte, num int) structures.Residue {
	return structures.Residue{Chain: chain, Name: 'G', SequenceNum: num}
}

func resAt(chain byte, num int, x float64) structures.Residue {
	r := res(chain, num)
	r.Atoms = []pdb.Atom{{
		Name:   "P",
		Coords: structure.Coords{X: x},
	}}
	return r
}

func TestAutoFactorySingleRun(t *testing.T) {
	s := &structures.Structure{Residues: []structures.Residue{
		res('A', 1), res('A', 2), res('A', 3),
	}}

	sel, err := AutoFactory{}.Create("m1", s)
	require.NoError(t, err)
	require.Len(t, sel.Fragments, 1)
	assert.Equal(t, "m1", sel.Name)
	assert.Equal(t, "m1 A.1-3", sel.Fragments[0].Name)
	assert.Len(t, sel.Fragments[0].Residues, 3)
}

func TestAutoFactoryChainBreak(t *testing.T) {
	s := &structures.Structure{Residues: []structures.Residue{
		res('A', 1), res('A', 2),
		res('B', 1), res('B', 2), res('B', 3),
	}}

	sel, err := AutoFactory{}.Create("m1", s)
	require.NoError(t, err)
	require.Len(t, sel.Fragments, 2)
	assert.Len(t, sel.Fragments[0].Residues, 2)
	assert.Len(t, sel.Fragments[1].Residues, 3)
	assert.Equal(t, "m1 A.1-2", sel.Fragments[0].Name)
	assert.Equal(t, "m1 B.1-3", sel.Fragments[1].Name)
}

func TestAutoFactoryNumberingGap(t *testing.T) {
	s := &structures.Structure{Residues: []structures.Residue{
		res('A', 1), res('A', 2), res('A', 10), res('A', 11),
	}}

	sel, err := AutoFactory{}.Create("m1", s)
	require.NoError(t, err)
	require.Len(t, sel.Fragments, 2)
	assert.Equal(t, "m1 A.1-2", sel.Fragments[0].Name)
	assert.Equal(t, "m1 A.10-11", sel.Fragments[1].Name)
}

func TestAutoFactoryDistanceBreak(t *testing.T) {
	// Numbering is contiguous but the backbone jumps 50A between residues
	// 2 and 3.
	s := &structures.Structure{Residues: []structures.Residue{
		resAt('A', 1, 0), resAt('A', 2, 6), resAt('A', 3, 56), resAt('A', 4, 62),
	}}

	sel, err := AutoFactory{}.Create("m1", s)
	require.NoError(t, err)
	require.Len(t, sel.Fragments, 2)
	assert.Len(t, sel.Fragments[0].Residues, 2)
	assert.Len(t, sel.Fragments[1].Residues, 2)
}

func TestAutoFactoryResidueOrderPreserved(t *testing.T) {
	s := &structures.Structure{Residues: []structures.Residue{
		res('A', 1), res('A', 2), res('B', 1),
	}}

	sel, err := AutoFactory{}.Create("m1", s)
	require.NoError(t, err)

	var flat []structures.Residue
	for _, frag := range sel.Fragments {
		flat = append(flat, frag.Residues...)
	}
	assert.Equal(t, s.Residues, flat)
}

func TestAutoFactoryEmptyStructure(t *testing.T) {
	_, err := AutoFactory{}.Create("m1", &structures.Structure{})
	assert.Error(t, err)
}

func TestAutoFactoryRejectsQueries(t *testing.T) {
	s := &structures.Structure{Residues: []structures.Residue{res('A', 1)}}
	_, err := AutoFactory{}.CreateFromQuery("m1", s, "A:1")
	assert.Error(t, err)
}
