// Package structures loads molecular structure files and flattens them into
// the residue-ordered form consumed by selection and naming.
package structures

import (
	"errors"
	"fmt"

	"github.com/TuftsBCB/io/pdb"
	"github.com/TuftsBCB/seq"
)

// ErrNoModels is wrapped by Load when a file parses but encodes no models
// (or no residues with coordinates at all).
var ErrNoModels = errors.New("no models found")

// Residue is a single residue with its ATOM records, tagged with the chain
// it came from.
type Residue struct {
	Chain         byte
	Name          seq.Residue
	SequenceNum   int
	InsertionCode byte
	Atoms         []pdb.Atom
}

// Structure is one loaded structure: an optional embedded PDB identifier and
// all residues in order of appearance in the file. A Structure is owned by
// the call that loaded it and is never shared across batch entries.
type Structure struct {
	Path     string
	IdCode   string
	Residues []Residue
}

// Loader loads exactly one structure from a file path.
type Loader interface {
	Load(path string) (*Structure, []Warning, error)
}

// FileLoader reads PDB formatted files (plain or gzipped) from disk.
type FileLoader struct{}

// Load reads the first model of each chain in the file. An unreadable or
// unparsable file is a load error. A file with no models is a hard error
// wrapping ErrNoModels. A file with more than one model yields a
// WarnExtraModels warning and proceeds with the first.
func (FileLoader) Load(path string) (*Structure, []Warning, error) {
	entry, err := pdb.ReadPDB(path)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"failed to load structure from file '%s': %w", path, err)
	}
	return FromEntry(entry)
}

// FromEntry flattens a parsed PDB entry into a Structure. Residue order
// follows the file: chains in entry order, each chain's first model in
// residue order.
func FromEntry(entry *pdb.Entry) (*Structure, []Warning, error) {
	s := &Structure{Path: entry.Path, IdCode: entry.IdCode}

	var warns []Warning
	extra := 0
	for _, chain := range entry.Chains {
		if len(chain.Models) == 0 {
			continue
		}
		if n := len(chain.Models); n > extra {
			extra = n
		}
		for _, r := range chain.Models[0].Residues {
			s.Residues = append(s.Residues, Residue{
				Chain:         chain.Ident,
				Name:          r.Name,
				SequenceNum:   r.SequenceNum,
				InsertionCode: r.InsertionCode,
				Atoms:         r.Atoms,
			})
		}
	}
	if extra > 1 {
		warns = append(warns, Warning{
			Kind: WarnExtraModels,
			Path: entry.Path,
			Have: extra,
			Want: 1,
		})
	}
	if len(s.Residues) == 0 {
		return nil, warns, fmt.Errorf("%w in '%s'", ErrNoModels, entry.Path)
	}
	return s, warns, nil
}
