// Package batch resolves display names for a batch of model structures and
// drives loading and selection over the whole batch.
package batch

import (
	"path/filepath"
	"strings"

	"github.com/tzok/mcq-cli/structures"
)

// structExts are the structural file suffixes stripped when deriving a
// display name from a file path. Longer suffixes first so ".ent.gz" wins
// over ".ent".
var structExts = []string{".ent.gz", ".pdb.gz", ".cif.gz", ".pdb", ".cif", ".ent"}

// ModelName resolves the display name for a loaded structure: the embedded
// PDB identifier when the file carries one, otherwise the file's base name
// with its structural extension stripped. The result is never blank.
func ModelName(path string, s *structures.Structure) string {
	if s != nil && strings.TrimSpace(s.IdCode) != "" {
		return s.IdCode
	}
	base := filepath.Base(path)
	for _, ext := range structExts {
		if strings.HasSuffix(base, ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// NameMap reconciles a comma-separated name list against the model paths.
// A blank list yields an empty map and callers derive names per entry. A
// list whose length differs from the path count yields an empty map plus a
// WarnNameCountMismatch warning: the override degrades, it never fails.
// Otherwise the i-th path maps to the i-th name.
//
// The map is keyed by path value, so duplicate paths in the input all
// collapse to the last-assigned name. This mirrors long-standing behavior
// and is kept deliberately.
func NameMap(paths []string, namesCsv string) (map[string]string, *structures.Warning) {
	if strings.TrimSpace(namesCsv) == "" {
		return map[string]string{}, nil
	}

	names := strings.Split(namesCsv, ",")
	if len(names) != len(paths) {
		return map[string]string{}, &structures.Warning{
			Kind: structures.WarnNameCountMismatch,
			Have: len(names),
			Want: len(paths),
		}
	}

	m := make(map[string]string, len(paths))
	for i, path := range paths {
		m[path] = names[i]
	}
	return m, nil
}
