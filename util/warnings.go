package util

import (
	"fmt"

	"github.com/tzok/mcq-cli/structures"
)

// WarningMessage renders a structured warning as user-facing text. The
// library packages only ever report warning values; this is the single
// place where they become words.
func WarningMessage(w structures.Warning) string {
	switch w.Kind {
	case structures.WarnExtraModels:
		return fmt.Sprintf(
			"More than 1 model (%d) found in '%s'; only the first is used.",
			w.Have, w.Path)
	case structures.WarnNameCountMismatch:
		return fmt.Sprintf(
			"Number of model names (%d) is different than number of models "+
				"(%d); using derived names instead.",
			w.Have, w.Want)
	}
	return fmt.Sprintf("Unknown warning (kind %d).", w.Kind)
}
