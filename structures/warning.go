package structures

// WarningKind enumerates the non-fatal conditions this toolset can report.
type WarningKind int

const (
	// WarnExtraModels: a file encoded more than one model; the first is used.
	WarnExtraModels WarningKind = iota

	// WarnNameCountMismatch: a user supplied name list whose length differs
	// from the number of model paths; derived names are used instead.
	WarnNameCountMismatch
)

// Warning is a structured, renderable-later report of a non-fatal condition.
// Components emit Warning values; turning them into user-facing text is the
// caller's concern.
type Warning struct {
	Kind WarningKind

	// Path is the file concerned, when there is one.
	Path string

	// Have and Want carry the counts the warning is about: models found vs
	// models used for WarnExtraModels, names supplied vs paths given for
	// WarnNameCountMismatch.
	Have, Want int
}
