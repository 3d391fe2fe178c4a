package render

import "errors"

// Error taxonomy per spec.md §7: all fatal, no partial-output recovery.
var (
	// ErrUnassignedName means a Name reached serialization without an
	// assigned string. This is a programmer error in a Strategy
	// implementation — it should never surface from correct target code.
	ErrUnassignedName = errors.New("render: name reached serialization unassigned")

	// ErrUnsupportedTypeShape means a target hook was invoked on a kind
	// it declares unsupported, e.g. a non-string map key.
	ErrUnsupportedTypeShape = errors.New("render: unsupported type shape")

	// ErrUnresolvableUnion means explicit sum synthesis produced
	// overlapping JSON-level guards at the same depth.
	ErrUnresolvableUnion = errors.New("render: unresolvable union")
)

// Render also surfaces typeir.Validate's errors (ErrCycleBeyondNamedBoundary,
// ErrNullOutsideUnion) unchanged; callers should check against both
// packages' sentinels with errors.Is.
