package core

import "errors"

// Common errors.
var (
	// ErrNotFound indicates a gloss label or numeric id has zero matches.
	// Consumers treat it as a normal empty result, never as a crash.
	ErrNotFound = errors.New("core: gloss not found")

	// ErrLoad indicates the gloss dataset was unreachable or malformed.
	// The engine degrades to an empty index; resolution then always
	// fails with ErrNotFound.
	ErrLoad = errors.New("core: gloss dataset load failed")

	// ErrNoSelection indicates an editor operation was invoked while the
	// encoding document's caret points at no symbol.
	ErrNoSelection = errors.New("core: no symbol selected at caret")

	// ErrMalformedSequence indicates a token sequence violates the
	// well-formedness rules (e.g. an indicator with no bounding marker).
	ErrMalformedSequence = errors.New("core: malformed token sequence")
)
