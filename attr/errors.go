package attr

import "errors"

// Sentinel errors for attribute parsing and kind resolution.
var (
	// ErrParse indicates text that does not parse as the requested kind.
	ErrParse = errors.New("attr: value does not parse as its kind")

	// ErrKindMismatch indicates a Value or Kind used where another kind is required.
	ErrKindMismatch = errors.New("attr: kind mismatch")
)
