package prop

import "errors"

// Sentinel errors for property map operations.
var (
	// ErrValueKind indicates a Put whose value kind differs from the map kind.
	ErrValueKind = errors.New("prop: value kind does not match map kind")

	// ErrKindConflict indicates an Ensure whose kind differs from an existing entry.
	ErrKindConflict = errors.New("prop: key kind conflicts with existing entry")

	// ErrBadName indicates an empty property name.
	ErrBadName = errors.New("prop: property name is empty")

	// ErrBadKind indicates a kind outside the closed set.
	ErrBadKind = errors.New("prop: invalid value kind")
)
