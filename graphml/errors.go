package graphml

import (
	"errors"
	"fmt"
)

// Sentinel errors naming the failure categories. Every failure surfacing
// from Read or Write matches exactly one of these under errors.Is, and can
// be unpacked into *Error with errors.As for the position and message.
var (
	// ErrXML indicates malformed XML: bad tokens, unbalanced tags,
	// truncated input.
	ErrXML = errors.New("graphml: malformed xml")

	// ErrSchema indicates structurally invalid GraphML: misplaced elements,
	// missing mandatory attributes, duplicate or dangling identities, or a
	// directedness mismatch with the host.
	ErrSchema = errors.New("graphml: schema violation")

	// ErrTypeUnknown indicates an attribute type name outside the accepted set.
	ErrTypeUnknown = errors.New("graphml: unknown attribute type")

	// ErrValueParse indicates data text that does not parse as its declared type.
	ErrValueParse = errors.New("graphml: invalid attribute value")

	// ErrHostReject indicates the host graph or property store refused a mutation.
	ErrHostReject = errors.New("graphml: host rejected mutation")

	// ErrIO indicates a failure of the underlying byte stream.
	ErrIO = errors.New("graphml: stream failure")
)

// ErrKind discriminates the failure categories of Error.
type ErrKind uint8

const (
	// XMLWellFormedness corresponds to ErrXML.
	XMLWellFormedness ErrKind = iota + 1
	// SchemaViolation corresponds to ErrSchema.
	SchemaViolation
	// TypeUnknown corresponds to ErrTypeUnknown.
	TypeUnknown
	// ValueParse corresponds to ErrValueParse.
	ValueParse
	// HostReject corresponds to ErrHostReject.
	HostReject
	// IOFailure corresponds to ErrIO.
	IOFailure
)

// sentinel returns the package-level error matching the kind.
func (k ErrKind) sentinel() error {
	switch k {
	case XMLWellFormedness:
		return ErrXML
	case SchemaViolation:
		return ErrSchema
	case TypeUnknown:
		return ErrTypeUnknown
	case ValueParse:
		return ErrValueParse
	case HostReject:
		return ErrHostReject
	case IOFailure:
		return ErrIO
	default:
		return nil
	}
}

// String names the kind for rendered messages.
func (k ErrKind) String() string {
	switch k {
	case XMLWellFormedness:
		return "malformed xml"
	case SchemaViolation:
		return "schema violation"
	case TypeUnknown:
		return "unknown type"
	case ValueParse:
		return "invalid value"
	case HostReject:
		return "host rejection"
	case IOFailure:
		return "stream failure"
	default:
		return "unknown error"
	}
}

// Error is the single structured failure value of the codec. Line and Col
// locate the offending construct in the document when known; both are zero
// for failures without a position (writer errors, stream failures).
type Error struct {
	Kind ErrKind
	Msg  string
	Line int
	Col  int
	Err  error // wrapped cause, may be nil
}

// Error renders "graphml: <kind> at line L:C: msg".
func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("graphml: %s at line %d:%d: %s", e.Kind, e.Line, e.Col, e.Msg)
	}

	return fmt.Sprintf("graphml: %s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error { return e.Err }

// Is matches e against the sentinel of its kind, so
// errors.Is(err, ErrValueParse) selects value failures without unpacking.
func (e *Error) Is(target error) bool {
	return target == e.Kind.sentinel()
}

// errf builds a positionless Error.
func errf(kind ErrKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
