// Package attr defines the closed set of attribute value kinds understood by
// the grafio codecs, the tagged Value container that carries one datum of any
// kind, and the text codec that maps values to and from their GraphML lexical
// forms.
//
// Overview:
//
//   - Kind enumerates every supported value shape: booleans, 8-bit unsigned
//     integers, 32/64-bit signed integers, 32/64-bit floats, vectors of those,
//     strings, and an opaque object payload.
//   - Each Kind owns one canonical GraphML type-name (Kind.TypeName) and the
//     registry maps accepted input names back to kinds (KindOf). The mapping
//     is many-to-one on input: "vector_float" and "vector_double" both land
//     on KindFloat64Vector, and "boolean" lands on KindUint8 so that legacy
//     boolean columns holding small counters survive a read.
//   - Parse and Print convert between lexical text and typed values. Both
//     directions are total over the kind set; Parse reports failures instead
//     of guessing.
//
// Lexical forms:
//
//   - Booleans print as "0"/"1"; Parse additionally accepts "true"/"false".
//   - Integers use plain signed decimal.
//   - Floats print in hexadecimal-significand form ("0x1.8p+00" for 1.5),
//     which round-trips IEEE-754 values bit-exactly. Parse accepts both this
//     form and ordinary decimal notation.
//   - Vectors print their elements separated by single spaces; Parse splits
//     on any run of whitespace. The empty vector prints as "". Elements of a
//     string vector therefore must not contain whitespace themselves.
//   - Strings and object payloads pass through unchanged; XML escaping is a
//     separate, explicit step (EscapeString).
//
// Error handling (sentinel errors):
//
//   - ErrParse: the text does not parse as the requested kind.
//   - ErrKindMismatch: a Value or Kind was used where a different kind is
//     required (for example Parse with KindInvalid).
//
// Type names outside the accepted set are not an attr failure: KindOf
// reports them with a false second result and each codec raises its own
// schema error (graphml.ErrTypeUnknown and friends).
//
// Thread safety: kinds and values are immutable after construction; all
// package functions are safe for concurrent use.
package attr
