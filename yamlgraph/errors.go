package yamlgraph

import "errors"

// ErrDocument indicates YAML that does not decode into the expected
// document shape: syntax errors, wrong node kinds, non-scalar values
// where scalars are required.
var ErrDocument = errors.New("yamlgraph: malformed document")

// ErrSchema indicates a well-shaped document that violates graph
// semantics: undeclared or re-declared properties, missing, duplicate
// or unknown vertex ids, domain mismatches, or a directedness conflict
// with the host.
var ErrSchema = errors.New("yamlgraph: schema violation")
