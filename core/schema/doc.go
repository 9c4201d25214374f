// Package schema defines the closed set of artifact kinds that canvasmith can
// recover from model output, together with the typed, fully-populated structs
// that the normalizer produces for each kind.
//
// Kinds are a compile-time enum dispatched by exhaustive switch. Adding a kind
// means adding a constant here plus a branch in core/validate and
// core/normalize; there is no runtime registry.
package schema
