// Package normalize projects a decoded JSON value onto a fully-populated,
// bounded artifact spec. It runs whether or not validation passed: a response
// with recoverable defects must still yield a renderable artifact.
//
// Normalization never panics and never mutates its input; it reads the decoded
// tree and builds a fresh struct. It is also idempotent: feeding a normalized
// spec back through produces an identical spec, so repeated truncation cannot
// shave an already-capped array and the truncation notice is never stacked.
package normalize
