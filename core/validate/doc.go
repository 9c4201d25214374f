// Package validate checks a decoded JSON value against one of the canvasmith
// artifact schemas and reports field-scoped diagnostics.
//
// Validation never panics and never aborts early: a value of the wrong shape
// (nil, array, scalar) is reported through the returned [Result], every array
// item is checked even when earlier items fail, and unknown top-level keys are
// warnings rather than errors so that schemas stay additive-friendly.
package validate
