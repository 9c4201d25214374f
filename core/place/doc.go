// Package place computes where a newly generated artifact lands on the
// canvas. It has two halves: anchor resolution, which turns an opaque scene
// node into a trustworthy absolute rectangle (or nothing), and the placement
// engine, which positions an output of known size relative to that rectangle
// with a viewport-centering fallback.
//
// Placement degeneracy is never an error. An absent, degenerate, or
// too-close-to-the-edge anchor falls back to centering on the viewport, and
// the returned Placement records which path was taken and why.
package place
