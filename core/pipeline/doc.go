// Package pipeline is the front door of canvasmith. It wires extraction,
// validation, normalization, and the optional repair cycle into a single
// Process call, and anchor resolution plus the placement engine into a single
// PlaceArtifact call.
//
// A Pipeline is configured once with its collaborators (model transport,
// viewport, work adapter, observability) and is then safe for concurrent use:
// every method is a pure function of its arguments plus those read-only
// collaborators, with no shared mutable state between invocations.
package pipeline
