// Package observability defines the logging and metrics capability injected
// into the canvasmith pipeline. The core never reads ambient debug
// configuration; callers pass an [Observer] at construction time and the
// default is [Noop], which discards everything.
//
// The slogobs subpackage adapts Go's standard library log/slog to the
// Observer interface for callers that want real output.
package observability
