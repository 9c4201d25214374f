// Package utils holds small internal helpers shared across canvasmith:
// JSON-safe string rendering, string capping, and a synchronous JSON POST
// helper for provider implementations.
package utils
