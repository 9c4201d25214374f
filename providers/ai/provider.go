package ai

import "context"

// Provider is the transport every model backend must satisfy. The repair
// orchestrator depends on nothing beyond SendMessage; authentication and
// endpoint configuration belong to the concrete implementation.
type Provider interface {
	// SendMessage sends a chat request and returns the completed response.
	// Returns an error if the call fails, the context is cancelled, or the
	// response cannot be decoded.
	SendMessage(ctx context.Context, request ChatRequest) (*ChatResponse, error)
}
