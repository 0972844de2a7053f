package llm

import (
	"context"
	"errors"
)

// Client abstracts chat-completion providers for document Q&A.
type Client interface {
	// Answer sends one system+user exchange and returns the model's raw
	// answer text. An empty answer with a nil error means the provider
	// returned no content.
	Answer(ctx context.Context, req Request) (string, error)
}

// Request carries the two messages of a single ask exchange.
type Request struct {
	System string
	User   string
}

// ErrNotConfigured is returned when no provider credential is present.
var ErrNotConfigured = errors.New("AI service not configured")

// NotConfiguredClient stands in when the API credential is absent so that
// uploads keep working and only the ask path fails.
type NotConfiguredClient struct{}

// Answer returns ErrNotConfigured.
func (NotConfiguredClient) Answer(context.Context, Request) (string, error) {
	return "", ErrNotConfigured
}
