package weather

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Client is the interface that wraps basic model provider methods
type Client interface {
	// Return the provider name
	Name() string

	// ListModels returns the list of available models
	ListModels(ctx context.Context) ([]schema.Model, error)

	// GetModel returns the model with the given name
	GetModel(ctx context.Context, name string) (*schema.Model, error)
}

// Generator is an interface for sending messages and conducting conversations
type Generator interface {
	// WithoutSession sends a single message and returns the response (stateless)
	WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)

	// WithSession sends a message within a conversation and returns the response,
	// appending both the message and the response to the conversation (stateful)
	WithSession(ctx context.Context, model schema.Model, conversation *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error)
}
