// Package agent holds a single conversation with a model, running the tools
// the model asks for until it produces an answer.
package agent

import (
	"sync"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
	global "go.opentelemetry.io/otel"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Agent is a conversation between a user and a model. Only one turn runs at
// a time; concurrent calls to Ask wait for the previous turn to complete.
type Agent struct {
	sync.Mutex
	generator    weather.Generator
	model        schema.Model
	toolkit      *tool.Toolkit
	system       string
	maxIter      uint
	opts         []opt.Opt
	log          zerolog.Logger
	tracer       trace.Tracer
	conversation schema.Conversation
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tracerName = "github.com/mutablelogic/go-weather/pkg/agent"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an agent which sends messages to the generator using the
// given model
func New(generator weather.Generator, model schema.Model, opts ...Opt) (*Agent, error) {
	if generator == nil {
		return nil, weather.ErrBadParameter.With("generator is required")
	}
	if model.Name == "" {
		return nil, weather.ErrBadParameter.With("model is required")
	}

	self := &Agent{
		generator: generator,
		model:     model,
		maxIter:   schema.DefaultMaxIterations,
		log:       log.Logger,
		tracer:    global.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		if err := opt(self); err != nil {
			return nil, err
		}
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Model returns the model the agent talks to
func (a *Agent) Model() schema.Model {
	return a.model
}

// Toolkit returns the tools offered to the model, or nil
func (a *Agent) Toolkit() *tool.Toolkit {
	return a.toolkit
}

// SystemPrompt returns the instructions sent ahead of every turn
func (a *Agent) SystemPrompt() string {
	return a.system
}

// Conversation returns a copy of the messages exchanged so far
func (a *Agent) Conversation() schema.Conversation {
	a.Lock()
	defer a.Unlock()
	result := make(schema.Conversation, 0, len(a.conversation))
	for _, message := range a.conversation {
		m := *message
		result = append(result, &m)
	}
	return result
}

// Reset forgets the conversation
func (a *Agent) Reset() {
	a.Lock()
	defer a.Unlock()
	a.conversation.Truncate(0)
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (a *Agent) String() string {
	a.Lock()
	defer a.Unlock()
	return a.conversation.String()
}
