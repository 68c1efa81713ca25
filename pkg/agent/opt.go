package agent

import (
	"strings"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	zerolog "github.com/rs/zerolog"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring an agent
type Opt func(*Agent) error

///////////////////////////////////////////////////////////////////////////////
// AGENT OPTIONS

// WithToolkit sets the tools offered to the model
func WithToolkit(toolkit *tool.Toolkit) Opt {
	return func(a *Agent) error {
		if toolkit == nil {
			return weather.ErrBadParameter.With("toolkit is required")
		}
		a.toolkit = toolkit
		return nil
	}
}

// WithSystemPrompt sets the instructions sent ahead of every turn
func WithSystemPrompt(value string) Opt {
	return func(a *Agent) error {
		a.system = strings.TrimSpace(value)
		return nil
	}
}

// WithMaxIterations sets the number of tool rounds allowed in a single
// turn. Zero keeps the default.
func WithMaxIterations(value uint) Opt {
	return func(a *Agent) error {
		if value > 0 {
			a.maxIter = value
		}
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Opt {
	return func(a *Agent) error {
		a.log = logger
		return nil
	}
}

// WithTracer sets the tracer used for spans around each turn and tool call
func WithTracer(tracer trace.Tracer) Opt {
	return func(a *Agent) error {
		if tracer != nil {
			a.tracer = tracer
		}
		return nil
	}
}

// WithGeneratorOpts appends options passed to the generator on every request,
// for example the sampling temperature
func WithGeneratorOpts(opts ...opt.Opt) Opt {
	return func(a *Agent) error {
		a.opts = append(a.opts, opts...)
		return nil
	}
}
