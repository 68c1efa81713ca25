package agent

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// runTools runs each call in order and returns one result block per call.
// A failing tool is reported back to the model as an error result.
func (a *Agent) runTools(ctx context.Context, calls []schema.ToolCall, fn opt.StreamFn) []schema.ContentBlock {
	results := make([]schema.ContentBlock, 0, len(calls))
	for _, call := range calls {
		if fn != nil {
			fn(schema.RoleTool, a.feedback(call))
		}
		out, err := a.runTool(ctx, call)
		if err != nil {
			a.log.Debug().Err(err).Str("tool", call.Name).Msg("tool failed")
			results = append(results, schema.NewToolError(call.ID, call.Name, err))
		} else {
			results = append(results, schema.NewToolResult(call.ID, call.Name, out))
		}
	}
	return results
}

func (a *Agent) runTool(ctx context.Context, call schema.ToolCall) (_ any, err error) {
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "RunTool",
		attribute.String("tool", call.Name),
		attribute.String("input", string(call.Input)),
	)
	defer func() { endSpan(err) }()

	if a.toolkit == nil {
		return nil, weather.ErrNotFound.Withf("tool not found: %q", call.Name)
	}
	return a.toolkit.Run(ctx, call.Name, call.Input)
}

func (a *Agent) feedback(call schema.ToolCall) string {
	if a.toolkit == nil {
		return call.Name
	}
	return a.toolkit.Feedback(call)
}
