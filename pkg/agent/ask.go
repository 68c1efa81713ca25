package agent

import (
	"context"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	attribute "go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Ask sends the text to the model as the next user turn and returns the
// final response. Tool calls requested by the model are run one after
// another and their results fed back, until the model answers or the
// iteration limit is reached. If fn is non-nil, text is streamed to it as it
// arrives, and each tool call is reported with the "tool" role.
//
// When the limit is reached or the generator fails, the conversation is
// rolled back to where it was before the turn.
func (a *Agent) Ask(ctx context.Context, text string, fn opt.StreamFn) (_ *schema.Message, err error) {
	a.Lock()
	defer a.Unlock()

	// OTEL
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "Ask",
		attribute.String("model", a.model.Name),
	)
	defer func() { endSpan(err) }()

	// Create the user message
	message, err := schema.NewMessage(schema.RoleUser, text)
	if err != nil {
		return nil, err
	}

	// Snapshot the conversation so the turn can be rolled back
	snapshot := len(a.conversation)
	opts := a.generatorOpts(fn)

	// Send the message
	result, usage, err := a.generator.WithSession(ctx, a.model, &a.conversation, message, opts...)
	if err != nil {
		a.conversation.Truncate(snapshot)
		return nil, err
	}
	var total schema.Usage
	addUsage(&total, usage)

	// Run tools while the model asks for them
	for i := uint(0); i < a.maxIter && result.Result == schema.ResultToolCall; i++ {
		calls := result.ToolCalls()
		if len(calls) == 0 {
			break
		}
		a.log.Debug().Uint("iteration", i+1).Int("calls", len(calls)).Msg("running tools")

		// Feed the results back as a single tool message
		response, err := schema.NewMessage(schema.RoleTool, "", schema.WithToolResult(a.runTools(ctx, calls, fn)...))
		if err != nil {
			a.conversation.Truncate(snapshot)
			return nil, err
		}
		result, usage, err = a.generator.WithSession(ctx, a.model, &a.conversation, response, opts...)
		if err != nil {
			a.conversation.Truncate(snapshot)
			return nil, err
		}
		addUsage(&total, usage)
	}

	// Roll back when the model is still asking for tools
	if result.Result == schema.ResultToolCall {
		a.conversation.Truncate(snapshot)
		result.Result = schema.ResultMaxIterations
		return result, weather.ErrMaxIterations.Withf("stopped after %d tool rounds", a.maxIter)
	}

	a.log.Debug().
		Str("result", result.Result.String()).
		Uint("input_tokens", total.InputTokens).
		Uint("output_tokens", total.OutputTokens).
		Msg("turn complete")

	// Return success
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generatorOpts returns the options sent with every request in a turn
func (a *Agent) generatorOpts(fn opt.StreamFn) []opt.Opt {
	opts := make([]opt.Opt, 0, len(a.opts)+3)
	opts = append(opts, a.opts...)
	if a.system != "" {
		opts = append(opts, opt.SetString(opt.SystemPromptKey, a.system))
	}
	if a.toolkit != nil {
		opts = append(opts, tool.WithToolkit(a.toolkit))
	}
	if fn != nil {
		opts = append(opts, opt.WithStream(fn))
	}
	return opts
}

func addUsage(total, usage *schema.Usage) {
	if usage != nil {
		total.InputTokens += usage.InputTokens
		total.OutputTokens += usage.OutputTokens
	}
}
