package ollama

import (
	"context"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// INTERFACE CHECK

var _ weather.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithoutSession sends a single message and returns the response (stateless)
func (c *Client) WithoutSession(ctx context.Context, model schema.Model, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if message == nil {
		return nil, nil, weather.ErrBadParameter.With("message is required")
	}
	conversation := schema.Conversation{message}
	return c.generate(ctx, model.Name, &conversation, opts...)
}

// WithSession sends a message within a conversation and returns the response,
// appending both the message and the response to the conversation (stateful)
func (c *Client) WithSession(ctx context.Context, model schema.Model, conversation *schema.Conversation, message *schema.Message, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if conversation == nil {
		return nil, nil, weather.ErrBadParameter.With("conversation is required")
	}
	if message == nil {
		return nil, nil, weather.ErrBadParameter.With("message is required")
	}
	conversation.Append(*message)
	return c.generate(ctx, model.Name, conversation, opts...)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// generate is the core method that builds a request from options and sends it
func (c *Client) generate(ctx context.Context, model string, conversation *schema.Conversation, opts ...opt.Opt) (*schema.Message, *schema.Usage, error) {
	if model == "" {
		return nil, nil, weather.ErrBadParameter.With("model is required")
	}

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, nil, err
	}
	streamFn := options.GetStream()

	// Build request
	request, err := generateRequestFromOpts(model, conversation, options)
	if err != nil {
		return nil, nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, nil, err
	}

	// Streaming path
	if streamFn != nil {
		return c.generateStream(ctx, payload, conversation, streamFn)
	}

	// Non-streaming path
	var response chatResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat")); err != nil {
		return nil, nil, err
	}

	return c.processResponse(&response, conversation)
}

// generateStream handles the newline-delimited JSON response, accumulating
// text and tool calls, and passing text to the callback as it arrives
func (c *Client) generateStream(ctx context.Context, payload client.Payload, conversation *schema.Conversation, streamFn opt.StreamFn) (*schema.Message, *schema.Usage, error) {
	var (
		content  strings.Builder
		response chatResponse
		delta    chatResponse
	)

	callback := func(v any) error {
		chunk, ok := v.(*chatResponse)
		if !ok || chunk == nil {
			return weather.ErrInternalServerError.Withf("invalid stream response: %T", v)
		}

		// Accumulate text content and stream to callback
		if text := chunk.Message.Content; text != "" {
			content.WriteString(text)
			streamFn(schema.RoleAssistant, text)
		}

		// Tool calls arrive whole, in one or more chunks
		response.Message.ToolCalls = append(response.Message.ToolCalls, chunk.Message.ToolCalls...)

		// The final chunk carries the metrics and reason
		response.Model = chunk.Model
		response.CreatedAt = chunk.CreatedAt
		if chunk.Done {
			response.Done = true
			response.DoneReason = chunk.DoneReason
			response.Metrics = chunk.Metrics
		}

		// Reset the chunk so fields don't carry over to the next line
		*chunk = chatResponse{}
		return nil
	}

	// Execute with streaming
	if err := c.DoWithContext(ctx, payload, &delta, client.OptPath("chat"), client.OptJsonStreamCallback(callback)); err != nil {
		return nil, nil, err
	}

	// Build final response from accumulated data
	response.Message.Role = roleAssistant
	response.Message.Content = content.String()
	return c.processResponse(&response, conversation)
}

// processResponse converts an Ollama response to a schema message and appends
// it to the conversation
func (c *Client) processResponse(response *chatResponse, conversation *schema.Conversation) (*schema.Message, *schema.Usage, error) {
	message := messageFromOllamaResponse(response)
	usage := usageFromOllamaResponse(response)

	// Append the message to the conversation with token counts
	conversation.AppendWithOutput(*message, usage.InputTokens, usage.OutputTokens)

	// Return success
	return message, usage, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a chatRequest from the conversation and
// applied options
func generateRequestFromOpts(model string, conversation *schema.Conversation, options opt.Options) (*chatRequest, error) {
	// Convert conversation to Ollama message format
	messages, err := ollamaMessagesFromConversation(conversation)
	if err != nil {
		return nil, err
	}

	request := &chatRequest{
		Model:    model,
		Messages: messages,
		Stream:   options.GetStream() != nil,
	}

	// System prompt, prepended as a system role message
	if systemPrompt := options.GetString(opt.SystemPromptKey); systemPrompt != "" {
		request.Messages = append([]ollamaMessage{{
			Role:    roleSystem,
			Content: systemPrompt,
		}}, request.Messages...)
	}

	// Model options
	modelOptions := make(map[string]any)
	if options.Has(opt.TemperatureKey) {
		modelOptions[optionTemperature] = options.GetFloat64(opt.TemperatureKey)
	}
	if options.Has(opt.TopPKey) {
		modelOptions[optionTopP] = options.GetFloat64(opt.TopPKey)
	}
	if options.Has(opt.TopKKey) {
		modelOptions[optionTopK] = options.GetUint(opt.TopKKey)
	}
	if options.Has(opt.SeedKey) {
		modelOptions[optionSeed] = options.GetUint(opt.SeedKey)
	}
	if options.Has(opt.MaxTokensKey) {
		modelOptions[optionNumPredict] = options.GetUint(opt.MaxTokensKey)
	}
	if len(modelOptions) > 0 {
		request.Options = modelOptions
	}

	// Keep alive
	if options.Has(opt.KeepAliveKey) {
		request.KeepAlive = options.GetDuration(opt.KeepAliveKey).String()
	}

	// Tools
	if toolkit := tool.ToolkitFrom(options); toolkit != nil {
		defs, err := toolkit.Definitions()
		if err != nil {
			return nil, err
		}
		request.Tools = ollamaToolsFromDefinitions(defs)
	}

	return request, nil
}
