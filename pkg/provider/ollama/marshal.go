package ollama

import (
	"bytes"
	"encoding/json"

	// Packages
	uuid "github.com/google/uuid"
	types "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// SCHEMA -> OLLAMA

// ollamaMessagesFromConversation converts every message in the conversation
func ollamaMessagesFromConversation(conversation *schema.Conversation) ([]ollamaMessage, error) {
	var result []ollamaMessage
	for _, message := range *conversation {
		if message == nil {
			continue
		}
		messages, err := ollamaMessagesFromMessage(message)
		if err != nil {
			return nil, err
		}
		result = append(result, messages...)
	}
	return result, nil
}

// ollamaMessagesFromMessage converts a message into one or more Ollama
// messages. Each tool result becomes its own message with the tool role.
func ollamaMessagesFromMessage(message *schema.Message) ([]ollamaMessage, error) {
	var result []ollamaMessage

	// Text and tool calls are combined into a single message
	msg := ollamaMessage{Role: message.Role}
	if msg.Role == schema.RoleTool {
		msg.Role = roleUser
	}
	msg.Content = message.Text()
	for _, call := range message.ToolCalls() {
		args := call.Input
		if len(bytes.TrimSpace(args)) == 0 {
			args = json.RawMessage("{}")
		}
		msg.ToolCalls = append(msg.ToolCalls, ollamaToolCall{
			ID: call.ID,
			Function: ollamaFunctionCall{
				Name:      call.Name,
				Arguments: args,
			},
		})
	}
	if msg.Content != "" || len(msg.ToolCalls) > 0 {
		result = append(result, msg)
	}

	// Tool results follow
	for _, r := range message.ToolResults() {
		if r.Name == "" {
			return nil, weather.ErrBadParameter.Withf("tool result %q has no tool name", r.ID)
		}
		result = append(result, ollamaMessage{
			Role:     roleTool,
			Content:  r.Text(),
			ToolName: r.Name,
		})
	}

	// Empty messages are sent as empty text
	if len(result) == 0 {
		result = append(result, msg)
	}

	return result, nil
}

// ollamaToolsFromDefinitions converts tool definitions to the request format
func ollamaToolsFromDefinitions(defs []schema.ToolDefinition) []ollamaTool {
	if len(defs) == 0 {
		return nil
	}
	result := make([]ollamaTool, 0, len(defs))
	for _, def := range defs {
		result = append(result, ollamaTool{
			Type: "function",
			Function: ollamaFunction{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.InputSchema,
			},
		})
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// OLLAMA -> SCHEMA

// messageFromOllamaResponse converts a (final or accumulated) chat response
// to an assistant message
func messageFromOllamaResponse(response *chatResponse) *schema.Message {
	message := &schema.Message{
		Role: schema.RoleAssistant,
	}
	if text := response.Message.Content; text != "" {
		message.Content = append(message.Content, schema.ContentBlock{Text: types.Ptr(text)})
	}
	for _, call := range response.Message.ToolCalls {
		id := call.ID
		if id == "" {
			id = uuid.NewString()
		}
		args := call.Function.Arguments
		if len(bytes.TrimSpace(args)) == 0 || string(args) == "null" {
			args = json.RawMessage("{}")
		}
		message.Content = append(message.Content, schema.ContentBlock{
			ToolCall: &schema.ToolCall{
				ID:    id,
				Name:  call.Function.Name,
				Input: args,
			},
		})
	}
	if len(message.Content) == 0 {
		message.Content = append(message.Content, schema.ContentBlock{Text: types.Ptr("")})
	}

	// Set the result type
	switch {
	case len(response.Message.ToolCalls) > 0:
		message.Result = schema.ResultToolCall
	case response.DoneReason == doneReasonLength:
		message.Result = schema.ResultMaxTokens
	case response.DoneReason == doneReasonStop, response.DoneReason == "":
		message.Result = schema.ResultStop
	default:
		message.Result = schema.ResultOther
	}

	return message
}

// usageFromOllamaResponse returns token counts from the final response
func usageFromOllamaResponse(response *chatResponse) *schema.Usage {
	return &schema.Usage{
		InputTokens:  uint(max(response.PromptEvalCount, 0)),
		OutputTokens: uint(max(response.EvalCount, 0)),
	}
}
