package schema

import (
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is one turn in a conversation with the model. Content is a list
// of blocks so that a single assistant turn can carry text and tool calls.
type Message struct {
	Role    string         `json:"role"`             // "user", "assistant", "system", "tool"
	Content []ContentBlock `json:"content"`          // Array of content blocks
	Tokens  uint           `json:"tokens,omitempty"` // Number of tokens
	Result  ResultType     `json:"result,omitempty"` // Result type
	Meta    map[string]any `json:"meta,omitzero"`    // Provider-specific metadata
}

// ContentBlock represents a single piece of content within a message.
// Exactly one of the fields should be non-nil.
type ContentBlock struct {
	Text       *string     `json:"text,omitempty"`        // Text content
	ToolCall   *ToolCall   `json:"tool_call,omitempty"`   // Tool invocation (assistant → user)
	ToolResult *ToolResult `json:"tool_result,omitempty"` // Tool response (user → assistant)
}

// ToolCall represents a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id,omitempty"`    // Call ID, generated if the provider has none
	Name  string          `json:"name"`            // Tool function name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolResult represents the result of running a tool
type ToolResult struct {
	ID      string          `json:"id,omitempty"`      // Matches the ToolCall ID
	Name    string          `json:"name,omitempty"`    // Tool function name
	Content json.RawMessage `json:"content,omitempty"` // JSON-encoded result
	IsError bool            `json:"is_error,omitempty"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new message with the given role and text content. Additional
// content blocks can be appended with WithToolResult.
func NewMessage(role string, text string, opts ...opt.Opt) (*Message, error) {
	o, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Create content blocks, omitting empty text when other blocks exist
	var blocks []ContentBlock
	if text != "" {
		blocks = append(blocks, ContentBlock{Text: types.Ptr(text)})
	}
	if v := o.Get(opt.ContentBlockKey); v != nil {
		if extra, ok := v.([]ContentBlock); !ok {
			return nil, fmt.Errorf("invalid content blocks option")
		} else {
			blocks = append(blocks, extra...)
		}
	}
	if len(blocks) == 0 {
		blocks = append(blocks, ContentBlock{Text: types.Ptr(text)})
	}

	// Return the message
	return types.Ptr(Message{
		Role:    role,
		Content: blocks,
	}), nil
}

// NewToolResult creates a content block containing a successful tool result
func NewToolResult(id, name string, v any) ContentBlock {
	data, err := json.Marshal(v)
	if err != nil {
		return NewToolError(id, name, err)
	}
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: json.RawMessage(data),
		},
	}
}

// NewToolError creates a content block containing a tool error result
func NewToolError(id, name string, err error) ContentBlock {
	data, _ := json.Marshal(err.Error())
	return ContentBlock{
		ToolResult: &ToolResult{
			ID:      id,
			Name:    name,
			Content: json.RawMessage(data),
			IsError: true,
		},
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Text returns the concatenated text content from all text blocks in the message
func (m Message) Text() string {
	var result []string
	for _, block := range m.Content {
		if block.Text != nil && *block.Text != "" {
			result = append(result, *block.Text)
		}
	}
	return strings.Join(result, "\n")
}

// ToolCalls returns all tool call blocks in the message
func (m Message) ToolCalls() []ToolCall {
	var result []ToolCall
	for _, block := range m.Content {
		if block.ToolCall != nil {
			result = append(result, *block.ToolCall)
		}
	}
	return result
}

// ToolResults returns all tool result blocks in the message
func (m Message) ToolResults() []ToolResult {
	var result []ToolResult
	for _, block := range m.Content {
		if block.ToolResult != nil {
			result = append(result, *block.ToolResult)
		}
	}
	return result
}

// Text returns the tool result content as plain text, unquoting
// JSON strings
func (r ToolResult) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}

////////////////////////////////////////////////////////////////////////////////
// MESSAGE OPTIONS

// WithToolResult appends tool result blocks to a new message
func WithToolResult(blocks ...ContentBlock) opt.Opt {
	return opt.AddAny(opt.ContentBlockKey, blocks...)
}
