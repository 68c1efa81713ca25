package ollama

import (
	"encoding/json"
	"time"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES - Ollama REST API wire format
//
// Reference: https://github.com/ollama/ollama/blob/main/docs/api.md

///////////////////////////////////////////////////////////////////////////////
// CHAT - REQUEST

// chatRequest is the request body for POST /api/chat
type chatRequest struct {
	Model     string          `json:"model"`
	Messages  []ollamaMessage `json:"messages"`
	Tools     []ollamaTool    `json:"tools,omitempty"`
	Options   map[string]any  `json:"options,omitempty"`
	Stream    bool            `json:"stream"`
	KeepAlive string          `json:"keep_alive,omitempty"`
}

// ollamaMessage is a message in the chat history
type ollamaMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
	ToolName  string           `json:"tool_name,omitempty"` // when role is tool
}

// ollamaToolCall is a function call requested by the model
type ollamaToolCall struct {
	ID       string             `json:"id,omitempty"`
	Function ollamaFunctionCall `json:"function"`
}

type ollamaFunctionCall struct {
	Index     int             `json:"index,omitempty"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ollamaTool is a tool definition offered to the model
type ollamaTool struct {
	Type     string         `json:"type"` // function
	Function ollamaFunction `json:"function"`
}

type ollamaFunction struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Parameters  *jsonschema.Schema `json:"parameters,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// CHAT - RESPONSE

// chatResponse is the response body from POST /api/chat, or one line of
// the streamed response
type chatResponse struct {
	Model      string        `json:"model"`
	CreatedAt  time.Time     `json:"created_at"`
	Message    ollamaMessage `json:"message"`
	Done       bool          `json:"done"`
	DoneReason string        `json:"done_reason,omitempty"`
	Metrics
}

// Metrics are returned with the final response
type Metrics struct {
	TotalDuration      time.Duration `json:"total_duration,omitempty"`
	LoadDuration       time.Duration `json:"load_duration,omitempty"`
	PromptEvalCount    int           `json:"prompt_eval_count,omitempty"`
	PromptEvalDuration time.Duration `json:"prompt_eval_duration,omitempty"`
	EvalCount          int           `json:"eval_count,omitempty"`
	EvalDuration       time.Duration `json:"eval_duration,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// MODELS

// model represents the API response for a model from Ollama
type model struct {
	Name       string         `json:"name"`
	Model      string         `json:"model,omitempty"`
	ModifiedAt time.Time      `json:"modified_at"`
	Size       int64          `json:"size,omitempty"`
	Digest     string         `json:"digest,omitempty"`
	Details    modelDetails   `json:"details"`
	Template   string         `json:"template,omitempty"`
	Info       map[string]any `json:"model_info,omitempty"`
	Caps       []string       `json:"capabilities,omitempty"`
}

// modelDetails are the details of the model
type modelDetails struct {
	ParentModel       string   `json:"parent_model,omitempty"`
	Format            string   `json:"format"`
	Family            string   `json:"family"`
	Families          []string `json:"families"`
	ParameterSize     string   `json:"parameter_size"`
	QuantizationLevel string   `json:"quantization_level"`
}

// listModelsResponse is the response from GET /api/tags
type listModelsResponse struct {
	Models []model `json:"models"`
}

///////////////////////////////////////////////////////////////////////////////
// CONSTANTS

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
	roleTool      = "tool"
)

const (
	doneReasonStop   = "stop"
	doneReasonLength = "length"
)

// Keys in the request options object
const (
	optionTemperature = "temperature"
	optionTopP        = "top_p"
	optionTopK        = "top_k"
	optionSeed        = "seed"
	optionNumPredict  = "num_predict"
)

// The capability a model needs to be offered tools
const capabilityTools = "tools"
