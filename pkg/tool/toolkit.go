package tool

import (
	"context"
	"encoding/json"
	"slices"
	"strings"

	// Packages
	server "github.com/mutablelogic/go-server/pkg/types"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	types "github.com/mutablelogic/go-weather/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is a collection of tools with unique names
type Toolkit struct {
	tools map[string]Tool
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, ordered by name
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.tools))
	for _, t := range tk.tools {
		result = append(result, t)
	}
	slices.SortFunc(result, func(a, b Tool) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return result
}

// Definitions returns the provider-agnostic definition of each tool,
// ordered by name
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	result := make([]schema.ToolDefinition, 0, len(tk.tools))
	for _, t := range tk.Tools() {
		s, err := t.Schema()
		if err != nil {
			return nil, weather.ErrBadParameter.Withf("schema for %q: %v", t.Name(), err)
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool is nil, or has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		if t == nil {
			return weather.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return weather.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return weather.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Run executes a tool by name with the given input.
// The input should be json.RawMessage or nil.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input any) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, weather.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Convert input to json.RawMessage
	var rawInput json.RawMessage
	if input != nil {
		switch v := input.(type) {
		case json.RawMessage:
			rawInput = v
		case []byte:
			rawInput = json.RawMessage(v)
		default:
			data, err := json.Marshal(input)
			if err != nil {
				return nil, weather.ErrBadParameter.Withf("failed to marshal input: %v", err)
			}
			rawInput = json.RawMessage(data)
		}
	}

	// Validate input against schema if provided. A missing input is
	// validated as an empty object, so required properties are enforced.
	s, err := tool.Schema()
	if err != nil {
		return nil, weather.ErrBadParameter.Withf("schema generation failed: %v", err)
	} else if s != nil {
		mapInput := map[string]any{}
		if len(rawInput) > 0 && string(rawInput) != "null" {
			if err := json.Unmarshal(rawInput, &mapInput); err != nil {
				return nil, weather.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
			}
		}
		resolved, err := s.Resolve(nil)
		if err != nil {
			return nil, weather.ErrBadParameter.Withf("schema resolution failed: %v", err)
		}
		if err := resolved.Validate(mapInput); err != nil {
			return nil, weather.ErrBadParameter.Withf("input validation failed: %v", err)
		}
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, rawInput)
}

// Feedback returns a human-readable description of a tool call, including
// the tool name and its input
func (tk *Toolkit) Feedback(call schema.ToolCall) string {
	if len(call.Input) > 0 {
		return call.Name + " " + string(call.Input)
	}
	return call.Name
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	names := make([]string, 0, len(tk.tools))
	for _, t := range tk.Tools() {
		names = append(names, t.Name())
	}
	return server.Stringify(names)
}
