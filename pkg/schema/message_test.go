package schema_test

import (
	"encoding/json"
	"errors"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	assert "github.com/stretchr/testify/assert"
	require "github.com/stretchr/testify/require"
)

func Test_message_001(t *testing.T) {
	assert := assert.New(t)

	message, err := schema.NewMessage(schema.RoleUser, "Hello")
	require.NoError(t, err)
	assert.Equal(schema.RoleUser, message.Role)
	assert.Equal("Hello", message.Text())
	assert.Len(message.Content, 1)
	assert.Empty(message.ToolCalls())
	assert.Empty(message.ToolResults())

	// An empty message still has one (empty) text block
	message, err = schema.NewMessage(schema.RoleUser, "")
	require.NoError(t, err)
	assert.Len(message.Content, 1)
	assert.Equal("", message.Text())
}

func Test_message_002(t *testing.T) {
	assert := assert.New(t)

	message, err := schema.NewMessage(schema.RoleTool, "", schema.WithToolResult(
		schema.NewToolResult("1", "get_temperature", "-3.3"),
		schema.NewToolError("2", "get_temperature", errors.New("failed")),
	))
	require.NoError(t, err)

	// Empty text is dropped when other blocks are present
	if results := message.ToolResults(); assert.Len(message.Content, 2) && assert.Len(results, 2) {
		assert.Equal("1", results[0].ID)
		assert.Equal("-3.3", results[0].Text())
		assert.False(results[0].IsError)
		assert.Equal("failed", results[1].Text())
		assert.True(results[1].IsError)
	}
}

func Test_message_003(t *testing.T) {
	assert := assert.New(t)

	result := schema.NewToolResult("1", "lookup", map[string]any{"celsius": 21.5})
	if assert.NotNil(result.ToolResult) {
		assert.JSONEq(`{"celsius":21.5}`, string(result.ToolResult.Content))
		assert.Equal(`{"celsius":21.5}`, result.ToolResult.Text())
	}

	// Values which can't be marshalled become errors
	result = schema.NewToolResult("1", "lookup", func() {})
	if assert.NotNil(result.ToolResult) {
		assert.True(result.ToolResult.IsError)
	}
}

func Test_message_004(t *testing.T) {
	assert := assert.New(t)
	text := "It is cold"
	message := schema.Message{
		Role: schema.RoleAssistant,
		Content: []schema.ContentBlock{
			{Text: &text},
			{ToolCall: &schema.ToolCall{ID: "1", Name: "get_temperature", Input: json.RawMessage(`{"latitude":1,"longitude":2}`)}},
		},
		Result: schema.ResultToolCall,
	}
	assert.Equal("It is cold", message.Text())
	if calls := message.ToolCalls(); assert.Len(calls, 1) {
		assert.Equal("get_temperature", calls[0].Name)
	}

	// Result type is marshalled as a string
	data, err := json.Marshal(message)
	require.NoError(t, err)
	assert.Contains(string(data), `"result":"tool_call"`)

	var other schema.Message
	require.NoError(t, json.Unmarshal(data, &other))
	assert.Equal(schema.ResultToolCall, other.Result)
	assert.NotEmpty(message.String())
}

func Test_result_001(t *testing.T) {
	tests := []struct {
		result schema.ResultType
		want   string
	}{
		{schema.ResultStop, "stop"},
		{schema.ResultMaxTokens, "max_tokens"},
		{schema.ResultToolCall, "tool_call"},
		{schema.ResultMaxIterations, "max_iterations"},
		{schema.ResultOther, "other"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.String())
		})
	}

	var r schema.ResultType
	assert.Error(t, json.Unmarshal([]byte(`"sideways"`), &r))
	assert.Equal(t, schema.ResultOK, schema.ResultStop)
}
