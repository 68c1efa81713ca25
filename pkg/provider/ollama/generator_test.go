package ollama

import (
	"encoding/json"
	"testing"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS - generateRequestFromOpts

func Test_generateRequest_001(t *testing.T) {
	// Test minimal request with a single user message
	assert := assert.New(t)

	msg := &schema.Message{Role: "user", Content: []schema.ContentBlock{{Text: strPtr("Hello")}}}
	conversation := schema.Conversation{msg}
	o, err := opt.Apply()
	assert.NoError(err)

	req, err := generateRequestFromOpts("llama3.2", &conversation, o)
	assert.NoError(err)
	assert.Equal("llama3.2", req.Model)
	assert.Len(req.Messages, 1)
	assert.Equal("user", req.Messages[0].Role)
	assert.Equal("Hello", req.Messages[0].Content)
	assert.Nil(req.Options)
	assert.Nil(req.Tools)
	assert.Empty(req.KeepAlive)
	assert.False(req.Stream)

	// stream=false must be sent, since the server streams by default
	data, err := json.Marshal(req)
	assert.NoError(err)
	assert.Contains(string(data), `"stream":false`)
}

func Test_generateRequest_002(t *testing.T) {
	// Test system prompt is prepended as a system role message
	assert := assert.New(t)

	msg := &schema.Message{Role: "user", Content: []schema.ContentBlock{{Text: strPtr("Hi")}}}
	conversation := schema.Conversation{msg}
	o, err := opt.Apply(WithSystemPrompt("You are a weather forecast assistant."))
	assert.NoError(err)

	req, err := generateRequestFromOpts("llama3.2", &conversation, o)
	assert.NoError(err)
	assert.Len(req.Messages, 2)
	assert.Equal("system", req.Messages[0].Role)
	assert.Equal("You are a weather forecast assistant.", req.Messages[0].Content)
	assert.Equal("user", req.Messages[1].Role)
}

func Test_generateRequest_003(t *testing.T) {
	// Test model options and keep-alive
	assert := assert.New(t)

	msg := &schema.Message{Role: "user", Content: []schema.ContentBlock{{Text: strPtr("Hi")}}}
	conversation := schema.Conversation{msg}
	o, err := opt.Apply(
		WithTemperature(0.2),
		WithTopP(0.9),
		WithTopK(40),
		WithSeed(7),
		WithMaxTokens(256),
		WithKeepAlive(10*time.Minute),
		opt.WithStream(func(string, string) {}),
	)
	assert.NoError(err)

	req, err := generateRequestFromOpts("llama3.2", &conversation, o)
	assert.NoError(err)
	assert.Equal(0.2, req.Options[optionTemperature])
	assert.Equal(0.9, req.Options[optionTopP])
	assert.Equal(uint(40), req.Options[optionTopK])
	assert.Equal(uint(7), req.Options[optionSeed])
	assert.Equal(uint(256), req.Options[optionNumPredict])
	assert.Equal("10m0s", req.KeepAlive)
	assert.True(req.Stream)
}

func Test_generateRequest_004(t *testing.T) {
	// Test the toolkit is offered as function tools
	assert := assert.New(t)

	tools, err := openmeteo.NewTools("")
	assert.NoError(err)
	tk, err := tool.NewToolkit(tools...)
	assert.NoError(err)

	msg := &schema.Message{Role: "user", Content: []schema.ContentBlock{{Text: strPtr("Hi")}}}
	conversation := schema.Conversation{msg}
	o, err := opt.Apply(tool.WithToolkit(tk))
	assert.NoError(err)

	req, err := generateRequestFromOpts("llama3.2", &conversation, o)
	assert.NoError(err)
	if assert.Len(req.Tools, 1) {
		assert.Equal("function", req.Tools[0].Type)
		assert.Equal(openmeteo.TemperatureToolName, req.Tools[0].Function.Name)
		assert.Equal(openmeteo.TemperatureToolDescription, req.Tools[0].Function.Description)
		if assert.NotNil(req.Tools[0].Function.Parameters) {
			assert.Contains(req.Tools[0].Function.Parameters.Properties, "latitude")
			assert.Contains(req.Tools[0].Function.Parameters.Properties, "longitude")
		}
	}
}

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS - options

func Test_opt_001(t *testing.T) {
	tests := []struct {
		name string
		opt  opt.Opt
	}{
		{"temperature_low", WithTemperature(-0.1)},
		{"temperature_high", WithTemperature(2.1)},
		{"top_p", WithTopP(1.5)},
		{"top_k", WithTopK(0)},
		{"max_tokens", WithMaxTokens(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := opt.Apply(tt.opt)
			assert.ErrorIs(t, err, weather.ErrBadParameter)
		})
	}
}
