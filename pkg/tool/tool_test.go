package tool_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	weather "github.com/mutablelogic/go-weather"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

type stubTool struct {
	name string
}

func (s *stubTool) Name() string                        { return s.name }
func (s *stubTool) Description() string                 { return "stub" }
func (s *stubTool) Schema() (*jsonschema.Schema, error) { return nil, nil }
func (s *stubTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	return string(input), nil
}

type pointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type sumTool struct{}

func (sumTool) Name() string                        { return "sum" }
func (sumTool) Description() string                 { return "Add two numbers" }
func (sumTool) Schema() (*jsonschema.Schema, error) { return jsonschema.For[pointRequest](nil) }
func (sumTool) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req pointRequest
	if err := json.Unmarshal(input, &req); err != nil {
		return nil, err
	}
	return req.X + req.Y, nil
}

func TestRegister_NormalToolOK(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "my_tool"})
	assert.NoError(err)
	assert.NotNil(tk.Lookup("my_tool"))
	assert.Nil(tk.Lookup("other"))
}

func TestRegister_InvalidName(t *testing.T) {
	assert := assert.New(t)
	_, err := tool.NewToolkit(&stubTool{name: "my tool"})
	assert.ErrorIs(err, weather.ErrBadParameter)

	_, err = tool.NewToolkit(nil)
	assert.ErrorIs(err, weather.ErrBadParameter)
}

func TestRegister_Duplicate(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "a"})
	assert.NoError(err)
	assert.ErrorIs(tk.Register(&stubTool{name: "a"}), weather.ErrConflict)
}

func TestTools_Sorted(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "c"}, &stubTool{name: "a"}, &stubTool{name: "b"})
	assert.NoError(err)
	var names []string
	for _, tool := range tk.Tools() {
		names = append(names, tool.Name())
	}
	assert.Equal([]string{"a", "b", "c"}, names)
	assert.JSONEq(`["a","b","c"]`, tk.String())
}

func TestDefinitions(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(sumTool{})
	assert.NoError(err)
	defs, err := tk.Definitions()
	assert.NoError(err)
	if assert.Len(defs, 1) {
		assert.Equal("sum", defs[0].Name)
		assert.Equal("Add two numbers", defs[0].Description)
		if assert.NotNil(defs[0].InputSchema) {
			assert.Contains(defs[0].InputSchema.Properties, "x")
			assert.Contains(defs[0].InputSchema.Properties, "y")
		}
	}
}

func TestRun_OK(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(sumTool{})
	assert.NoError(err)
	result, err := tk.Run(context.Background(), "sum", json.RawMessage(`{"x":1.5,"y":2}`))
	assert.NoError(err)
	assert.Equal(3.5, result)

	// Marshalled from a map
	result, err = tk.Run(context.Background(), "sum", map[string]any{"x": 1, "y": 1})
	assert.NoError(err)
	assert.Equal(2.0, result)
}

func TestRun_NotFound(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit()
	assert.NoError(err)
	_, err = tk.Run(context.Background(), "missing", nil)
	assert.ErrorIs(err, weather.ErrNotFound)
}

func TestRun_ValidationFailed(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"missing_property", json.RawMessage(`{"x":1}`)},
		{"wrong_type", json.RawMessage(`{"x":"one","y":2}`)},
		{"not_object", json.RawMessage(`[1,2]`)},
		{"nil_input", nil},
	}
	tk, err := tool.NewToolkit(sumTool{})
	if !assert.NoError(t, err) {
		t.FailNow()
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tk.Run(context.Background(), "sum", tt.input)
			assert.ErrorIs(t, err, weather.ErrBadParameter)
		})
	}
}

func TestRun_NoSchema(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(&stubTool{name: "echo"})
	assert.NoError(err)
	result, err := tk.Run(context.Background(), "echo", []byte(`{"a":1}`))
	assert.NoError(err)
	assert.Equal(`{"a":1}`, result)
}

func TestFeedback(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit(sumTool{})
	assert.NoError(err)
	assert.Equal(`sum {"x":1}`, tk.Feedback(schema.ToolCall{Name: "sum", Input: json.RawMessage(`{"x":1}`)}))
	assert.Equal("sum", tk.Feedback(schema.ToolCall{Name: "sum"}))
}

func TestWithToolkit(t *testing.T) {
	assert := assert.New(t)
	tk, err := tool.NewToolkit()
	assert.NoError(err)

	opts, err := opt.Apply(tool.WithToolkit(tk))
	assert.NoError(err)
	assert.Same(tk, tool.ToolkitFrom(opts))

	opts, err = opt.Apply(tool.WithToolkit(nil))
	assert.NoError(err)
	assert.Nil(tool.ToolkitFrom(opts))
}

func TestRun_ToolError(t *testing.T) {
	assert := assert.New(t)
	want := errors.New("failed")
	tk, err := tool.NewToolkit(failTool{want})
	assert.NoError(err)
	_, err = tk.Run(context.Background(), "fail", nil)
	assert.ErrorIs(err, want)
}

type failTool struct{ err error }

func (failTool) Name() string                                       { return "fail" }
func (failTool) Description() string                                { return "" }
func (failTool) Schema() (*jsonschema.Schema, error)                { return nil, nil }
func (f failTool) Run(context.Context, json.RawMessage) (any, error) { return nil, f.err }
