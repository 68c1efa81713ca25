package ollama

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	weather "github.com/mutablelogic/go-weather"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// List all models which have been pulled to the Ollama server
func (ollama *Client) ListModels(ctx context.Context) ([]schema.Model, error) {
	// Send the request
	var response listModelsResponse
	if err := ollama.DoWithContext(ctx, nil, &response, client.OptPath("tags")); err != nil {
		return nil, err
	}

	result := make([]schema.Model, len(response.Models))
	for i, m := range response.Models {
		result[i] = m.toSchema()
	}

	// Return models
	return result, nil
}

// GetModel returns the model with the given name, or ErrNotFound
func (ollama *Client) GetModel(ctx context.Context, name string) (*schema.Model, error) {
	if name == "" {
		return nil, weather.ErrBadParameter.With("model name is required")
	}

	// Request
	req, err := client.NewJSONRequest(map[string]string{"model": name})
	if err != nil {
		return nil, err
	}

	// Response
	var response model
	if err := ollama.DoWithContext(ctx, req, &response, client.OptPath("show")); err != nil {
		var httpErr httpresponse.Err
		if errors.As(err, &httpErr) && int(httpErr) == http.StatusNotFound {
			return nil, weather.ErrNotFound.Withf("model %q", name)
		}
		return nil, err
	}

	// The show endpoint doesn't return the name, so set it from the request
	if response.Name == "" {
		response.Name = name
	}
	result := response.toSchema()
	return &result, nil
}

// SupportsTools returns true if the model reports the tools capability.
// Older servers report no capabilities, in which case true is returned.
func SupportsTools(model schema.Model) bool {
	caps, ok := model.Meta["capabilities"].([]string)
	if !ok || len(caps) == 0 {
		return true
	}
	return slices.Contains(caps, capabilityTools)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// toSchema converts an API model response to schema.Model
func (m model) toSchema() schema.Model {
	result := schema.Model{
		Name:        m.Name,
		Description: strings.TrimSpace(m.Details.Family + " " + m.Details.ParameterSize),
		Created:     m.ModifiedAt,
		OwnedBy:     defaultName,
	}
	meta := make(map[string]any)
	if m.Size > 0 {
		meta["size"] = m.Size
	}
	if m.Details.QuantizationLevel != "" {
		meta["quantization"] = m.Details.QuantizationLevel
	}
	if len(m.Caps) > 0 {
		meta["capabilities"] = m.Caps
	}
	if len(meta) > 0 {
		result.Meta = meta
	}
	return result
}
