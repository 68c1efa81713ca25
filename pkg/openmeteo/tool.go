package openmeteo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
	zerolog "github.com/rs/zerolog"
	log "github.com/rs/zerolog/log"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// TemperatureTool looks up the current temperature at a location. It never
// returns an error: every outcome is a string for the model to read.
type TemperatureTool struct {
	client *Client
	log    zerolog.Logger
}

// TemperatureRequest defines the input for the temperature lookup
type TemperatureRequest struct {
	Latitude  float64 `json:"latitude" jsonschema:"Latitude of the location in decimal degrees"`
	Longitude float64 `json:"longitude" jsonschema:"Longitude of the location in decimal degrees"`
}

var _ tool.Tool = (*TemperatureTool)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	TemperatureToolName        = "get_temperature"
	TemperatureToolDescription = "Get the temperature in Celsius given the latitude and longitude as 2 decimal values at 2m above sea level"
)

// Messages returned in place of a temperature
const (
	MessageStatusCode    = "The open-meteo server responded with status code %d"
	MessageNoForecast    = "Could not get the current forecast"
	MessageNoTemperature = "Could not get the current forecast for the parameter " + VarTemperature2m
	MessageUnknownError  = "An error occurred while requesting the weather forecast to open-meteo"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns the weather tools for use with a model, logging to the
// global logger
func NewTools(endpoint string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	client, err := New(endpoint, opts...)
	if err != nil {
		return nil, err
	}
	return []tool.Tool{
		NewTemperatureTool(client, log.Logger),
	}, nil
}

// NewTemperatureTool returns the temperature lookup tool for a client
func NewTemperatureTool(client *Client, logger zerolog.Logger) *TemperatureTool {
	return &TemperatureTool{
		client: client,
		log:    logger,
	}
}

///////////////////////////////////////////////////////////////////////////////
// TOOL

func (*TemperatureTool) Name() string {
	return TemperatureToolName
}

func (*TemperatureTool) Description() string {
	return TemperatureToolDescription
}

// Return the JSON schema for the tool input. Coordinates are not range
// checked; the service decides what to do with them.
func (*TemperatureTool) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[TemperatureRequest](nil)
}

// Run the tool with the given input, always returning a string
func (t *TemperatureTool) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req TemperatureRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			t.log.Error().Err(err).Str("tool", TemperatureToolName).Msg("invalid input")
			return MessageUnknownError, nil
		}
	}
	return t.Lookup(ctx, req.Latitude, req.Longitude), nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Lookup returns the current temperature at a location as a bare number
// such as "-3.3", or a message describing why it could not be read
func (t *TemperatureTool) Lookup(ctx context.Context, latitude, longitude float64) (result string) {
	t.log.Info().Msgf("Checking with open-meteo the temperature at %s %s", formatFloat(latitude), formatFloat(longitude))

	// Failures of any kind end up as the generic message
	defer func() {
		if r := recover(); r != nil {
			t.log.Error().Interface("panic", r).Msg("open-meteo lookup")
			result = MessageUnknownError
		}
	}()

	// Request -> Response
	forecast, err := t.client.CurrentTemperature(ctx, latitude, longitude)
	if code := statusCode(err); code != 0 {
		t.log.Warn().Err(err).Int("status", code).Msg("open-meteo lookup")
		return fmt.Sprintf(MessageStatusCode, code)
	} else if err != nil {
		t.log.Error().Err(err).Msg("open-meteo lookup")
		return MessageUnknownError
	}

	// A temperature of zero is a reading, not a missing value
	switch {
	case forecast.Current == nil:
		return MessageNoForecast
	case forecast.Current.Temperature2m == nil:
		return MessageNoTemperature
	default:
		return formatFloat(*forecast.Current.Temperature2m)
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// statusCode returns the status the server responded with, or zero if the
// error is not a status error
func statusCode(err error) int {
	var httpErr httpresponse.Err
	var errResponse httpresponse.ErrResponse
	switch {
	case errors.As(err, &httpErr):
		return int(httpErr)
	case errors.As(err, &errResponse):
		return errResponse.Code
	default:
		return 0
	}
}
