/*
openmeteo implements an API client for the Open-Meteo forecast API
https://open-meteo.com/en/docs
*/
package openmeteo

import (
	"context"
	"net/http"
	"strings"
	"sync"

	// Packages
	client "github.com/mutablelogic/go-client"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

// status records the status of the last response received for a request
type status struct {
	sync.Mutex
	http.RoundTripper
	code int
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// The public forecast endpoint, which requires no API key
	DefaultEndpoint = "https://api.open-meteo.com/v1"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. When endpoint is empty, the public endpoint is used.
func New(endpoint string, opts ...client.ClientOpt) (*Client, error) {
	if endpoint = strings.TrimSpace(endpoint); endpoint == "" {
		endpoint = DefaultEndpoint
	}

	// Create client
	opts = append(opts, client.OptEndpoint(endpoint))
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current conditions at a location. A non-success
// HTTP status is returned as an httpresponse.Err carrying the status code
// the server sent. A success response which cannot be read is returned as
// weather.ErrUnexpectedResponse.
func (c *Client) Current(ctx context.Context, req CurrentRequest) (*Forecast, error) {
	if len(req.Current) == 0 {
		return nil, weather.ErrBadParameter.With("at least one current variable is required")
	}

	// Request -> Response
	var response Forecast
	rec := new(status)
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("forecast"), client.OptQuery(req.Values()), client.OptReqTransport(rec.wrap)); err != nil {
		switch code := rec.Code(); {
		case code == 0:
			return nil, err
		case code < 200 || code > 299:
			return nil, httpresponse.Err(code).With(err)
		default:
			return nil, weather.ErrUnexpectedResponse.With(err)
		}
	}

	// Return success
	return &response, nil
}

// CurrentTemperature returns the forecast with the current temperature
// at 2m above ground level
func (c *Client) CurrentTemperature(ctx context.Context, latitude, longitude float64) (*Forecast, error) {
	return c.Current(ctx, CurrentRequest{
		Latitude:  latitude,
		Longitude: longitude,
		Current:   []string{VarTemperature2m},
	})
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (s *status) wrap(parent http.RoundTripper) http.RoundTripper {
	s.RoundTripper = parent
	return s
}

func (s *status) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := s.RoundTripper.RoundTrip(req)
	if err == nil {
		s.Lock()
		s.code = resp.StatusCode
		s.Unlock()
	}
	return resp, err
}

// Code returns the status of the last response, or zero if no response
// was received
func (s *status) Code() int {
	s.Lock()
	defer s.Unlock()
	return s.code
}
