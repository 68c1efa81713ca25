/*
ollama implements an API client for a locally hosted Ollama server.
https://github.com/ollama/ollama/blob/main/docs/api.md
*/
package ollama

import (
	"net/url"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
}

var _ weather.Client = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	defaultName = "ollama"
	defaultHost = "http://localhost:11434"
	apiPath     = "/api"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client, with an ollama endpoint, which should be something like
// "http://localhost:11434/api". A bare host such as "localhost:11434" or
// "http://localhost:11434" has the scheme and API path added.
func New(endPoint string, opts ...client.ClientOpt) (*Client, error) {
	endpoint, err := Endpoint(endPoint)
	if err != nil {
		return nil, err
	}

	// Create client
	client, err := client.New(append(opts, client.OptEndpoint(endpoint))...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{client}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Return the name of the provider
func (*Client) Name() string {
	return defaultName
}

// Endpoint normalizes an OLLAMA_HOST style value into an API endpoint
func Endpoint(host string) (string, error) {
	host = strings.TrimSpace(host)
	if host == "" {
		host = defaultHost
	}
	if !strings.Contains(host, "://") {
		host = "http://" + host
	}
	u, err := url.Parse(host)
	if err != nil {
		return "", weather.ErrBadParameter.Withf("invalid ollama host %q: %v", host, err)
	} else if u.Host == "" {
		return "", weather.ErrBadParameter.Withf("invalid ollama host %q", host)
	}
	if path := strings.TrimSuffix(u.Path, "/"); path == "" {
		u.Path = apiPath
	} else {
		u.Path = path
	}
	return u.String(), nil
}
