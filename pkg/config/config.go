// Package config loads the settings read once at start-up: the Ollama
// host and model, the Open-Meteo endpoint, and the assistant persona.
package config

import (
	"errors"
	"io/fs"
	"strings"

	// Packages
	godotenv "github.com/joho/godotenv"
	weather "github.com/mutablelogic/go-weather"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is the process configuration
type Config struct {
	OllamaHost   string  // Ollama server, for example http://localhost:11434
	OllamaModel  string  // Model name, for example llama3.2
	OpenMeteoURL string  // Open-Meteo endpoint, empty for the public API
	Persona      Persona // Description and instructions for the assistant
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Environment variables
const (
	EnvOllamaHost   = "OLLAMA_HOST"
	EnvOllamaModel  = "OLLAMA_MODEL"
	EnvOpenMeteoURL = "OPENMETEO_URL"
)

const (
	defaultEnvFile = ".env"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// LoadEnv reads environment variables from the given files, or from .env
// in the working directory when none are given. Files which do not exist
// are skipped, and variables already set in the environment are kept.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{defaultEnvFile}
	}
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := godotenv.Load(path); errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return weather.ErrBadParameter.Withf("%s: %v", path, err)
		}
	}

	// Return success
	return nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns an error if a required setting is missing
func (c Config) Validate() error {
	var result error
	if strings.TrimSpace(c.OllamaHost) == "" {
		result = errors.Join(result, weather.ErrBadParameter.Withf("%s is required", EnvOllamaHost))
	}
	if strings.TrimSpace(c.OllamaModel) == "" {
		result = errors.Join(result, weather.ErrBadParameter.Withf("%s is required", EnvOllamaModel))
	}
	if err := c.Persona.Validate(); err != nil {
		result = errors.Join(result, err)
	}
	return result
}
