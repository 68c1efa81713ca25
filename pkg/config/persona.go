package config

import (
	"io"
	"os"
	"strings"
	"time"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Persona describes the assistant: what it is, and the instructions sent
// to the model ahead of every turn
type Persona struct {
	Description   string        `yaml:"description"`
	Instructions  string        `yaml:"instructions"`
	MaxIterations uint          `yaml:"max_iterations,omitempty"`
	KeepAlive     time.Duration `yaml:"keep_alive,omitempty"`
	Temperature   *float64      `yaml:"temperature,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultDescription  = "Weather forecast assistant that can chat and use tools."
	DefaultInstructions = "You are a weather forecast assistant. " +
		"When a user submits the latitude and longitude you can use the plugin function get_temperature to get the current temperature in Cº. " +
		"For example: temperature at longitude=70.504719 and latitude=25.053606? " +
		"you can call the function like so get_temperature(25.053606, 70.504719)"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// DefaultPersona returns the weather forecast assistant
func DefaultPersona() Persona {
	return Persona{
		Description:  DefaultDescription,
		Instructions: DefaultInstructions,
	}
}

// LoadPersona reads a persona from a YAML file. An empty path returns the
// default persona. Fields missing from the file keep their defaults.
func LoadPersona(path string) (Persona, error) {
	if path == "" {
		return DefaultPersona(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Persona{}, err
	}
	defer f.Close()
	return ReadPersona(f)
}

// ReadPersona decodes a persona from YAML. Unknown fields are an error.
func ReadPersona(r io.Reader) (Persona, error) {
	persona := DefaultPersona()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&persona); err != nil && err != io.EOF {
		return Persona{}, weather.ErrBadParameter.Withf("persona: %v", err)
	}

	// Blank values fall back to the defaults
	persona.Description = strings.TrimSpace(persona.Description)
	persona.Instructions = strings.TrimSpace(persona.Instructions)
	if persona.Description == "" {
		persona.Description = DefaultDescription
	}
	if persona.Instructions == "" {
		persona.Instructions = DefaultInstructions
	}

	// Return success
	return persona, persona.Validate()
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Validate returns an error if a value is out of range
func (p Persona) Validate() error {
	if p.Temperature != nil && (*p.Temperature < 0 || *p.Temperature > 2) {
		return weather.ErrBadParameter.With("persona: temperature must be between 0.0 and 2.0")
	}
	if p.KeepAlive < 0 {
		return weather.ErrBadParameter.With("persona: keep_alive cannot be negative")
	}
	return nil
}

// Write encodes the persona as YAML
func (p Persona) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
