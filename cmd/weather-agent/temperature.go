package main

import (
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Negative coordinates follow "--", for example: temperature -- -33.87 151.21
type TemperatureCmd struct {
	Latitude  float64 `arg:"" help:"Latitude in decimal degrees"`
	Longitude float64 `arg:"" help:"Longitude in decimal degrees"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *TemperatureCmd) Run(globals *Globals) (err error) {
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "TemperatureCommand",
		attribute.Float64("latitude", cmd.Latitude),
		attribute.Float64("longitude", cmd.Longitude),
	)
	defer func() { endSpan(err) }()

	client, err := globals.openmeteoClient()
	if err != nil {
		return err
	}

	// The tool always returns text, which is either the temperature or
	// the reason it could not be read
	tool := openmeteo.NewTemperatureTool(client, globals.log)
	_, err = fmt.Fprintln(globals.term, tool.Lookup(parent, cmd.Latitude, cmd.Longitude))
	return err
}
