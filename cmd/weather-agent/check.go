package main

import (
	"context"
	"fmt"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	weather "github.com/mutablelogic/go-weather"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	ollama "github.com/mutablelogic/go-weather/pkg/provider/ollama"
	errgroup "golang.org/x/sync/errgroup"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type CheckCmd struct {
	Latitude  float64 `name:"latitude" help:"Latitude used to check the weather service" default:"52.52"`
	Longitude float64 `name:"longitude" help:"Longitude used to check the weather service" default:"13.41"`
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run checks the model and the weather service at the same time, reporting
// each as it completes
func (cmd *CheckCmd) Run(globals *Globals) (err error) {
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "CheckCommand")
	defer func() { endSpan(err) }()

	g, ctx := errgroup.WithContext(parent)
	g.Go(func() error {
		return cmd.checkModel(ctx, globals)
	})
	g.Go(func() error {
		return cmd.checkWeather(ctx, globals)
	})
	return g.Wait()
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (cmd *CheckCmd) checkModel(ctx context.Context, globals *Globals) error {
	client, err := globals.ollamaClient()
	if err != nil {
		return err
	}
	model, err := client.GetModel(ctx, globals.config.OllamaModel)
	if err != nil {
		return fmt.Errorf("ollama: %w", err)
	}
	if !ollama.SupportsTools(*model) {
		return weather.ErrNotImplemented.Withf("ollama: model %q does not support tools", model.Name)
	}
	return globals.term.Info("ollama: model %q is available with tools", model.Name)
}

func (cmd *CheckCmd) checkWeather(ctx context.Context, globals *Globals) error {
	client, err := globals.openmeteoClient()
	if err != nil {
		return err
	}
	forecast, err := client.CurrentTemperature(ctx, cmd.Latitude, cmd.Longitude)
	if err != nil {
		return fmt.Errorf("open-meteo: %w", err)
	}
	if forecast.Current == nil || forecast.Current.Temperature2m == nil {
		return weather.ErrNotFound.With("open-meteo: " + openmeteo.MessageNoTemperature)
	}
	return globals.term.Info("open-meteo: %v%s at %v, %v",
		*forecast.Current.Temperature2m, forecast.CurrentUnits[openmeteo.VarTemperature2m], cmd.Latitude, cmd.Longitude,
	)
}
