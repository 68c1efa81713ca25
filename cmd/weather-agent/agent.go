package main

import (
	"context"

	// Packages
	weather "github.com/mutablelogic/go-weather"
	agent "github.com/mutablelogic/go-weather/pkg/agent"
	openmeteo "github.com/mutablelogic/go-weather/pkg/openmeteo"
	opt "github.com/mutablelogic/go-weather/pkg/opt"
	ollama "github.com/mutablelogic/go-weather/pkg/provider/ollama"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	tool "github.com/mutablelogic/go-weather/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// ollamaClient returns a client for the configured Ollama host
func (g *Globals) ollamaClient() (*ollama.Client, error) {
	if err := g.config.Validate(); err != nil {
		return nil, err
	}
	return ollama.New(g.config.OllamaHost, g.clientOpts()...)
}

// openmeteoClient returns a client for the configured Open-Meteo endpoint
func (g *Globals) openmeteoClient() (*openmeteo.Client, error) {
	return openmeteo.New(g.config.OpenMeteoURL, g.clientOpts()...)
}

// toolkit returns the tools offered to the model
func (g *Globals) toolkit() (*tool.Toolkit, error) {
	tools, err := openmeteo.NewTools(g.config.OpenMeteoURL, g.clientOpts()...)
	if err != nil {
		return nil, err
	}
	return tool.NewToolkit(tools...)
}

// newAgent returns an agent for the configured model. The system prompt
// replaces the persona instructions when not empty.
func (g *Globals) newAgent(ctx context.Context, system string) (*agent.Agent, error) {
	client, err := g.ollamaClient()
	if err != nil {
		return nil, err
	}

	// Check the model exists, and warn when it can't call tools
	model, err := client.GetModel(ctx, g.config.OllamaModel)
	if err != nil {
		return nil, err
	} else if !ollama.SupportsTools(*model) {
		g.log.Warn().Str("model", model.Name).Msg("model does not report tool support")
	}

	toolkit, err := g.toolkit()
	if err != nil {
		return nil, err
	}

	// Persona
	persona := g.config.Persona
	if system == "" {
		system = persona.Instructions
	}
	generatorOpts := []opt.Opt{}
	if persona.Temperature != nil {
		generatorOpts = append(generatorOpts, ollama.WithTemperature(*persona.Temperature))
	}
	if persona.KeepAlive > 0 {
		generatorOpts = append(generatorOpts, ollama.WithKeepAlive(persona.KeepAlive))
	}

	return agent.New(client, *model,
		agent.WithToolkit(toolkit),
		agent.WithSystemPrompt(system),
		agent.WithMaxIterations(persona.MaxIterations),
		agent.WithLogger(g.log),
		agent.WithTracer(g.tracer),
		agent.WithGeneratorOpts(generatorOpts...),
	)
}

// ask runs a single turn, streaming the response to the terminal unless
// nostream is set, in which case the complete reply is rendered
func (g *Globals) ask(ctx context.Context, a *agent.Agent, text string, nostream bool) (*schema.Message, error) {
	var fn opt.StreamFn
	if !nostream {
		fn = g.term.Stream
	}
	response, err := a.Ask(ctx, text, fn)
	if fn != nil {
		g.term.EndStream()
	}
	if err != nil {
		return response, err
	}
	if nostream {
		if err := g.term.Reply(response.Text()); err != nil {
			return response, err
		}
	}
	if response.Result == schema.ResultMaxTokens {
		g.log.Warn().Err(weather.ErrMaxTokens).Str("model", a.Model().Name).Msg("reply truncated")
	}
	return response, nil
}
