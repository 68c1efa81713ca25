package main

import (
	"errors"
	"io"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	attribute "go.opentelemetry.io/otel/attribute"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ChatCmd struct {
	NoStream bool   `name:"nostream" help:"Disable streaming"`
	System   string `name:"system" help:"Set the system prompt, replacing the persona instructions"`
}

type AskCmd struct {
	Text     string `arg:"" help:"Question for the agent"`
	NoStream bool   `name:"nostream" help:"Disable streaming"`
	System   string `name:"system" help:"Set the system prompt, replacing the persona instructions"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	chatPrompt = "Ask the agent: "
	chatQuit   = "quit"
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (cmd *ChatCmd) Run(globals *Globals) (err error) {
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "ChatCommand",
		attribute.String("model", globals.config.OllamaModel),
	)
	defer func() { endSpan(err) }()

	a, err := globals.newAgent(parent, cmd.System)
	if err != nil {
		return err
	}
	if description := globals.config.Persona.Description; description != "" {
		globals.term.Info("%s", description)
	}

	// Continue looping until end of input or quit
	for {
		input, err := globals.term.ReadLine(chatPrompt)
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		// Only the exact line ends the chat, and empty input is ignored
		if input == chatQuit {
			return nil
		} else if input = strings.TrimSpace(input); input == "" {
			continue
		}

		// Feed input into the agent
		globals.term.Info("Reading the responses from the agent")
		if _, err := globals.ask(parent, a, input, cmd.NoStream); err != nil {
			if parent.Err() != nil {
				return nil
			}
			globals.term.Error(err)
			continue
		}
		globals.term.Info("Done")
	}
}

func (cmd *AskCmd) Run(globals *Globals) (err error) {
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "AskCommand",
		attribute.String("model", globals.config.OllamaModel),
	)
	defer func() { endSpan(err) }()

	a, err := globals.newAgent(parent, cmd.System)
	if err != nil {
		return err
	}
	_, err = globals.ask(parent, a, cmd.Text, cmd.NoStream)
	return err
}
