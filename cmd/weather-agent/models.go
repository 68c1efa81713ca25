package main

import (
	"encoding/json"
	"fmt"
	"slices"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	schema "github.com/mutablelogic/go-weather/pkg/schema"
	table "github.com/mutablelogic/go-weather/pkg/ui/table"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type ListModelsCmd struct{}

type ListToolsCmd struct{}

type modelTable []schema.Model

type toolTable []schema.ToolDefinition

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*ListModelsCmd) Run(globals *Globals) (err error) {
	parent, endSpan := otel.StartSpan(globals.tracer, globals.ctx, "ListModelsCommand")
	defer func() { endSpan(err) }()

	client, err := globals.ollamaClient()
	if err != nil {
		return err
	}
	models, err := client.ListModels(parent)
	if err != nil {
		return err
	}
	return globals.printTable(modelTable(models))
}

func (*ListToolsCmd) Run(globals *Globals) (err error) {
	toolkit, err := globals.toolkit()
	if err != nil {
		return err
	}
	definitions, err := toolkit.Definitions()
	if err != nil {
		return err
	}

	// Schemas are printed in full with --debug
	if globals.Debug {
		data, err := json.MarshalIndent(definitions, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(globals.term, string(data))
		return err
	}
	return globals.printTable(toolTable(definitions))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func (g *Globals) printTable(data table.Data) (err error) {
	if g.term.IsTerminal() {
		_, err = fmt.Fprintln(g.term, table.Render(data, g.term.Width()))
	} else {
		_, err = fmt.Fprintln(g.term, table.RenderText(data))
	}
	return err
}

////////////////////////////////////////////////////////////////////////////////
// TABLES

func (m modelTable) Header() []string {
	return []string{"NAME", "DESCRIPTION", "QUANTIZATION", "MODIFIED"}
}

func (m modelTable) Len() int {
	return len(m)
}

func (m modelTable) Row(i int) []any {
	return []any{m[i].Name, m[i].Description, m[i].Meta["quantization"], m[i].Created}
}

func (t toolTable) Header() []string {
	return []string{"NAME", "DESCRIPTION", "PARAMETERS"}
}

func (t toolTable) Len() int {
	return len(t)
}

func (t toolTable) Row(i int) []any {
	var parameters []string
	if s := t[i].InputSchema; s != nil {
		for name := range s.Properties {
			parameters = append(parameters, name)
		}
		slices.Sort(parameters)
	}
	return []any{t[i].Name, table.Truncate(t[i].Description, 60), parameters}
}
