package main

////////////////////////////////////////////////////////////////////////////////
// TYPES

type PersonaCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run prints the persona in use as YAML, which can be edited and passed
// back with --config
func (*PersonaCmd) Run(globals *Globals) error {
	return globals.config.Persona.Write(globals.term)
}
