package main

import (
	"fmt"

	// Packages
	version "github.com/mutablelogic/go-weather/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type VersionCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (*VersionCmd) Run(globals *Globals) error {
	_, err := fmt.Fprintln(globals.term, string(version.JSON(globals.name)))
	return err
}
