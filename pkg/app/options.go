package app

import (
	"github.com/retailmesh/storemind/pkg/utils/cliflag"
)

// CliOptions abstracts configuration options for reading parameters from
// the command line.
type CliOptions interface {
	// Flags returns flags of the application grouped into named sections.
	Flags() cliflag.NamedFlagSets
	// Validate checks all option values and returns the collected errors.
	Validate() []error
}

// CompleteableOptions abstracts options which can fill in defaults
// derived from other fields before validation.
type CompleteableOptions interface {
	Complete() error
}

// PrintableOptions abstracts options which can be printed for startup
// diagnostics.
type PrintableOptions interface {
	String() string
}
