// Package parser defines the contract between source-format parsers and the
// grid model, plus a registry mapping format names to parsers. A parser
// turns source-format data into a validated system; since the only way to
// build one is through the model's validating constructors, anything a
// parser returns already satisfies the model invariants.
package parser

import (
	"io"

	"busbar/grid"
)

// Parser converts source-format data into a validated system
type Parser interface {
	// Format returns the source-format name the parser handles
	Format() string
	// Parse reads source-format data and builds a system
	Parse(r io.Reader) (*grid.System, error)
}
