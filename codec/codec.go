// Package codec implements the canonical serialization of a grid system:
// a versioned list of component records with scalar and nested-range fields.
// Quantities flatten to their canonical magnitudes (megawatts, percent) and
// bus/area references serialize as component names. Decoding rebuilds every
// component through its validating constructor, so nothing invalid can enter
// a system from the wire.
package codec

import (
	"io"

	"busbar/grid"
)

// Importer reads a serialized system from a source format
type Importer interface {
	Parse(r io.Reader) (*grid.System, error)
	Format() string
}

// Exporter writes a system to a target format
type Exporter interface {
	Export(system *grid.System, w io.Writer) error
	Format() string
}
