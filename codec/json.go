package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"busbar/grid"
)

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a system from JSON
func (c *JSONCodec) Parse(r io.Reader) (*grid.System, error) {
	var rec SystemRecord
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return systemFromRecord(rec)
}

// Export exports a system to JSON
func (c *JSONCodec) Export(system *grid.System, w io.Writer) error {
	rec, err := recordFromSystem(system)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
