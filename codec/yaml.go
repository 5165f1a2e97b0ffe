package codec

import (
	"fmt"
	"io"

	"busbar/grid"

	"gopkg.in/yaml.v3"
)

// YAMLCodec handles YAML import/export
type YAMLCodec struct{}

// NewYAMLCodec creates a new YAML codec
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{}
}

// Format returns the codec format identifier
func (c *YAMLCodec) Format() string {
	return "yaml"
}

// Parse imports a system from YAML
func (c *YAMLCodec) Parse(r io.Reader) (*grid.System, error) {
	var rec SystemRecord
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&rec); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return systemFromRecord(rec)
}

// Export exports a system to YAML
func (c *YAMLCodec) Export(system *grid.System, w io.Writer) error {
	rec, err := recordFromSystem(system)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	defer encoder.Close()

	if err := encoder.Encode(rec); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return nil
}
