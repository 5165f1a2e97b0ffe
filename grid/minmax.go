package grid

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MinMax is an ordered numeric range. The invariant min <= max holds for
// every instance; construction and decoding both enforce it.
type MinMax struct {
	min float64
	max float64
}

// NewMinMax creates a range, rejecting min > max
func NewMinMax(min, max float64) (MinMax, error) {
	if min > max {
		return MinMax{}, rangeViolation("MinMax", "min", min, max)
	}
	return MinMax{min: min, max: max}, nil
}

// Min returns the lower bound
func (m MinMax) Min() float64 {
	return m.min
}

// Max returns the upper bound
func (m MinMax) Max() float64 {
	return m.max
}

// Contains reports whether v lies within the range, bounds included
func (m MinMax) Contains(v float64) bool {
	return v >= m.min && v <= m.max
}

func (m MinMax) String() string {
	return fmt.Sprintf("[%g, %g]", m.min, m.max)
}

// validate re-checks the ordering invariant for ranges reachable through
// in-package struct literals
func (m MinMax) validate(component, field string) error {
	if m.min > m.max {
		return rangeViolation(component, field, m.min, m.max)
	}
	return nil
}

// minMaxWire is the canonical two-key wire form of a range
type minMaxWire struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// MarshalJSON encodes the range as {"min": ..., "max": ...}
func (m MinMax) MarshalJSON() ([]byte, error) {
	return json.Marshal(minMaxWire{Min: m.min, Max: m.max})
}

// UnmarshalJSON decodes and re-validates, so an inverted range can never
// enter the model through deserialization
func (m *MinMax) UnmarshalJSON(data []byte) error {
	var wire minMaxWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("failed to decode range: %w", err)
	}
	mm, err := NewMinMax(wire.Min, wire.Max)
	if err != nil {
		return err
	}
	*m = mm
	return nil
}

// MarshalYAML encodes the range as a two-key mapping
func (m MinMax) MarshalYAML() (any, error) {
	return minMaxWire{Min: m.min, Max: m.max}, nil
}

// UnmarshalYAML decodes and re-validates the range
func (m *MinMax) UnmarshalYAML(value *yaml.Node) error {
	var wire minMaxWire
	if err := value.Decode(&wire); err != nil {
		return fmt.Errorf("failed to decode range: %w", err)
	}
	mm, err := NewMinMax(wire.Min, wire.Max)
	if err != nil {
		return err
	}
	*m = mm
	return nil
}
