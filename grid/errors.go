package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the validation taxonomy. Every constructor failure
// wraps exactly one of these, so callers dispatch with errors.Is.
var (
	// ErrMissingField indicates a required field was absent at construction
	ErrMissingField = errors.New("missing required field")

	// ErrSignConstraint indicates a magnitude field violates its required sign
	ErrSignConstraint = errors.New("sign constraint violated")

	// ErrRangeViolation indicates a MinMax range with min greater than max
	ErrRangeViolation = errors.New("range violation")

	// ErrDuplicateName indicates a component name already present in a System
	ErrDuplicateName = errors.New("duplicate component name")
)

// ValidationError identifies the component type, field, and constraint behind
// a construction failure
type ValidationError struct {
	Component  string
	Field      string
	Constraint string
	Err        error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s: %s: %v", e.Component, e.Field, e.Constraint, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// missingField reports a required field absent at construction
func missingField(component, field string) error {
	return &ValidationError{Component: component, Field: field, Constraint: "required", Err: ErrMissingField}
}

// signConstraint reports a field whose value violates its required sign
func signConstraint(component, field, constraint string, value float64) error {
	return &ValidationError{
		Component:  component,
		Field:      field,
		Constraint: fmt.Sprintf("must be %s, got %g", constraint, value),
		Err:        ErrSignConstraint,
	}
}

// rangeViolation reports a range whose min exceeds its max
func rangeViolation(component, field string, min, max float64) error {
	return &ValidationError{
		Component:  component,
		Field:      field,
		Constraint: fmt.Sprintf("min %g must not exceed max %g", min, max),
		Err:        ErrRangeViolation,
	}
}
