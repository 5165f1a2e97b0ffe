// Package grid defines the canonical typed model for power-grid network
// components: the branch hierarchy, the topology entities branches refer to,
// and the validation rules that make an instance well-formed.
//
// # Core Types
//
// Device is the identity every component embeds: a required non-empty name
// plus a runtime UUID that never appears on the wire.
//
// Branch is the closed family of connection kinds between two network
// components: Line, MonitoredLine and Transformer2W on the AC side,
// TModelHVDCLine on the DC side, and AreaInterchange as an aggregate
// transfer corridor between areas.
//
// MinMax is an ordered numeric range with the invariant min <= max, used for
// angle and power-flow limits.
//
// System is the aggregate container: an insertion-ordered, name-unique set of
// validated components.
//
// # Validation
//
// Every concrete type is built through a validating constructor and checks,
// in order, required-field presence, per-field sign and range constraints,
// then cross-field invariants. Failures identify the offending field and
// constraint and wrap one of the sentinel errors (ErrMissingField,
// ErrSignConstraint, ErrRangeViolation, ErrDuplicateName) so callers can
// dispatch with errors.Is. There is no partial construction: a constructor
// either returns a valid instance or an error.
//
// # References
//
// Branches hold non-owning references to buses and areas. Those entities are
// created and owned by the surrounding system or parser layer; a branch never
// frees or mutates them.
//
// # Design Principles
//
// - Immutable value objects: fields are set once at construction
// - Fail-fast validation with field-identifying errors
// - No I/O, persistence, or format-specific parsing at this layer
// - Serialization lives in the codec package, keyed by component name
package grid
