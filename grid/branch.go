package grid

import (
	"fmt"

	"busbar/units"
)

// BranchKind identifies a concrete branch variant. The set is closed:
// BranchExample dispatches exhaustively over it.
type BranchKind string

const (
	KindLine            BranchKind = "line"
	KindMonitoredLine   BranchKind = "monitored_line"
	KindTransformer2W   BranchKind = "transformer_2w"
	KindTModelHVDCLine  BranchKind = "t_model_hvdc_line"
	KindAreaInterchange BranchKind = "area_interchange"
)

// Branch is a connection between two network components
type Branch interface {
	Component
	Kind() BranchKind
}

// nonNegativePower checks an optional quantity for the >= 0 constraint,
// normalizing through megawatts
func nonNegativePower(component, field string, p *units.ActivePower) error {
	if p != nil && p.Megawatts() < 0 {
		return signConstraint(component, field, ">= 0", p.Megawatts())
	}
	return nil
}

// nonPositivePower checks an optional quantity for the <= 0 constraint
func nonPositivePower(component, field string, p *units.ActivePower) error {
	if p != nil && p.Megawatts() > 0 {
		return signConstraint(component, field, "<= 0", p.Megawatts())
	}
	return nil
}

// ACBranch is the field group shared by every AC connection. FromBus and
// ToBus are required borrowed references; the remaining fields are optional.
type ACBranch struct {
	Device
	FromBus *ACBus
	ToBus   *ACBus

	// Electrical parameters, unconstrained
	R            *float64
	X            *float64
	PrimaryShunt *float64

	// Flow magnitudes, each >= 0 when present
	Rating            *units.ActivePower
	ActivePowerFlow   *units.ActivePower
	ReactivePowerFlow *units.ActivePower

	AngleLimits *MinMax
}

// validate checks the shared AC fields on behalf of the concrete variant
func (b ACBranch) validate(component string) error {
	if err := b.Device.validate(component); err != nil {
		return err
	}
	if b.FromBus == nil {
		return missingField(component, "from_bus")
	}
	if b.ToBus == nil {
		return missingField(component, "to_bus")
	}
	if err := nonNegativePower(component, "rating", b.Rating); err != nil {
		return err
	}
	if err := nonNegativePower(component, "active_power_flow", b.ActivePowerFlow); err != nil {
		return err
	}
	if err := nonNegativePower(component, "reactive_power_flow", b.ReactivePowerFlow); err != nil {
		return err
	}
	if b.AngleLimits != nil {
		if err := b.AngleLimits.validate(component, "angle_limits"); err != nil {
			return err
		}
	}
	return nil
}

// Line is a plain AC transmission line
type Line struct {
	ACBranch
}

// NewLine creates a validated transmission line
func NewLine(line Line) (*Line, error) {
	line.ensureUUID()
	if err := line.Validate(); err != nil {
		return nil, err
	}
	return &line, nil
}

// Kind identifies the branch variant
func (l *Line) Kind() BranchKind {
	return KindLine
}

// Validate checks the line fields
func (l *Line) Validate() error {
	return l.ACBranch.validate("Line")
}

// LineExample returns the canonical valid line
func LineExample() *Line {
	line, err := NewLine(Line{ACBranch: ACBranch{
		Device:  Device{Name: "ExampleLine"},
		FromBus: ACBusExample(),
		ToBus:   ACBusExample(),
		Rating:  ptr(units.MW(100)),
	}})
	if err != nil {
		panic(err)
	}
	return line
}

// Transformer2W is a two-winding transformer
type Transformer2W struct {
	ACBranch
}

// NewTransformer2W creates a validated two-winding transformer
func NewTransformer2W(tr Transformer2W) (*Transformer2W, error) {
	tr.ensureUUID()
	if err := tr.Validate(); err != nil {
		return nil, err
	}
	return &tr, nil
}

// Kind identifies the branch variant
func (t *Transformer2W) Kind() BranchKind {
	return KindTransformer2W
}

// Validate checks the transformer fields
func (t *Transformer2W) Validate() error {
	return t.ACBranch.validate("Transformer2W")
}

// Transformer2WExample returns the canonical valid transformer
func Transformer2WExample() *Transformer2W {
	tr, err := NewTransformer2W(Transformer2W{ACBranch: ACBranch{
		Device:  Device{Name: "Example2WTransformer"},
		FromBus: ACBusExample(),
		ToBus:   ACBusExample(),
		Rating:  ptr(units.MW(100)),
	}})
	if err != nil {
		panic(err)
	}
	return tr
}

// MonitoredLine is an AC line with directional ratings and loss tracking
type MonitoredLine struct {
	ACBranch

	// RatingUp is the forward rating, >= 0 when present
	RatingUp *units.ActivePower
	// RatingDown is the reverse rating, <= 0 when present
	RatingDown *units.ActivePower
	// Losses is the power lost on the line
	Losses *units.Percentage
}

// NewMonitoredLine creates a validated monitored line
func NewMonitoredLine(ml MonitoredLine) (*MonitoredLine, error) {
	ml.ensureUUID()
	if err := ml.Validate(); err != nil {
		return nil, err
	}
	return &ml, nil
}

// Kind identifies the branch variant
func (m *MonitoredLine) Kind() BranchKind {
	return KindMonitoredLine
}

// Validate checks the shared AC fields, then the directional ratings
func (m *MonitoredLine) Validate() error {
	if err := m.ACBranch.validate("MonitoredLine"); err != nil {
		return err
	}
	if err := nonNegativePower("MonitoredLine", "rating_up", m.RatingUp); err != nil {
		return err
	}
	if err := nonPositivePower("MonitoredLine", "rating_down", m.RatingDown); err != nil {
		return err
	}
	return nil
}

// MonitoredLineExample returns the canonical valid monitored line
func MonitoredLineExample() *MonitoredLine {
	ml, err := NewMonitoredLine(MonitoredLine{
		ACBranch: ACBranch{
			Device:  Device{Name: "ExampleMonitoredLine"},
			FromBus: ACBusExample(),
			ToBus:   ACBusExample(),
			Rating:  ptr(units.MW(100)),
		},
		RatingUp:   ptr(units.MW(100)),
		RatingDown: ptr(units.MW(-100)),
		Losses:     ptr(units.Pct(10)),
	})
	if err != nil {
		panic(err)
	}
	return ml
}

// BranchExample returns the canonical example for a branch kind. The switch
// is exhaustive over the closed variant set.
func BranchExample(kind BranchKind) (Branch, error) {
	switch kind {
	case KindLine:
		return LineExample(), nil
	case KindMonitoredLine:
		return MonitoredLineExample(), nil
	case KindTransformer2W:
		return Transformer2WExample(), nil
	case KindTModelHVDCLine:
		return TModelHVDCLineExample(), nil
	case KindAreaInterchange:
		return AreaInterchangeExample(), nil
	default:
		return nil, fmt.Errorf("unknown branch kind %q", kind)
	}
}

// BranchKinds returns the closed set of branch kinds in declaration order
func BranchKinds() []BranchKind {
	return []BranchKind{KindLine, KindMonitoredLine, KindTransformer2W, KindTModelHVDCLine, KindAreaInterchange}
}

// ptr returns a pointer to v, for optional literal fields
func ptr[T any](v T) *T {
	return &v
}
