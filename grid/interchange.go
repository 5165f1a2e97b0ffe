package grid

import "busbar/units"

// AreaInterchange is an aggregate transfer corridor between two areas rather
// than a physical line. Both flow bounds are required and straddle zero:
// min_power_flow <= 0 <= max_power_flow.
type AreaInterchange struct {
	Device

	// MaxPowerFlow is the maximum allowed flow, >= 0
	MaxPowerFlow *units.ActivePower
	// MinPowerFlow is the minimum allowed flow, <= 0
	MinPowerFlow *units.ActivePower

	FromArea *Area
	ToArea   *Area
}

// NewAreaInterchange creates a validated area interchange
func NewAreaInterchange(ai AreaInterchange) (*AreaInterchange, error) {
	ai.ensureUUID()
	if err := ai.Validate(); err != nil {
		return nil, err
	}
	return &ai, nil
}

// Kind identifies the branch variant
func (a *AreaInterchange) Kind() BranchKind {
	return KindAreaInterchange
}

// Validate checks presence, the flow signs, then the cross-field ordering
func (a *AreaInterchange) Validate() error {
	if err := a.Device.validate("AreaInterchange"); err != nil {
		return err
	}
	if a.MaxPowerFlow == nil {
		return missingField("AreaInterchange", "max_power_flow")
	}
	if a.MinPowerFlow == nil {
		return missingField("AreaInterchange", "min_power_flow")
	}
	if err := nonNegativePower("AreaInterchange", "max_power_flow", a.MaxPowerFlow); err != nil {
		return err
	}
	if err := nonPositivePower("AreaInterchange", "min_power_flow", a.MinPowerFlow); err != nil {
		return err
	}
	if a.MinPowerFlow.Megawatts() > a.MaxPowerFlow.Megawatts() {
		return rangeViolation("AreaInterchange", "min_power_flow", a.MinPowerFlow.Megawatts(), a.MaxPowerFlow.Megawatts())
	}
	return nil
}

// AreaInterchangeExample returns the canonical valid interchange
func AreaInterchangeExample() *AreaInterchange {
	ai, err := NewAreaInterchange(AreaInterchange{
		Device:       Device{Name: "ExampleAreaInterchange"},
		MaxPowerFlow: ptr(units.MW(100)),
		MinPowerFlow: ptr(units.MW(-100)),
		FromArea:     AreaExample(),
		ToArea:       AreaExample(),
	})
	if err != nil {
		panic(err)
	}
	return ai
}
