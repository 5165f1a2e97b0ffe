package grid

import "busbar/units"

// DCBranch is the field group shared by DC connections. Endpoints may be
// buses of either variant.
type DCBranch struct {
	Device
	FromBus Bus
	ToBus   Bus

	// ActivePowerFlow is >= 0 when present
	ActivePowerFlow *units.ActivePower

	ActivePowerLimitsFrom   *MinMax
	ActivePowerLimitsTo     *MinMax
	ReactivePowerLimitsFrom *MinMax
	ReactivePowerLimitsTo   *MinMax
}

// validate checks the shared DC fields on behalf of the concrete variant
func (b DCBranch) validate(component string) error {
	if err := b.Device.validate(component); err != nil {
		return err
	}
	if b.FromBus == nil {
		return missingField(component, "from_bus")
	}
	if b.ToBus == nil {
		return missingField(component, "to_bus")
	}
	if err := nonNegativePower(component, "active_power_flow", b.ActivePowerFlow); err != nil {
		return err
	}
	limits := []struct {
		field string
		mm    *MinMax
	}{
		{"active_power_limits_from", b.ActivePowerLimitsFrom},
		{"active_power_limits_to", b.ActivePowerLimitsTo},
		{"reactive_power_limits_from", b.ReactivePowerLimitsFrom},
		{"reactive_power_limits_to", b.ReactivePowerLimitsTo},
	}
	for _, l := range limits {
		if l.mm == nil {
			continue
		}
		if err := l.mm.validate(component, l.field); err != nil {
			return err
		}
	}
	return nil
}

// TModelHVDCLine is a DC transmission line with directional ratings, losses,
// and per-unit electrical parameters. Ratings are quantity-typed; losses and
// the R/L/C parameters are per-unit magnitudes defaulting to zero.
type TModelHVDCLine struct {
	DCBranch

	// RatingUp is the forward rating, >= 0 when present
	RatingUp *units.ActivePower
	// RatingDown is the reverse rating, <= 0 when present
	RatingDown *units.ActivePower

	// Non-negative per-unit parameters, zero when unset
	Losses      float64
	Resistance  float64
	Inductance  float64
	Capacitance float64
}

// NewTModelHVDCLine creates a validated HVDC line
func NewTModelHVDCLine(hvdc TModelHVDCLine) (*TModelHVDCLine, error) {
	hvdc.ensureUUID()
	if err := hvdc.Validate(); err != nil {
		return nil, err
	}
	return &hvdc, nil
}

// Kind identifies the branch variant
func (h *TModelHVDCLine) Kind() BranchKind {
	return KindTModelHVDCLine
}

// Validate checks the shared DC fields, then the ratings and per-unit
// parameters
func (h *TModelHVDCLine) Validate() error {
	if err := h.DCBranch.validate("TModelHVDCLine"); err != nil {
		return err
	}
	if err := nonNegativePower("TModelHVDCLine", "rating_up", h.RatingUp); err != nil {
		return err
	}
	if err := nonPositivePower("TModelHVDCLine", "rating_down", h.RatingDown); err != nil {
		return err
	}
	params := []struct {
		field string
		value float64
	}{
		{"losses", h.Losses},
		{"resistance", h.Resistance},
		{"inductance", h.Inductance},
		{"capacitance", h.Capacitance},
	}
	for _, p := range params {
		if p.value < 0 {
			return signConstraint("TModelHVDCLine", p.field, ">= 0", p.value)
		}
	}
	return nil
}

// TModelHVDCLineExample returns the canonical valid HVDC line. Losses and
// the R/L/C parameters are left unset and default to zero.
func TModelHVDCLineExample() *TModelHVDCLine {
	hvdc, err := NewTModelHVDCLine(TModelHVDCLine{
		DCBranch: DCBranch{
			Device:  Device{Name: "ExampleDCLine"},
			FromBus: DCBusExample(),
			ToBus:   DCBusExample(),
		},
		RatingUp:   ptr(units.MW(100)),
		RatingDown: ptr(units.MW(-80)),
	})
	if err != nil {
		panic(err)
	}
	return hvdc
}
