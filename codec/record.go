package codec

import (
	"fmt"

	"busbar/grid"
	"busbar/units"
)

// formatVersion is the canonical serialization version
const formatVersion = "1.0"

// Topology record kinds; branch records reuse the grid.BranchKind values
const (
	kindACBus = "ac_bus"
	kindDCBus = "dc_bus"
	kindArea  = "area"
)

// ComponentRecord is the wire form of a single component. Optional fields
// are pointers with omitempty: absent means the field was unset, and range
// fields emit the two-key min/max structure only when present.
type ComponentRecord struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`

	// Topology
	Number *int `json:"number,omitempty" yaml:"number,omitempty"`

	// References by component name
	FromBus  string `json:"from_bus,omitempty" yaml:"from_bus,omitempty"`
	ToBus    string `json:"to_bus,omitempty" yaml:"to_bus,omitempty"`
	FromArea string `json:"from_area,omitempty" yaml:"from_area,omitempty"`
	ToArea   string `json:"to_area,omitempty" yaml:"to_area,omitempty"`

	// Electrical parameters
	R            *float64 `json:"r,omitempty" yaml:"r,omitempty"`
	X            *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	PrimaryShunt *float64 `json:"primary_shunt,omitempty" yaml:"primary_shunt,omitempty"`
	Resistance   *float64 `json:"resistance,omitempty" yaml:"resistance,omitempty"`
	Inductance   *float64 `json:"inductance,omitempty" yaml:"inductance,omitempty"`
	Capacitance  *float64 `json:"capacitance,omitempty" yaml:"capacitance,omitempty"`

	// Flow magnitudes in megawatts; losses in percent
	Rating            *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	ActivePowerFlow   *float64 `json:"active_power_flow,omitempty" yaml:"active_power_flow,omitempty"`
	ReactivePowerFlow *float64 `json:"reactive_power_flow,omitempty" yaml:"reactive_power_flow,omitempty"`
	RatingUp          *float64 `json:"rating_up,omitempty" yaml:"rating_up,omitempty"`
	RatingDown        *float64 `json:"rating_down,omitempty" yaml:"rating_down,omitempty"`
	Losses            *float64 `json:"losses,omitempty" yaml:"losses,omitempty"`
	MaxPowerFlow      *float64 `json:"max_power_flow,omitempty" yaml:"max_power_flow,omitempty"`
	MinPowerFlow      *float64 `json:"min_power_flow,omitempty" yaml:"min_power_flow,omitempty"`

	// Ranges
	AngleLimits             *grid.MinMax `json:"angle_limits,omitempty" yaml:"angle_limits,omitempty"`
	ActivePowerLimitsFrom   *grid.MinMax `json:"active_power_limits_from,omitempty" yaml:"active_power_limits_from,omitempty"`
	ActivePowerLimitsTo     *grid.MinMax `json:"active_power_limits_to,omitempty" yaml:"active_power_limits_to,omitempty"`
	ReactivePowerLimitsFrom *grid.MinMax `json:"reactive_power_limits_from,omitempty" yaml:"reactive_power_limits_from,omitempty"`
	ReactivePowerLimitsTo   *grid.MinMax `json:"reactive_power_limits_to,omitempty" yaml:"reactive_power_limits_to,omitempty"`
}

// SystemRecord is the wire form of a complete system
type SystemRecord struct {
	Version    string            `json:"version" yaml:"version"`
	Components []ComponentRecord `json:"components" yaml:"components"`
}

// recordFromSystem encodes every component in insertion order
func recordFromSystem(system *grid.System) (SystemRecord, error) {
	rec := SystemRecord{Version: formatVersion}
	for _, c := range system.Components() {
		cr, err := recordFromComponent(c)
		if err != nil {
			return SystemRecord{}, err
		}
		rec.Components = append(rec.Components, cr)
	}
	return rec, nil
}

// recordFromComponent maps a component to its wire record. The switch is
// exhaustive over the component types the model defines.
func recordFromComponent(c grid.Component) (ComponentRecord, error) {
	switch v := c.(type) {
	case *grid.ACBus:
		return ComponentRecord{Kind: kindACBus, Name: v.Name, Number: ptr(v.Number)}, nil
	case *grid.DCBus:
		return ComponentRecord{Kind: kindDCBus, Name: v.Name, Number: ptr(v.Number)}, nil
	case *grid.Area:
		return ComponentRecord{Kind: kindArea, Name: v.Name}, nil
	case *grid.Line:
		return acBranchRecord(grid.KindLine, v.ACBranch), nil
	case *grid.Transformer2W:
		return acBranchRecord(grid.KindTransformer2W, v.ACBranch), nil
	case *grid.MonitoredLine:
		rec := acBranchRecord(grid.KindMonitoredLine, v.ACBranch)
		rec.RatingUp = megawatts(v.RatingUp)
		rec.RatingDown = megawatts(v.RatingDown)
		rec.Losses = percent(v.Losses)
		return rec, nil
	case *grid.TModelHVDCLine:
		rec := dcBranchRecord(grid.KindTModelHVDCLine, v.DCBranch)
		rec.RatingUp = megawatts(v.RatingUp)
		rec.RatingDown = megawatts(v.RatingDown)
		rec.Losses = ptr(v.Losses)
		rec.Resistance = ptr(v.Resistance)
		rec.Inductance = ptr(v.Inductance)
		rec.Capacitance = ptr(v.Capacitance)
		return rec, nil
	case *grid.AreaInterchange:
		rec := ComponentRecord{
			Kind:         string(grid.KindAreaInterchange),
			Name:         v.Name,
			MaxPowerFlow: megawatts(v.MaxPowerFlow),
			MinPowerFlow: megawatts(v.MinPowerFlow),
		}
		if v.FromArea != nil {
			rec.FromArea = v.FromArea.Name
		}
		if v.ToArea != nil {
			rec.ToArea = v.ToArea.Name
		}
		return rec, nil
	default:
		return ComponentRecord{}, fmt.Errorf("cannot serialize component type %T", c)
	}
}

func acBranchRecord(kind grid.BranchKind, b grid.ACBranch) ComponentRecord {
	return ComponentRecord{
		Kind:              string(kind),
		Name:              b.Name,
		FromBus:           b.FromBus.Name,
		ToBus:             b.ToBus.Name,
		R:                 b.R,
		X:                 b.X,
		PrimaryShunt:      b.PrimaryShunt,
		Rating:            megawatts(b.Rating),
		ActivePowerFlow:   megawatts(b.ActivePowerFlow),
		ReactivePowerFlow: megawatts(b.ReactivePowerFlow),
		AngleLimits:       b.AngleLimits,
	}
}

func dcBranchRecord(kind grid.BranchKind, b grid.DCBranch) ComponentRecord {
	return ComponentRecord{
		Kind:                    string(kind),
		Name:                    b.Name,
		FromBus:                 b.FromBus.GetName(),
		ToBus:                   b.ToBus.GetName(),
		ActivePowerFlow:         megawatts(b.ActivePowerFlow),
		ActivePowerLimitsFrom:   b.ActivePowerLimitsFrom,
		ActivePowerLimitsTo:     b.ActivePowerLimitsTo,
		ReactivePowerLimitsFrom: b.ReactivePowerLimitsFrom,
		ReactivePowerLimitsTo:   b.ReactivePowerLimitsTo,
	}
}

// systemFromRecord rebuilds a system in two passes: topology first, then
// branches resolving their references by name. Every component goes through
// its validating constructor.
func systemFromRecord(rec SystemRecord) (*grid.System, error) {
	system := grid.NewSystem()
	acBuses := make(map[string]*grid.ACBus)
	dcBuses := make(map[string]*grid.DCBus)
	areas := make(map[string]*grid.Area)

	for _, cr := range rec.Components {
		switch cr.Kind {
		case kindACBus:
			bus, err := grid.NewACBus(grid.ACBus{Device: grid.Device{Name: cr.Name}, Number: intValue(cr.Number)})
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", cr.Name, err)
			}
			if err := system.Add(bus); err != nil {
				return nil, err
			}
			acBuses[bus.Name] = bus
		case kindDCBus:
			bus, err := grid.NewDCBus(grid.DCBus{Device: grid.Device{Name: cr.Name}, Number: intValue(cr.Number)})
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", cr.Name, err)
			}
			if err := system.Add(bus); err != nil {
				return nil, err
			}
			dcBuses[bus.Name] = bus
		case kindArea:
			area, err := grid.NewArea(grid.Area{Device: grid.Device{Name: cr.Name}})
			if err != nil {
				return nil, fmt.Errorf("component %q: %w", cr.Name, err)
			}
			if err := system.Add(area); err != nil {
				return nil, err
			}
			areas[area.Name] = area
		}
	}

	for _, cr := range rec.Components {
		var (
			branch grid.Branch
			err    error
		)
		switch grid.BranchKind(cr.Kind) {
		case grid.KindLine:
			var group grid.ACBranch
			group, err = acBranchGroup(cr, acBuses)
			if err == nil {
				branch, err = grid.NewLine(grid.Line{ACBranch: group})
			}
		case grid.KindTransformer2W:
			var group grid.ACBranch
			group, err = acBranchGroup(cr, acBuses)
			if err == nil {
				branch, err = grid.NewTransformer2W(grid.Transformer2W{ACBranch: group})
			}
		case grid.KindMonitoredLine:
			var group grid.ACBranch
			group, err = acBranchGroup(cr, acBuses)
			if err == nil {
				branch, err = grid.NewMonitoredLine(grid.MonitoredLine{
					ACBranch:   group,
					RatingUp:   activePower(cr.RatingUp),
					RatingDown: activePower(cr.RatingDown),
					Losses:     percentage(cr.Losses),
				})
			}
		case grid.KindTModelHVDCLine:
			var group grid.DCBranch
			group, err = dcBranchGroup(cr, acBuses, dcBuses)
			if err == nil {
				branch, err = grid.NewTModelHVDCLine(grid.TModelHVDCLine{
					DCBranch:    group,
					RatingUp:    activePower(cr.RatingUp),
					RatingDown:  activePower(cr.RatingDown),
					Losses:      floatValue(cr.Losses),
					Resistance:  floatValue(cr.Resistance),
					Inductance:  floatValue(cr.Inductance),
					Capacitance: floatValue(cr.Capacitance),
				})
			}
		case grid.KindAreaInterchange:
			ai := grid.AreaInterchange{
				Device:       grid.Device{Name: cr.Name},
				MaxPowerFlow: activePower(cr.MaxPowerFlow),
				MinPowerFlow: activePower(cr.MinPowerFlow),
			}
			if cr.FromArea != "" {
				if ai.FromArea, err = lookupArea(areas, cr.FromArea); err != nil {
					break
				}
			}
			if cr.ToArea != "" {
				if ai.ToArea, err = lookupArea(areas, cr.ToArea); err != nil {
					break
				}
			}
			branch, err = grid.NewAreaInterchange(ai)
		case grid.BranchKind(kindACBus), grid.BranchKind(kindDCBus), grid.BranchKind(kindArea):
			continue
		default:
			return nil, fmt.Errorf("component %q: unknown kind %q", cr.Name, cr.Kind)
		}
		if err != nil {
			return nil, fmt.Errorf("component %q: %w", cr.Name, err)
		}
		if err := system.Add(branch); err != nil {
			return nil, err
		}
	}

	return system, nil
}

// acBranchGroup resolves the shared AC fields of a record. Empty reference
// names stay nil so the constructor reports the missing field.
func acBranchGroup(cr ComponentRecord, acBuses map[string]*grid.ACBus) (grid.ACBranch, error) {
	group := grid.ACBranch{
		Device:            grid.Device{Name: cr.Name},
		R:                 cr.R,
		X:                 cr.X,
		PrimaryShunt:      cr.PrimaryShunt,
		Rating:            activePower(cr.Rating),
		ActivePowerFlow:   activePower(cr.ActivePowerFlow),
		ReactivePowerFlow: activePower(cr.ReactivePowerFlow),
		AngleLimits:       cr.AngleLimits,
	}
	if cr.FromBus != "" {
		bus, ok := acBuses[cr.FromBus]
		if !ok {
			return grid.ACBranch{}, fmt.Errorf("references unknown AC bus %q", cr.FromBus)
		}
		group.FromBus = bus
	}
	if cr.ToBus != "" {
		bus, ok := acBuses[cr.ToBus]
		if !ok {
			return grid.ACBranch{}, fmt.Errorf("references unknown AC bus %q", cr.ToBus)
		}
		group.ToBus = bus
	}
	return group, nil
}

// dcBranchGroup resolves the shared DC fields of a record; endpoints may be
// buses of either variant
func dcBranchGroup(cr ComponentRecord, acBuses map[string]*grid.ACBus, dcBuses map[string]*grid.DCBus) (grid.DCBranch, error) {
	group := grid.DCBranch{
		Device:                  grid.Device{Name: cr.Name},
		ActivePowerFlow:         activePower(cr.ActivePowerFlow),
		ActivePowerLimitsFrom:   cr.ActivePowerLimitsFrom,
		ActivePowerLimitsTo:     cr.ActivePowerLimitsTo,
		ReactivePowerLimitsFrom: cr.ReactivePowerLimitsFrom,
		ReactivePowerLimitsTo:   cr.ReactivePowerLimitsTo,
	}
	if cr.FromBus != "" {
		bus, err := lookupBus(acBuses, dcBuses, cr.FromBus)
		if err != nil {
			return grid.DCBranch{}, err
		}
		group.FromBus = bus
	}
	if cr.ToBus != "" {
		bus, err := lookupBus(acBuses, dcBuses, cr.ToBus)
		if err != nil {
			return grid.DCBranch{}, err
		}
		group.ToBus = bus
	}
	return group, nil
}

func lookupBus(acBuses map[string]*grid.ACBus, dcBuses map[string]*grid.DCBus, name string) (grid.Bus, error) {
	if bus, ok := dcBuses[name]; ok {
		return bus, nil
	}
	if bus, ok := acBuses[name]; ok {
		return bus, nil
	}
	return nil, fmt.Errorf("references unknown bus %q", name)
}

func lookupArea(areas map[string]*grid.Area, name string) (*grid.Area, error) {
	area, ok := areas[name]
	if !ok {
		return nil, fmt.Errorf("references unknown area %q", name)
	}
	return area, nil
}

// megawatts flattens an optional quantity to its canonical magnitude
func megawatts(p *units.ActivePower) *float64 {
	if p == nil {
		return nil
	}
	return ptr(p.Megawatts())
}

// percent flattens an optional percentage to the canonical 0-100 scale
func percent(p *units.Percentage) *float64 {
	if p == nil {
		return nil
	}
	return ptr(p.Percent())
}

// activePower lifts an optional megawatt magnitude back into a quantity
func activePower(f *float64) *units.ActivePower {
	if f == nil {
		return nil
	}
	return ptr(units.MW(*f))
}

// percentage lifts an optional percent magnitude back into a quantity
func percentage(f *float64) *units.Percentage {
	if f == nil {
		return nil
	}
	return ptr(units.Pct(*f))
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func ptr[T any](v T) *T {
	return &v
}
