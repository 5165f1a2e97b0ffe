// Package units defines the unit-tagged physical quantities used by the grid
// model. Each dimension is its own Go type, so quantities of different
// dimensions cannot be compared or combined; that mistake fails at compile
// time rather than at runtime.
package units

import (
	"errors"
	"fmt"
)

// Unit identifies a measurement unit within a dimension
type Unit string

const (
	// Active power units. Megawatt is the canonical unit.
	Watt     Unit = "W"
	Kilowatt Unit = "kW"
	Megawatt Unit = "MW"
	Gigawatt Unit = "GW"

	// Percentage units. Percent (0-100 scale) is the canonical unit;
	// Fraction is the equivalent 0-1 scale.
	Percent  Unit = "%"
	Fraction Unit = "fraction"
)

// ErrUnitMismatch indicates a quantity was constructed with, or converted to,
// a unit outside its dimension
var ErrUnitMismatch = errors.New("unit mismatch")

// powerScale maps power units to their multiplier relative to megawatts
var powerScale = map[Unit]float64{
	Watt:     1e-6,
	Kilowatt: 1e-3,
	Megawatt: 1,
	Gigawatt: 1e3,
}

// percentScale maps percentage units to their multiplier relative to the
// 0-100 percent scale
var percentScale = map[Unit]float64{
	Percent:  1,
	Fraction: 100,
}

// ActivePower is a power magnitude tagged with its unit. The unit is fixed at
// construction; arithmetic and comparison normalize through megawatts.
type ActivePower struct {
	value float64
	unit  Unit
}

// NewActivePower creates a power quantity from a magnitude and a power unit
func NewActivePower(value float64, unit Unit) (ActivePower, error) {
	if _, ok := powerScale[unit]; !ok {
		return ActivePower{}, fmt.Errorf("%q is not an active power unit: %w", unit, ErrUnitMismatch)
	}
	return ActivePower{value: value, unit: unit}, nil
}

// MW creates a power quantity in the canonical megawatt unit
func MW(value float64) ActivePower {
	return ActivePower{value: value, unit: Megawatt}
}

// Value returns the magnitude in the quantity's own unit
func (p ActivePower) Value() float64 {
	return p.value
}

// Unit returns the unit the quantity was constructed with
func (p ActivePower) Unit() Unit {
	return p.unit
}

// Megawatts returns the magnitude normalized to megawatts
func (p ActivePower) Megawatts() float64 {
	return p.value * powerScale[p.orMW()]
}

// Convert returns an equal quantity expressed in another power unit
func (p ActivePower) Convert(to Unit) (ActivePower, error) {
	scale, ok := powerScale[to]
	if !ok {
		return ActivePower{}, fmt.Errorf("cannot convert active power to %q: %w", to, ErrUnitMismatch)
	}
	return ActivePower{value: p.Megawatts() / scale, unit: to}, nil
}

// Add returns the sum of two power quantities in megawatts
func (p ActivePower) Add(q ActivePower) ActivePower {
	return MW(p.Megawatts() + q.Megawatts())
}

// Sub returns the difference of two power quantities in megawatts
func (p ActivePower) Sub(q ActivePower) ActivePower {
	return MW(p.Megawatts() - q.Megawatts())
}

// Cmp compares two power quantities, returning -1, 0, or +1
func (p ActivePower) Cmp(q ActivePower) int {
	a, b := p.Megawatts(), q.Megawatts()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func (p ActivePower) String() string {
	return fmt.Sprintf("%g %s", p.value, p.orMW())
}

// orMW treats the zero value as megawatts so it behaves as 0 MW
func (p ActivePower) orMW() Unit {
	if p.unit == "" {
		return Megawatt
	}
	return p.unit
}

// Percentage is a ratio magnitude tagged with its scale unit. The canonical
// scale is percent (0-100); fractions normalize onto it.
type Percentage struct {
	value float64
	unit  Unit
}

// NewPercentage creates a percentage quantity from a magnitude and scale unit
func NewPercentage(value float64, unit Unit) (Percentage, error) {
	if _, ok := percentScale[unit]; !ok {
		return Percentage{}, fmt.Errorf("%q is not a percentage unit: %w", unit, ErrUnitMismatch)
	}
	return Percentage{value: value, unit: unit}, nil
}

// Pct creates a percentage quantity on the canonical 0-100 scale
func Pct(value float64) Percentage {
	return Percentage{value: value, unit: Percent}
}

// Value returns the magnitude in the quantity's own scale
func (p Percentage) Value() float64 {
	return p.value
}

// Unit returns the scale unit the quantity was constructed with
func (p Percentage) Unit() Unit {
	return p.unit
}

// Percent returns the magnitude normalized to the 0-100 scale
func (p Percentage) Percent() float64 {
	return p.value * percentScale[p.orPercent()]
}

// Fraction returns the magnitude normalized to the 0-1 scale
func (p Percentage) Fraction() float64 {
	return p.Percent() / 100
}

// Convert returns an equal quantity expressed on another percentage scale
func (p Percentage) Convert(to Unit) (Percentage, error) {
	scale, ok := percentScale[to]
	if !ok {
		return Percentage{}, fmt.Errorf("cannot convert percentage to %q: %w", to, ErrUnitMismatch)
	}
	return Percentage{value: p.Percent() / scale, unit: to}, nil
}

func (p Percentage) String() string {
	if p.orPercent() == Percent {
		return fmt.Sprintf("%g%%", p.value)
	}
	return fmt.Sprintf("%g %s", p.value, p.unit)
}

// orPercent treats the zero value as percent so it behaves as 0%
func (p Percentage) orPercent() Unit {
	if p.unit == "" {
		return Percent
	}
	return p.unit
}
