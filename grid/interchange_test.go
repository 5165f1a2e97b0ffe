package grid

import (
	"errors"
	"testing"

	"busbar/units"
)

func TestAreaInterchangeValidation(t *testing.T) {
	t.Run("requires both flow bounds", func(t *testing.T) {
		_, err := NewAreaInterchange(AreaInterchange{
			Device:       Device{Name: "AI1"},
			MinPowerFlow: ptr(units.MW(-10)),
		})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatal("expected a *ValidationError")
		}
		if verr.Field != "max_power_flow" {
			t.Errorf("expected field max_power_flow, got %s", verr.Field)
		}

		_, err = NewAreaInterchange(AreaInterchange{
			Device:       Device{Name: "AI1"},
			MaxPowerFlow: ptr(units.MW(10)),
		})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("rejects negative max_power_flow", func(t *testing.T) {
		_, err := NewAreaInterchange(AreaInterchange{
			Device:       Device{Name: "AI1"},
			MaxPowerFlow: ptr(units.MW(-10)),
			MinPowerFlow: ptr(units.MW(-10)),
		})
		if !errors.Is(err, ErrSignConstraint) {
			t.Fatalf("expected ErrSignConstraint, got %v", err)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatal("expected a *ValidationError")
		}
		if verr.Field != "max_power_flow" {
			t.Errorf("expected field max_power_flow, got %s", verr.Field)
		}
	})

	t.Run("rejects positive min_power_flow", func(t *testing.T) {
		_, err := NewAreaInterchange(AreaInterchange{
			Device:       Device{Name: "AI1"},
			MaxPowerFlow: ptr(units.MW(10)),
			MinPowerFlow: ptr(units.MW(10)),
		})
		if !errors.Is(err, ErrSignConstraint) {
			t.Fatalf("expected ErrSignConstraint, got %v", err)
		}
	})

	t.Run("accepts zero on both bounds", func(t *testing.T) {
		ai, err := NewAreaInterchange(AreaInterchange{
			Device:       Device{Name: "AI1"},
			MaxPowerFlow: ptr(units.MW(0)),
			MinPowerFlow: ptr(units.MW(0)),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ai.FromArea != nil || ai.ToArea != nil {
			t.Error("expected areas to stay unset")
		}
	})
}

func TestAreaInterchangeExample(t *testing.T) {
	ai := AreaInterchangeExample()

	if ai.Name != "ExampleAreaInterchange" {
		t.Errorf("unexpected name %s", ai.Name)
	}
	if ai.MaxPowerFlow.Megawatts() != 100 {
		t.Errorf("expected max_power_flow 100 MW, got %g", ai.MaxPowerFlow.Megawatts())
	}
	if ai.MinPowerFlow.Megawatts() != -100 {
		t.Errorf("expected min_power_flow -100 MW, got %g", ai.MinPowerFlow.Megawatts())
	}
	if ai.FromArea.Name != "ExampleArea" || ai.ToArea.Name != "ExampleArea" {
		t.Error("expected the fixed reference areas")
	}
	if err := ai.Validate(); err != nil {
		t.Errorf("example failed validation: %v", err)
	}
}
