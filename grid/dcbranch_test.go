package grid

import (
	"errors"
	"testing"

	"busbar/units"
)

func TestTModelHVDCLineValidation(t *testing.T) {
	valid := func() TModelHVDCLine {
		return TModelHVDCLine{
			DCBranch: DCBranch{
				Device:  Device{Name: "HVDC1"},
				FromBus: DCBusExample(),
				ToBus:   DCBusExample(),
			},
		}
	}

	t.Run("requires both buses", func(t *testing.T) {
		hvdc := valid()
		hvdc.FromBus = nil
		if _, err := NewTModelHVDCLine(hvdc); !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}

		hvdc = valid()
		hvdc.ToBus = nil
		if _, err := NewTModelHVDCLine(hvdc); !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("accepts either bus variant", func(t *testing.T) {
		hvdc := valid()
		hvdc.FromBus = ACBusExample()
		if _, err := NewTModelHVDCLine(hvdc); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects negative active_power_flow", func(t *testing.T) {
		hvdc := valid()
		hvdc.ActivePowerFlow = ptr(units.MW(-1))
		if _, err := NewTModelHVDCLine(hvdc); !errors.Is(err, ErrSignConstraint) {
			t.Fatalf("expected ErrSignConstraint, got %v", err)
		}
	})

	t.Run("rejects positive rating_down", func(t *testing.T) {
		hvdc := valid()
		hvdc.RatingDown = ptr(units.MW(80))
		if _, err := NewTModelHVDCLine(hvdc); !errors.Is(err, ErrSignConstraint) {
			t.Fatalf("expected ErrSignConstraint, got %v", err)
		}
	})

	t.Run("rejects negative per-unit parameters", func(t *testing.T) {
		for _, field := range []string{"losses", "resistance", "inductance", "capacitance"} {
			hvdc := valid()
			switch field {
			case "losses":
				hvdc.Losses = -0.1
			case "resistance":
				hvdc.Resistance = -0.1
			case "inductance":
				hvdc.Inductance = -0.1
			case "capacitance":
				hvdc.Capacitance = -0.1
			}
			_, err := NewTModelHVDCLine(hvdc)
			if !errors.Is(err, ErrSignConstraint) {
				t.Fatalf("%s: expected ErrSignConstraint, got %v", field, err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatal("expected a *ValidationError")
			}
			if verr.Field != field {
				t.Errorf("expected field %s, got %s", field, verr.Field)
			}
		}
	})

	t.Run("rejects an inverted power limit", func(t *testing.T) {
		hvdc := valid()
		hvdc.ActivePowerLimitsFrom = &MinMax{min: 10, max: 5}
		_, err := NewTModelHVDCLine(hvdc)
		if !errors.Is(err, ErrRangeViolation) {
			t.Fatalf("expected ErrRangeViolation, got %v", err)
		}
	})
}

func TestTModelHVDCLineExample(t *testing.T) {
	hvdc := TModelHVDCLineExample()

	if hvdc.Name != "ExampleDCLine" {
		t.Errorf("unexpected name %s", hvdc.Name)
	}
	if hvdc.RatingUp.Megawatts() != 100 {
		t.Errorf("expected rating_up 100 MW, got %g", hvdc.RatingUp.Megawatts())
	}
	if hvdc.RatingDown.Megawatts() != -80 {
		t.Errorf("expected rating_down -80 MW, got %g", hvdc.RatingDown.Megawatts())
	}

	// Unset per-unit parameters default to zero and still validate
	if hvdc.Losses != 0 || hvdc.Resistance != 0 || hvdc.Inductance != 0 || hvdc.Capacitance != 0 {
		t.Error("expected unset per-unit parameters to default to zero")
	}
	if err := hvdc.Validate(); err != nil {
		t.Errorf("example failed validation: %v", err)
	}
}
