package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewActivePower(t *testing.T) {
	t.Run("accepts power units", func(t *testing.T) {
		for _, unit := range []Unit{Watt, Kilowatt, Megawatt, Gigawatt} {
			p, err := NewActivePower(1, unit)
			require.NoError(t, err)
			assert.Equal(t, unit, p.Unit())
			assert.Equal(t, 1.0, p.Value())
		}
	})

	t.Run("rejects non-power units", func(t *testing.T) {
		_, err := NewActivePower(1, Percent)
		require.ErrorIs(t, err, ErrUnitMismatch)

		_, err = NewActivePower(1, Unit("VA"))
		require.ErrorIs(t, err, ErrUnitMismatch)
		assert.Contains(t, err.Error(), "VA")
	})
}

func TestActivePowerConversion(t *testing.T) {
	t.Run("normalizes to megawatts", func(t *testing.T) {
		kw, err := NewActivePower(500, Kilowatt)
		require.NoError(t, err)
		assert.Equal(t, 0.5, kw.Megawatts())

		gw, err := NewActivePower(2, Gigawatt)
		require.NoError(t, err)
		assert.Equal(t, 2000.0, gw.Megawatts())
	})

	t.Run("converts between power units", func(t *testing.T) {
		p := MW(1.5)
		kw, err := p.Convert(Kilowatt)
		require.NoError(t, err)
		assert.Equal(t, 1500.0, kw.Value())
		assert.Equal(t, Kilowatt, kw.Unit())
		assert.Equal(t, 1.5, kw.Megawatts())
	})

	t.Run("rejects conversion outside the dimension", func(t *testing.T) {
		_, err := MW(1).Convert(Fraction)
		require.ErrorIs(t, err, ErrUnitMismatch)
	})
}

func TestActivePowerArithmetic(t *testing.T) {
	kw, err := NewActivePower(500, Kilowatt)
	require.NoError(t, err)

	assert.Equal(t, 100.5, MW(100).Add(kw).Megawatts())
	assert.Equal(t, 99.5, MW(100).Sub(kw).Megawatts())

	assert.Equal(t, -1, kw.Cmp(MW(1)))
	assert.Equal(t, 1, MW(1).Cmp(kw))
	assert.Equal(t, 0, kw.Cmp(MW(0.5)))
}

func TestActivePowerString(t *testing.T) {
	assert.Equal(t, "100 MW", MW(100).String())

	var zero ActivePower
	assert.Equal(t, "0 MW", zero.String())
	assert.Equal(t, 0.0, zero.Megawatts())
}

func TestNewPercentage(t *testing.T) {
	t.Run("accepts percentage units", func(t *testing.T) {
		p, err := NewPercentage(10, Percent)
		require.NoError(t, err)
		assert.Equal(t, 10.0, p.Percent())
		assert.Equal(t, 0.1, p.Fraction())

		f, err := NewPercentage(0.1, Fraction)
		require.NoError(t, err)
		assert.Equal(t, 10.0, f.Percent())
	})

	t.Run("rejects non-percentage units", func(t *testing.T) {
		_, err := NewPercentage(10, Megawatt)
		require.ErrorIs(t, err, ErrUnitMismatch)
	})
}

func TestPercentageConversion(t *testing.T) {
	p := Pct(25)
	f, err := p.Convert(Fraction)
	require.NoError(t, err)
	assert.Equal(t, 0.25, f.Value())
	assert.Equal(t, Fraction, f.Unit())
	assert.Equal(t, 25.0, f.Percent())

	_, err = p.Convert(Megawatt)
	require.ErrorIs(t, err, ErrUnitMismatch)
}

func TestPercentageString(t *testing.T) {
	assert.Equal(t, "10%", Pct(10).String())

	f, err := NewPercentage(0.1, Fraction)
	require.NoError(t, err)
	assert.Equal(t, "0.1 fraction", f.String())
}
