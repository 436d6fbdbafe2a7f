package guard_test

import (
	"errors"
	"testing"

	"atelier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard
		expected := errors.New("entity not constructed")

		err := g.Validate(expected)

		require.Error(t, err)
		assert.Equal(t, expected, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	errMeasurementNotConstructed := errors.New("Measurement must be created via newMeasurement")

	type measurement struct {
		field string
		value string
		guard guard.ConstructorGuard
	}

	newMeasurement := func(field, value string) (measurement, error) {
		if field == "" {
			return measurement{}, errors.New("field is required")
		}
		return measurement{field: field, value: value, guard: guard.NewConstructorGuard()}, nil
	}

	m, err := newMeasurement("chest", "40")
	require.NoError(t, err)
	require.NoError(t, m.guard.Validate(errMeasurementNotConstructed))

	var zero measurement
	assert.ErrorIs(t, zero.guard.Validate(errMeasurementNotConstructed), errMeasurementNotConstructed)

	_, err = newMeasurement("", "40")
	assert.EqualError(t, err, "field is required")
}
