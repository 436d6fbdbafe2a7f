package kernel_test

import (
	"strings"
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderNumber(t *testing.T) {
	t.Run("trims and accepts item suffixes", func(t *testing.T) {
		n, err := kernel.NewOrderNumber("  ORD-200/1 ")
		require.NoError(t, err)
		assert.Equal(t, "ORD-200/1", n.String())
		require.NoError(t, n.Validate())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("too long", func(t *testing.T) {
		_, err := kernel.NewOrderNumber(strings.Repeat("A", 65))
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("bad characters", func(t *testing.T) {
		_, err := kernel.NewOrderNumber("ORD 100")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value", func(t *testing.T) {
		var n kernel.OrderNumber
		assert.Equal(t, kernel.ErrOrderNumberIsNotConstructed, n.Validate())
	})
}
