package staff_test

import (
	"testing"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/staff"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStaff(t *testing.T) {
	t.Run("valid staff", func(t *testing.T) {
		id := kernel.NewUUID()
		s, err := staff.NewStaff(id, "  Ravi ", staff.Cutter, true, 7, true)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.True(t, s.ID().IsEqual(id))
		assert.Equal(t, "Ravi", s.Name())
		assert.Equal(t, staff.Cutter, s.Role())
		assert.True(t, s.IsCertified())
		assert.Equal(t, 7, s.Experience())
		assert.True(t, s.IsActive())
	})

	t.Run("invalid input is joined", func(t *testing.T) {
		s, err := staff.NewStaff(kernel.UUID{}, "", staff.Role("Janitor"), false, -1, true)

		require.Error(t, err)
		assert.Nil(t, s)
		require.ErrorIs(t, err, staff.ErrNameIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var s *staff.Staff
		assert.Equal(t, staff.ErrStaffIsNotConstructed, s.Validate())
		assert.Equal(t, staff.ErrStaffIsNotConstructed, (&staff.Staff{}).Validate())
	})
}

func TestRoleForStage(t *testing.T) {
	expected := map[task.Stage]staff.Role{
		task.Cutting:      staff.Cutter,
		task.Handworking:  staff.Handworker,
		task.Tailoring:    staff.Tailor,
		task.QualityCheck: staff.Manager,
	}
	for stage, role := range expected {
		got, err := staff.RoleForStage(stage)
		require.NoError(t, err)
		assert.Equal(t, role, got, stage.String())
	}

	_, err := staff.RoleForStage(task.UnknownStage)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestParseRole(t *testing.T) {
	r, err := staff.ParseRole("handworker")
	require.NoError(t, err)
	assert.Equal(t, staff.Handworker, r)

	_, err = staff.ParseRole("Driver")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStaff_CheckAssignable(t *testing.T) {
	tailor, err := staff.NewStaff(kernel.NewUUID(), "Meena", staff.Tailor, false, 3, true)
	require.NoError(t, err)
	retired, err := staff.NewStaff(kernel.NewUUID(), "Old Hand", staff.Tailor, true, 40, false)
	require.NoError(t, err)

	assert.True(t, tailor.CanWork(task.Tailoring))
	assert.False(t, tailor.CanWork(task.Cutting))

	require.NoError(t, tailor.CheckAssignable(task.Tailoring, true))
	require.NoError(t, tailor.CheckAssignable(task.Cutting, false))

	err = tailor.CheckAssignable(task.Cutting, true)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, "staffId", errs.Field(err))

	err = retired.CheckAssignable(task.Tailoring, false)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
