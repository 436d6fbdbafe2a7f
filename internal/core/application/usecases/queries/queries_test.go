package queries_test

import (
	"testing"

	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueries_NotConstructedViaConstructor(t *testing.T) {
	assert.ErrorIs(t, queries.GetOrdersWithItemsQuery{}.Validate(), queries.ErrGetOrdersWithItemsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetTasksForStaffQuery{}.Validate(), queries.ErrGetTasksForStaffQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAssignableStaffQuery{}.Validate(), queries.ErrGetAssignableStaffQueryIsNotConstructed)
	assert.ErrorIs(t, queries.ListTasksQuery{}.Validate(), queries.ErrListTasksQueryIsNotConstructed)
}

func TestNewGetTasksForStaffQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetTasksForStaffQuery(id)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, id, query.StaffID())

	_, err = queries.NewGetTasksForStaffQuery(kernel.UUID{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Equal(t, "staffId", errs.Field(err))
}

func TestNewGetAssignableStaffQuery(t *testing.T) {
	query, err := queries.NewGetAssignableStaffQuery(task.Tailoring)
	require.NoError(t, err)
	assert.Equal(t, task.Tailoring, query.Stage())

	_, err = queries.NewGetAssignableStaffQuery(task.UnknownStage)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}

func TestNewListTasksQuery(t *testing.T) {
	query, err := queries.NewListTasksQuery(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, query.Stage())
	assert.Nil(t, query.Status())

	stage, status := task.Stage(42), task.Status(42)
	_, err = queries.NewListTasksQuery(&stage, &status)
	require.Error(t, err)
	assert.True(t, errs.IsValidation(err))
}
