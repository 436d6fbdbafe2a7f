package queries

import (
	"errors"

	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetAssignableStaffQueryIsNotConstructed = errors.New(
		"GetAssignableStaffQuery must be created via NewGetAssignableStaffQuery constructor",
	)
)

// GetAssignableStaffQuery asks who can take a task of the given stage.
type GetAssignableStaffQuery struct {
	stage task.Stage

	guard guard.ConstructorGuard
}

func NewGetAssignableStaffQuery(stage task.Stage) (GetAssignableStaffQuery, error) {
	if err := stage.Validate(); err != nil {
		return GetAssignableStaffQuery{}, err
	}
	return GetAssignableStaffQuery{stage: stage, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAssignableStaffQuery) Stage() task.Stage {
	return q.stage
}

// Validate ensures the query was created through the constructor.
func (q GetAssignableStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignableStaffQueryIsNotConstructed)
}
