package queries

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrGetTasksForStaffQueryIsNotConstructed = errors.New(
		"GetTasksForStaffQuery must be created via NewGetTasksForStaffQuery constructor",
	)
)

// GetTasksForStaffQuery builds the task board of one staff member.
//
// Example:
//
//	query, err := NewGetTasksForStaffQuery(staffID)
//	if err != nil {
//	    return err
//	}
//	board, err := handler.Handle(ctx, query)
//	fmt.Printf("%d pending, %d reassigned\n", len(board.Pending), len(board.Reassigned))
type GetTasksForStaffQuery struct {
	staffID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTasksForStaffQuery creates a worklist query for staffID.
func NewGetTasksForStaffQuery(staffID kernel.UUID) (GetTasksForStaffQuery, error) {
	if err := staffID.Validate(); err != nil {
		return GetTasksForStaffQuery{}, errs.NewValueIsRequiredErrorWithCause("staffId", err)
	}
	return GetTasksForStaffQuery{staffID: staffID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetTasksForStaffQuery) StaffID() kernel.UUID {
	return q.staffID
}

// Validate ensures the query was created through the constructor.
func (q GetTasksForStaffQuery) Validate() error {
	return q.guard.Validate(ErrGetTasksForStaffQueryIsNotConstructed)
}
