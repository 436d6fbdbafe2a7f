package queries

import (
	"errors"

	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/guard"
)

var (
	ErrListTasksQueryIsNotConstructed = errors.New(
		"ListTasksQuery must be created via NewListTasksQuery constructor",
	)
)

// ListTasksQuery lists tasks, optionally narrowed to one stage and/or status.
type ListTasksQuery struct {
	stage  *task.Stage
	status *task.Status

	guard guard.ConstructorGuard
}

// NewListTasksQuery creates a listing query. Nil filters match every task.
func NewListTasksQuery(stage *task.Stage, status *task.Status) (ListTasksQuery, error) {
	var problems []error
	if stage != nil {
		problems = append(problems, stage.Validate())
	}
	if status != nil {
		problems = append(problems, status.Validate())
	}
	if err := errors.Join(problems...); err != nil {
		return ListTasksQuery{}, err
	}

	return ListTasksQuery{stage: stage, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListTasksQuery) Stage() *task.Stage { return q.stage }
func (q ListTasksQuery) Status() *task.Status { return q.status }

// Validate ensures the query was created through the constructor.
func (q ListTasksQuery) Validate() error {
	return q.guard.Validate(ErrListTasksQueryIsNotConstructed)
}
