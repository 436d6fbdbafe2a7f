package task

import (
	"time"

	"atelier/internal/core/domain/model/kernel"

	"github.com/oklog/ulid/v2"
)

// TaskSaved is emitted after a task has been durably written. The status
// synchronizer consumes it to bring the owning order's status in line.
type TaskSaved struct {
	EventID    string
	TaskID     kernel.UUID
	OrderID    kernel.UUID
	Stage      Stage
	OccurredAt time.Time
}

// NewTaskSaved describes the current state of t as a TaskSaved event.
func NewTaskSaved(t *Task) TaskSaved {
	return TaskSaved{
		EventID:    ulid.Make().String(),
		TaskID:     t.ID(),
		OrderID:    t.OrderID(),
		Stage:      t.Stage(),
		OccurredAt: t.UpdatedAt(),
	}
}
