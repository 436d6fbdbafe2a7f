package ports

import (
	"context"

	"atelier/internal/core/domain/model/task"
)

// EventPublisher delivers committed task events to their subscribers.
// Delivery is synchronous; subscriber failures are handled by the publisher
// and never reach the code that saved the task.
type EventPublisher interface {
	Publish(ctx context.Context, event task.TaskSaved)
}

// TaskSavedHandler consumes TaskSaved events.
type TaskSavedHandler interface {
	Handle(ctx context.Context, event task.TaskSaved) error
}
