// Package eventbus delivers TaskSaved events to in-process subscribers.
package eventbus

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/ports"
)

// Dispatcher is a synchronous ports.EventPublisher. Publish returns only
// after every subscriber has handled the event. Subscriber errors and panics
// are logged and never propagate to the publisher.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers []ports.TaskSavedHandler
	metrics  ports.WorkflowMetrics
	logger   *slog.Logger
}

var _ ports.EventPublisher = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher without subscribers. metrics may be nil.
func NewDispatcher(metrics ports.WorkflowMetrics, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		metrics: metrics,
		logger:  logger.With("component", "eventbus"),
	}
}

// Subscribe registers h for every subsequent event.
func (d *Dispatcher) Subscribe(h ports.TaskSavedHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, h)
}

// Publish hands event to all subscribers in registration order.
func (d *Dispatcher) Publish(ctx context.Context, event task.TaskSaved) {
	d.mu.RLock()
	handlers := append([]ports.TaskSavedHandler(nil), d.handlers...)
	d.mu.RUnlock()

	if d.metrics != nil {
		d.metrics.EventPublished(event.Stage.String())
	}

	for _, h := range handlers {
		if err := d.deliver(ctx, h, event); err != nil {
			d.logger.ErrorContext(ctx, "task saved handler failed",
				"event_id", event.EventID,
				"order_id", event.OrderID.String(),
				"task_id", event.TaskID.String(),
				"stage", event.Stage.String(),
				"error", err,
			)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, h ports.TaskSavedHandler, event task.TaskSaved) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return h.Handle(ctx, event)
}
