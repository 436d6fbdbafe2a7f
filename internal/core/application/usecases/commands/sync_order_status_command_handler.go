package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"
)

// SyncOrderStatusResult describes what a synchronization did.
type SyncOrderStatusResult struct {
	Previous order.Status
	Current  order.Status
	Changed  bool
	// Skipped is set when the order is outside the production pipeline and
	// its status was left alone.
	Skipped bool
}

// OrderStatusSyncer synchronizes one order. SyncOrderStatusCommandHandler is
// the implementation; consumers depend on this interface.
type OrderStatusSyncer interface {
	Handle(ctx context.Context, command SyncOrderStatusCommand) (SyncOrderStatusResult, error)
}

// SyncOrderStatusCommandHandler is the status synchronizer.
//
// Every failure is returned as *errs.StatusSyncError, which matches
// errs.ErrStatusSync as well as the underlying cause. Running the same
// command twice without a task write in between changes nothing the second
// time.
type SyncOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	policy     services.StatusPolicy
	metrics    ports.WorkflowMetrics
	clock      Clock
}

var _ OrderStatusSyncer = SyncOrderStatusCommandHandler{}

// NewSyncOrderStatusCommandHandler creates the synchronizer. metrics may be nil.
func NewSyncOrderStatusCommandHandler(
	uowFactory UoWFactory,
	policy services.StatusPolicy,
	metrics ports.WorkflowMetrics,
	clock Clock,
) SyncOrderStatusCommandHandler {
	return SyncOrderStatusCommandHandler{
		uowFactory: uowFactory,
		policy:     policy,
		metrics:    metrics,
		clock:      clock,
	}
}

func (h SyncOrderStatusCommandHandler) Handle(
	ctx context.Context,
	command SyncOrderStatusCommand,
) (SyncOrderStatusResult, error) {
	if err := command.Validate(); err != nil {
		return SyncOrderStatusResult{}, err
	}

	result, err := h.sync(ctx, command)
	switch {
	case err != nil:
		h.record(ports.SyncFailed)
		taskID := ""
		if id := command.TaskID(); id != nil {
			taskID = id.String()
		}
		return result, errs.NewStatusSyncError(command.OrderID().String(), taskID, err)
	case result.Skipped:
		h.record(ports.SyncSkipped)
	case result.Changed:
		h.record(ports.SyncChanged)
	default:
		h.record(ports.SyncUnchanged)
	}
	return result, nil
}

func (h SyncOrderStatusCommandHandler) sync(
	ctx context.Context,
	command SyncOrderStatusCommand,
) (SyncOrderStatusResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncOrderStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return SyncOrderStatusResult{}, err
	}

	result := SyncOrderStatusResult{Previous: o.Status(), Current: o.Status()}
	if o.Status().IsTerminal() {
		result.Skipped = true
		return result, nil
	}

	var (
		target  order.Status
		changed bool
	)
	if command.IsManual() {
		// Orders past quality check are moved by close-out only.
		if o.Status() == order.ReadyToDeliver {
			result.Skipped = true
			return result, nil
		}

		latest, latestErr := uow.TaskRepository().GetLatestForOrder(ctx, o.ID())
		switch {
		case errors.Is(latestErr, errs.ErrObjectNotFound):
			target, changed = order.Placed, o.Status() != order.Placed
		case latestErr != nil:
			return result, latestErr
		default:
			target, changed = h.policy.Decide(o.Status(), latest.Stage())
		}
	} else {
		target, changed = h.policy.Decide(o.Status(), command.Stage())
	}

	if !changed {
		return result, nil
	}

	if _, err = o.SyncStatus(target, h.clock.now()); err != nil {
		return result, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return result, err
	}
	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	result.Current = o.Status()
	result.Changed = true
	return result, nil
}

func (h SyncOrderStatusCommandHandler) record(outcome ports.SyncOutcome) {
	if h.metrics != nil {
		h.metrics.SyncFinished(h.policy.Name(), outcome)
	}
}
