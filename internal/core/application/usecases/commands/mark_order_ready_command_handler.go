package commands

import (
	"context"
	"errors"
	"fmt"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"
)

// MarkOrderReadyCommandHandler moves an order from Quality Check to Ready to
// Deliver. The order's active quality check task must be Done.
type MarkOrderReadyCommandHandler struct {
	uowFactory UoWFactory
	clock      Clock
}

func NewMarkOrderReadyCommandHandler(uowFactory UoWFactory, clock Clock) MarkOrderReadyCommandHandler {
	return MarkOrderReadyCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkOrderReadyCommandHandler) Handle(ctx context.Context, command MarkOrderReadyCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	qc, err := uow.TaskRepository().GetActive(ctx, o.ID(), task.QualityCheck)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewValueIsInvalidErrorWithCause("status", errors.New("quality check has not been assigned"))
	}
	if err != nil {
		return nil, err
	}
	if qc.Status() != task.Done {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("quality check task %s is %s", qc.ID(), qc.Status()),
		)
	}

	if err = o.MarkReady(h.clock.now()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// MarkOrderDeliveredCommandHandler closes a ready order and stamps its actual
// delivery date. Delivered orders are never changed again.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory, clock Clock) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h MarkOrderDeliveredCommandHandler) Handle(
	ctx context.Context,
	command MarkOrderDeliveredCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.MarkDelivered(h.clock.now()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
