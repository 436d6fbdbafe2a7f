package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"
)

// CreateOrderCommandHandler creates main orders and line items in Placed status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, nil)
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrObjectConflict) {
//	    // order number already taken
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      Clock
}

// NewCreateOrderCommandHandler creates a handler for order intake.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, clock Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle persists a new order. A line item's parent must exist and must be a
// main order; an unknown parent is reported as errs.ErrObjectNotFound.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
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
	now := h.clock.now()

	var (
		created *order.Order
		err     error
	)
	if parentID := command.ParentID(); parentID != nil {
		parent, getErr := orderRepo.Get(ctx, *parentID)
		if errors.Is(getErr, errs.ErrObjectNotFound) {
			return nil, errs.NewObjectNotFoundErrorWithCause("parentOrderId", parentID.String(), getErr)
		}
		if getErr != nil {
			return nil, getErr
		}
		created, err = order.NewLineItem(kernel.NewUUID(), command.Number(), parent, command.Details(), now)
	} else {
		created, err = order.NewOrder(kernel.NewUUID(), command.Number(), command.Details(), now)
	}
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, created); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
