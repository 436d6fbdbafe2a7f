package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a new order, or a line item when a parent
// order is given. Details are validated by the order aggregate itself.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("ORD-200/1", &parentID, order.Details{
//	    CustomerID:   customerID,
//	    ServiceID:    serviceID,
//	    Category:     "Kurta",
//	    ExpectedDate: expected,
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number   kernel.OrderNumber
	parentID *kernel.UUID
	details  order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order number and the optional parent id.
func NewCreateOrderCommand(number string, parentID *kernel.UUID, details order.Details) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setNumber(number),
		command.setParentID(parentID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Number() kernel.OrderNumber {
	return c.number
}

// ParentID returns the parent order of a line item, or nil for a main order.
func (c CreateOrderCommand) ParentID() *kernel.UUID {
	return c.parentID
}

func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setNumber(number string) error {
	n, err := kernel.NewOrderNumber(number)
	if err != nil {
		return err
	}

	c.number = n
	return nil
}

func (c *CreateOrderCommand) setParentID(parentID *kernel.UUID) error {
	if parentID == nil {
		return nil
	}
	if err := parentID.Validate(); err != nil {
		return err
	}

	id := *parentID
	c.parentID = &id
	return nil
}
