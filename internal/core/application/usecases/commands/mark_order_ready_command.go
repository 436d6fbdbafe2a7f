package commands

import (
	"errors"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var (
	ErrMarkOrderReadyCommandIsNotConstructed = errors.New(
		"MarkOrderReadyCommand must be created via NewMarkOrderReadyCommand constructor",
	)
	ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
		"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
	)
)

// MarkOrderReadyCommand closes production of an order once quality check is done.
type MarkOrderReadyCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderReadyCommand(orderID kernel.UUID) (MarkOrderReadyCommand, error) {
	command := MarkOrderReadyCommand{guard: guard.NewConstructorGuard()}
	if err := requireID("orderId", orderID, &command.orderID); err != nil {
		return MarkOrderReadyCommand{}, err
	}
	return command, nil
}

func (c MarkOrderReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderReadyCommandIsNotConstructed)
}

func (c MarkOrderReadyCommand) OrderID() kernel.UUID { return c.orderID }

// MarkOrderDeliveredCommand hands a ready order over to the customer.
type MarkOrderDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderDeliveredCommand(orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	command := MarkOrderDeliveredCommand{guard: guard.NewConstructorGuard()}
	if err := requireID("orderId", orderID, &command.orderID); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}
	return command, nil
}

func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID { return c.orderID }
