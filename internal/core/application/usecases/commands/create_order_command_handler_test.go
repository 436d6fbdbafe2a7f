package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func orderDetails() order.Details {
	return order.Details{
		CustomerID:   kernel.NewUUID(),
		ServiceID:    kernel.NewUUID(),
		Category:     "Kurta",
		Measurements: []order.Measurement{{FieldName: "length", Value: "42"}},
		Priority:     order.Urgent,
		ExpectedDate: fixedNow.AddDate(0, 0, 10),
	}
}

func TestCreateOrderCommandHandler_MainOrder(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	cmd, err := commands.NewCreateOrderCommand("ORD-100", nil, orderDetails())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, func() time.Time { return fixedNow })
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "ORD-100", created.Number().String())
	assert.Equal(t, order.Placed, created.Status())
	assert.False(t, created.IsLineItem())
	assert.Equal(t, order.Urgent, created.Details().Priority)
	assert.Equal(t, fixedNow, created.CreatedAt())
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_LineItem(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	parent := mustOrder("ORD-200", order.Placed)
	parentID := parent.ID()
	cmd, err := commands.NewCreateOrderCommand("ORD-200/1", &parentID, orderDetails())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, parentID).Return(parent, nil).Once()
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil)
	item, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, item.IsLineItem())
	assert.True(t, item.ParentID().IsEqual(parentID))
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_UnknownParent(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	parentID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand("ORD-201/1", &parentID, orderDetails())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, parentID).
		Return((*order.Order)(nil), errs.NewObjectNotFoundError("order", parentID.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, "parentOrderId", errs.Field(err))
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_DuplicateNumber(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	cmd, err := commands.NewCreateOrderCommand("ORD-100", nil, orderDetails())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).
		Return(errs.NewObjectConflictError("orderNo", "ORD-100")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectConflict)
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_InvalidDetails(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	cmd, err := commands.NewCreateOrderCommand("ORD-102", nil, order.Details{})
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewCreateOrderCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)

	require.True(t, errs.IsValidation(err))
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
