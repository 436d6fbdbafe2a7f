package commands_test

import (
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkOrderReadyCommandHandler_Handle(t *testing.T) {
	t.Run("done quality check closes production", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-600", order.QualityCheck)
		qc := mustTask(o.ID(), task.QualityCheck, kernel.NewUUID())
		require.NoError(t, qc.ChangeStatus(task.Done, "", fixedNow))
		cmd, err := commands.NewMarkOrderReadyCommand(o.ID())
		require.NoError(t, err)

		f.expectTx(ctx, nil)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.tasks.On("GetActive", ctx, o.ID(), task.QualityCheck).Return(qc, nil).Once()
		f.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewMarkOrderReadyCommandHandler(f.factory, f.clock)
		ready, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.ReadyToDeliver, ready.Status())
		f.assert(t)
	})

	t.Run("quality check still open", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-601", order.QualityCheck)
		qc := mustTask(o.ID(), task.QualityCheck, kernel.NewUUID())
		cmd, err := commands.NewMarkOrderReadyCommand(o.ID())
		require.NoError(t, err)

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.tasks.On("GetActive", ctx, o.ID(), task.QualityCheck).Return(qc, nil).Once()

		h := commands.NewMarkOrderReadyCommandHandler(f.factory, f.clock)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.QualityCheck, o.Status())
		f.assert(t)
	})

	t.Run("quality check never assigned", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-602", order.Tailoring)
		cmd, err := commands.NewMarkOrderReadyCommand(o.ID())
		require.NoError(t, err)

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.tasks.On("GetActive", ctx, o.ID(), task.QualityCheck).
			Return((*task.Task)(nil), errs.NewObjectNotFoundError("activeTask", "")).Once()

		h := commands.NewMarkOrderReadyCommandHandler(f.factory, f.clock)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, "status", errs.Field(err))
		f.assert(t)
	})
}

func TestMarkOrderDeliveredCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	o := mustOrder("ORD-603", order.ReadyToDeliver)
	cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	orders.On("Update", ctx, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewMarkOrderDeliveredCommandHandler(factory, func() time.Time { return fixedNow })
	delivered, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, delivered.Status())
	assert.Equal(t, fixedNow, *delivered.ActualDeliveryDate())
	uow.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestMarkOrderDeliveredCommandHandler_NotReady(t *testing.T) {
	ctx := t.Context()
	uow := new(MockUoW)
	factory := new(MockOrderUoWFactory)
	orders := new(MockOrderRepository)
	o := mustOrder("ORD-604", order.Tailoring)
	cmd, err := commands.NewMarkOrderDeliveredCommand(o.ID())
	require.NoError(t, err)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orders).Once()
	orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewMarkOrderDeliveredCommandHandler(factory, nil)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Nil(t, o.ActualDeliveryDate())
	uow.AssertExpectations(t)
}
