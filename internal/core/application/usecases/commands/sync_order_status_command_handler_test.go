package commands_test

import (
	"errors"
	"testing"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/domain/services"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskSavedCommand(t *testing.T, orderID kernel.UUID, stage task.Stage) commands.SyncOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewTaskSavedSyncCommand(orderID, kernel.NewUUID(), stage)
	require.NoError(t, err)
	return cmd
}

func manualCommand(t *testing.T, orderID kernel.UUID) commands.SyncOrderStatusCommand {
	t.Helper()
	cmd, err := commands.NewSyncOrderStatusCommand(orderID)
	require.NoError(t, err)
	return cmd
}

func TestSyncOrderStatusCommandHandler_TaskSaved(t *testing.T) {
	tests := []struct {
		name     string
		policy   services.StatusPolicy
		current  order.Status
		stage    task.Stage
		expected order.Status
		changed  bool
	}{
		{"placed order follows first task", services.LastWriteWins{}, order.Placed, task.Cutting, order.Cutting, true},
		{"last write wins regresses", services.LastWriteWins{}, order.Tailoring, task.Cutting, order.Cutting, true},
		{"monotonic keeps later stage", services.Monotonic{}, order.Tailoring, task.Cutting, order.Tailoring, false},
		{"monotonic advances", services.Monotonic{}, order.Cutting, task.QualityCheck, order.QualityCheck, true},
		{"same stage is a no-op", services.LastWriteWins{}, order.Handworking, task.Handworking, order.Handworking, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newFixture()
			metrics := new(MockMetrics)
			o := mustOrder("ORD-400", tt.current)

			f.uow.On("Begin", ctx).Return(nil).Once()
			f.uow.On("Rollback", ctx).Return(nil).Once()
			f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
			if tt.changed {
				f.orders.On("Update", ctx, o).Return(nil).Once()
				f.uow.On("Commit", ctx).Return(nil).Once()
				metrics.On("SyncFinished", tt.policy.Name(), ports.SyncChanged).Once()
			} else {
				metrics.On("SyncFinished", tt.policy.Name(), ports.SyncUnchanged).Once()
			}

			h := commands.NewSyncOrderStatusCommandHandler(f.factory, tt.policy, metrics, f.clock)
			res, err := h.Handle(ctx, taskSavedCommand(t, o.ID(), tt.stage))

			require.NoError(t, err)
			assert.Equal(t, tt.current, res.Previous)
			assert.Equal(t, tt.expected, res.Current)
			assert.Equal(t, tt.changed, res.Changed)
			assert.Equal(t, tt.expected, o.Status())
			f.assert(t)
			metrics.AssertExpectations(t)
		})
	}
}

func TestSyncOrderStatusCommandHandler_Manual(t *testing.T) {
	t.Run("order without tasks returns to placed", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-401", order.Cutting)

		f.expectTx(ctx, nil)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.tasks.On("GetLatestForOrder", ctx, o.ID()).
			Return((*task.Task)(nil), errs.NewObjectNotFoundError("task", o.ID().String())).Once()
		f.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.Monotonic{}, nil, f.clock)
		res, err := h.Handle(ctx, manualCommand(t, o.ID()))

		require.NoError(t, err)
		assert.True(t, res.Changed)
		assert.Equal(t, order.Placed, o.Status())
		f.assert(t)
	})

	t.Run("latest task decides", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-402", order.Cutting)
		latest := mustTask(o.ID(), task.Tailoring, kernel.NewUUID())

		f.expectTx(ctx, nil)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.tasks.On("GetLatestForOrder", ctx, o.ID()).Return(latest, nil).Once()
		f.orders.On("Update", ctx, o).Return(nil).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, nil, f.clock)
		res, err := h.Handle(ctx, manualCommand(t, o.ID()))

		require.NoError(t, err)
		assert.Equal(t, order.Tailoring, res.Current)
		assert.Equal(t, fixedNow, o.UpdatedAt())
		f.assert(t)
	})

	t.Run("ready to deliver is left alone", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		metrics := new(MockMetrics)
		metrics.On("SyncFinished", services.LastWriteWinsPolicy, ports.SyncSkipped).Once()
		o := mustOrder("ORD-403", order.ReadyToDeliver)

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, metrics, f.clock)
		res, err := h.Handle(ctx, manualCommand(t, o.ID()))

		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Equal(t, order.ReadyToDeliver, o.Status())
		f.assert(t)
		metrics.AssertExpectations(t)
	})
}

func TestSyncOrderStatusCommandHandler_IsIdempotent(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	o := mustOrder("ORD-404", order.Placed)
	cmd := taskSavedCommand(t, o.ID(), task.Handworking)

	f.uow.On("Begin", ctx).Return(nil).Twice()
	f.uow.On("Rollback", ctx).Return(nil).Twice()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Twice()
	f.orders.On("Update", ctx, o).Return(nil).Once()

	h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, nil, f.clock)
	first, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	snapshot := *o

	f.now = fixedNow.Add(time.Hour)
	second, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, first.Changed)
	assert.False(t, second.Changed)
	assert.Equal(t, snapshot, *o)
	f.assert(t)
}

func TestSyncOrderStatusCommandHandler_Failures(t *testing.T) {
	t.Run("unknown order is a sync error", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		metrics := new(MockMetrics)
		metrics.On("SyncFinished", services.LastWriteWinsPolicy, ports.SyncFailed).Once()
		orderID := kernel.NewUUID()
		cmd := taskSavedCommand(t, orderID, task.Cutting)

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, orderID).
			Return((*order.Order)(nil), errs.NewObjectNotFoundError("order", orderID.String())).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, metrics, f.clock)
		_, err := h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStatusSync)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		var syncErr *errs.StatusSyncError
		require.ErrorAs(t, err, &syncErr)
		assert.Equal(t, orderID.String(), syncErr.OrderID)
		assert.Equal(t, cmd.TaskID().String(), syncErr.TaskID)
		f.assert(t)
		metrics.AssertExpectations(t)
	})

	t.Run("update failure is a sync error", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-405", order.Placed)
		updateErr := errors.New("deadlock detected")

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
		f.orders.On("Update", ctx, o).Return(updateErr).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, nil, f.clock)
		_, err := h.Handle(ctx, taskSavedCommand(t, o.ID(), task.Cutting))

		require.ErrorIs(t, err, errs.ErrStatusSync)
		require.ErrorIs(t, err, updateErr)
		f.assert(t)
	})

	t.Run("delivered order is skipped", func(t *testing.T) {
		ctx := t.Context()
		f := newFixture()
		o := mustOrder("ORD-406", order.Delivered)

		f.expectAbortedTx(ctx)
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

		h := commands.NewSyncOrderStatusCommandHandler(f.factory, services.LastWriteWins{}, nil, f.clock)
		res, err := h.Handle(ctx, taskSavedCommand(t, o.ID(), task.Cutting))

		require.NoError(t, err)
		assert.True(t, res.Skipped)
		assert.Equal(t, order.Delivered, o.Status())
		f.assert(t)
	})
}
