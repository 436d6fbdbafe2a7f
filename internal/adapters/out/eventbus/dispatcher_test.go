package eventbus_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"atelier/internal/adapters/out/eventbus"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTaskSavedHandler struct{ mock.Mock }

func (m *MockTaskSavedHandler) Handle(ctx context.Context, event task.TaskSaved) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) EventPublished(stage string) { m.Called(stage) }

func (m *MockMetrics) SyncFinished(policy string, outcome ports.SyncOutcome) {
	m.Called(policy, outcome)
}

func (m *MockMetrics) ResyncCompleted(duration time.Duration, orders, failures int) {
	m.Called(duration, orders, failures)
}

func newEvent() task.TaskSaved {
	return task.TaskSaved{
		EventID:    "01HZX",
		TaskID:     kernel.NewUUID(),
		OrderID:    kernel.NewUUID(),
		Stage:      task.Handworking,
		OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
}

func TestDispatcher_Publish(t *testing.T) {
	ctx := context.Background()
	evt := newEvent()

	metrics := new(MockMetrics)
	metrics.On("EventPublished", "Handworking").Once()

	first := new(MockTaskSavedHandler)
	second := new(MockTaskSavedHandler)
	mock.InOrder(
		first.On("Handle", ctx, evt).Return(nil).Once(),
		second.On("Handle", ctx, evt).Return(nil).Once(),
	)

	d := eventbus.NewDispatcher(metrics, slog.New(slog.DiscardHandler))
	d.Subscribe(first)
	d.Subscribe(second)
	d.Publish(ctx, evt)

	first.AssertExpectations(t)
	second.AssertExpectations(t)
	metrics.AssertExpectations(t)
}

func TestDispatcher_HandlerFailuresAreContained(t *testing.T) {
	ctx := context.Background()
	evt := newEvent()
	var logs bytes.Buffer

	failing := new(MockTaskSavedHandler)
	failing.On("Handle", ctx, evt).Return(errors.New("database is gone")).Once()
	panicking := new(MockTaskSavedHandler)
	panicking.On("Handle", ctx, evt).Panic("boom").Once()
	healthy := new(MockTaskSavedHandler)
	healthy.On("Handle", ctx, evt).Return(nil).Once()

	d := eventbus.NewDispatcher(nil, slog.New(slog.NewTextHandler(&logs, nil)))
	d.Subscribe(failing)
	d.Subscribe(panicking)
	d.Subscribe(healthy)

	assert.NotPanics(t, func() { d.Publish(ctx, evt) })

	healthy.AssertExpectations(t)
	assert.Contains(t, logs.String(), "database is gone")
	assert.Contains(t, logs.String(), "handler panicked: boom")
	assert.Contains(t, logs.String(), "component=eventbus")
	assert.Contains(t, logs.String(), evt.OrderID.String())
}
