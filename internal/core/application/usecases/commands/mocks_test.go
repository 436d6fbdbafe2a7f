package commands_test

import (
	"context"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/staff"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ListIDsInProduction(ctx context.Context) ([]kernel.UUID, error) {
	args := m.Called(ctx)
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockTaskRepository struct{ mock.Mock }

func (m *MockTaskRepository) Add(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Update(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Get(ctx context.Context, id kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTaskRepository) GetActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (*task.Task, error) {
	args := m.Called(ctx, orderID, stage)
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) CountActive(ctx context.Context, orderID kernel.UUID, stage task.Stage) (int64, error) {
	args := m.Called(ctx, orderID, stage)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTaskRepository) GetLatestForOrder(ctx context.Context, orderID kernel.UUID) (*task.Task, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(*task.Task), args.Error(1)
}

type MockStaffDirectory struct{ mock.Mock }

func (m *MockStaffDirectory) Get(ctx context.Context, id kernel.UUID) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*staff.Staff), args.Error(1)
}

func (m *MockStaffDirectory) ListByRole(ctx context.Context, role staff.Role) ([]*staff.Staff, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]*staff.Staff), args.Error(1)
}

// MockUoW satisfies both commands.UoW and commands.OrderUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) TaskRepository() ports.TaskRepository {
	args := m.Called()
	return args.Get(0).(ports.TaskRepository)
}

func (m *MockUoW) StaffDirectory() ports.StaffDirectory {
	args := m.Called()
	return args.Get(0).(ports.StaffDirectory)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockSyncer struct{ mock.Mock }

func (m *MockSyncer) Handle(
	ctx context.Context,
	command commands.SyncOrderStatusCommand,
) (commands.SyncOrderStatusResult, error) {
	args := m.Called(ctx, command)
	return args.Get(0).(commands.SyncOrderStatusResult), args.Error(1)
}

type MockMetrics struct{ mock.Mock }

func (m *MockMetrics) EventPublished(stage string) { m.Called(stage) }

func (m *MockMetrics) SyncFinished(policy string, outcome ports.SyncOutcome) {
	m.Called(policy, outcome)
}

func (m *MockMetrics) ResyncCompleted(duration time.Duration, orders, failures int) {
	m.Called(duration, orders, failures)
}

// fixture wires a unit of work with repository mocks for one handler call.
type fixture struct {
	uow     *MockUoW
	factory *MockUoWFactory
	orders  *MockOrderRepository
	tasks   *MockTaskRepository
	staff   *MockStaffDirectory
	clock   commands.Clock
	now     time.Time
}

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newFixture() *fixture {
	f := &fixture{
		uow:     new(MockUoW),
		factory: new(MockUoWFactory),
		orders:  new(MockOrderRepository),
		tasks:   new(MockTaskRepository),
		staff:   new(MockStaffDirectory),
		now:     fixedNow,
	}
	f.clock = func() time.Time { return f.now }
	f.factory.On("Create").Return(f.uow)
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("TaskRepository").Return(f.tasks).Maybe()
	f.uow.On("StaffDirectory").Return(f.staff).Maybe()
	return f
}

// expectTx expects a transaction that commits (commitErr may be nil).
// Rollback is always called by the deferred cleanup.
func (f *fixture) expectTx(ctx context.Context, commitErr error) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(commitErr).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

// expectAbortedTx expects a transaction that is only rolled back.
func (f *fixture) expectAbortedTx(ctx context.Context) {
	f.uow.On("Begin", ctx).Return(nil).Once()
	f.uow.On("Rollback", ctx).Return(nil).Once()
}

func (f *fixture) assert(t mock.TestingT) {
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.tasks.AssertExpectations(t)
	f.staff.AssertExpectations(t)
}

func mustOrder(number string, status order.Status) *order.Order {
	no, err := kernel.NewOrderNumber(number)
	if err != nil {
		panic(err)
	}
	o, err := order.RestoreOrder(kernel.NewUUID(), no, nil, order.Details{
		CustomerID:   kernel.NewUUID(),
		ServiceID:    kernel.NewUUID(),
		Category:     "Sherwani",
		ExpectedDate: fixedNow.AddDate(0, 0, 14),
	}, status, nil, nil, fixedNow, fixedNow)
	if err != nil {
		panic(err)
	}
	return o
}

func mustStaff(name string, role staff.Role, active bool) *staff.Staff {
	s, err := staff.NewStaff(kernel.NewUUID(), name, role, true, 5, active)
	if err != nil {
		panic(err)
	}
	return s
}

func mustTask(orderID kernel.UUID, stage task.Stage, assignee kernel.UUID) *task.Task {
	t, err := task.NewTask(kernel.NewUUID(), orderID, stage, assignee, kernel.NewUUID(), nil, "", fixedNow.Add(-time.Hour))
	if err != nil {
		panic(err)
	}
	return t
}
