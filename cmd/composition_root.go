package cmd

import (
	"log/slog"

	httpadapter "atelier/internal/adapters/in/http"
	"atelier/internal/adapters/out/eventbus"
	"atelier/internal/adapters/out/metrics"
	"atelier/internal/adapters/out/postgres"
	"atelier/internal/adapters/out/postgres/staffrepo"
	"atelier/internal/core/application/eventhandlers"
	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/services"
	"atelier/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	policy     services.StatusPolicy
	metrics    *metrics.Collector
	dispatcher *eventbus.Dispatcher
	uowFactory *postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot wires the event dispatcher and subscribes order status
// synchronization to task writes.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := services.NewStatusPolicy(config.StatusPolicy)
	if err != nil {
		return nil, err
	}

	collector := metrics.NewCollector()
	dispatcher := eventbus.NewDispatcher(collector, logger)
	c := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		policy:     policy,
		metrics:    collector,
		dispatcher: dispatcher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, dispatcher),
	}
	dispatcher.Subscribe(eventhandlers.NewTaskSavedHandler(c.CreateSyncOrderStatusCommandHandler(), logger))
	return c, nil
}

func (c *CompositionRoot) Metrics() *metrics.Collector {
	return c.metrics
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) unitOfWorkFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateAssignTaskCommandHandler() commands.AssignTaskCommandHandler {
	return commands.NewAssignTaskCommandHandler(c.unitOfWorkFactory(), c.config.EnforceStageRoles, nil)
}

func (c *CompositionRoot) CreateUpdateTaskStatusCommandHandler() commands.UpdateTaskStatusCommandHandler {
	return commands.NewUpdateTaskStatusCommandHandler(c.unitOfWorkFactory(), nil)
}

func (c *CompositionRoot) CreateReassignTaskCommandHandler() commands.ReassignTaskCommandHandler {
	return commands.NewReassignTaskCommandHandler(c.unitOfWorkFactory(), c.config.EnforceStageRoles, nil)
}

func (c *CompositionRoot) CreateDeleteTaskCommandHandler() commands.DeleteTaskCommandHandler {
	return commands.NewDeleteTaskCommandHandler(c.unitOfWorkFactory(), c.CreateSyncOrderStatusCommandHandler(), nil, c.logger)
}

func (c *CompositionRoot) CreateSyncOrderStatusCommandHandler() commands.SyncOrderStatusCommandHandler {
	return commands.NewSyncOrderStatusCommandHandler(c.unitOfWorkFactory(), c.policy, c.metrics, nil)
}

func (c *CompositionRoot) CreateResyncAllCommandHandler() commands.ResyncAllCommandHandler {
	return commands.NewResyncAllCommandHandler(c.orderUoWFactory(), c.CreateSyncOrderStatusCommandHandler(), c.metrics, c.logger)
}

func (c *CompositionRoot) CreateMarkOrderReadyCommandHandler() commands.MarkOrderReadyCommandHandler {
	return commands.NewMarkOrderReadyCommandHandler(c.unitOfWorkFactory(), nil)
}

func (c *CompositionRoot) CreateMarkOrderDeliveredCommandHandler() commands.MarkOrderDeliveredCommandHandler {
	return commands.NewMarkOrderDeliveredCommandHandler(c.orderUoWFactory(), nil)
}

func (c *CompositionRoot) CreateGetOrdersWithItemsQueryHandler() queries.GetOrdersWithItemsQueryHandler {
	return queries.NewGetOrdersWithItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTasksForStaffQueryHandler() queries.GetTasksForStaffQueryHandler {
	return queries.NewGetTasksForStaffQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAssignableStaffQueryHandler() queries.GetAssignableStaffQueryHandler {
	return queries.NewGetAssignableStaffQueryHandler(staffrepo.NewGormStaffDirectory(c.gormDB))
}

func (c *CompositionRoot) CreateListTasksQueryHandler() queries.ListTasksQueryHandler {
	return queries.NewListTasksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AssignTask:         c.CreateAssignTaskCommandHandler(),
		UpdateTaskStatus:   c.CreateUpdateTaskStatusCommandHandler(),
		ReassignTask:       c.CreateReassignTaskCommandHandler(),
		DeleteTask:         c.CreateDeleteTaskCommandHandler(),
		SyncOrderStatus:    c.CreateSyncOrderStatusCommandHandler(),
		MarkOrderReady:     c.CreateMarkOrderReadyCommandHandler(),
		MarkOrderDelivered: c.CreateMarkOrderDeliveredCommandHandler(),
		GetOrdersWithItems: c.CreateGetOrdersWithItemsQueryHandler(),
		GetTasksForStaff:   c.CreateGetTasksForStaffQueryHandler(),
		GetAssignableStaff: c.CreateGetAssignableStaffQueryHandler(),
		ListTasks:          c.CreateListTasksQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	resync := jobs.NewOrderResyncJob(c.CreateResyncAllCommandHandler(), c.config.ResyncSchedule, c.config.ResyncWorkers, c.logger)
	return jobs.NewJobManager(resync)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
