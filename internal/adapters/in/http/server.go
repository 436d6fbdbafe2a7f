// Package http is the REST adapter of the workflow: request binding, caller
// identity, OpenAPI request validation and mapping of domain errors onto
// status codes.
package http

import (
	"log/slog"
	"net/http"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"
	"atelier/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AssignTask         commands.AssignTaskCommandHandler
	UpdateTaskStatus   commands.UpdateTaskStatusCommandHandler
	ReassignTask       commands.ReassignTaskCommandHandler
	DeleteTask         commands.DeleteTaskCommandHandler
	SyncOrderStatus    commands.OrderStatusSyncer
	MarkOrderReady     commands.MarkOrderReadyCommandHandler
	MarkOrderDelivered commands.MarkOrderDeliveredCommandHandler

	GetOrdersWithItems queries.GetOrdersWithItemsQueryHandler
	GetTasksForStaff   queries.GetTasksForStaffQueryHandler
	GetAssignableStaff queries.GetAssignableStaffQueryHandler
	ListTasks          queries.ListTasksQueryHandler
}

// Server implements the REST endpoints on top of the command and query handlers.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{h: handlers, logger: logger.With("component", "http")}
}

// Register mounts the API routes on g, which is expected to be /api/v1.
func (s *Server) Register(g *echo.Group) {
	g.POST("/orders", s.CreateOrder)
	g.GET("/orders/with-items", s.GetOrdersWithItems)
	g.POST("/orders/:orderId/sync", s.SyncOrderStatus)
	g.POST("/orders/:orderId/ready", s.MarkOrderReady)
	g.POST("/orders/:orderId/deliver", s.MarkOrderDelivered)

	g.GET("/tasks", s.ListTasks)
	g.POST("/tasks", s.AssignTask)
	g.GET("/tasks/staff/:staffId", s.GetTasksForStaff)
	g.PUT("/tasks/:taskId/status", s.UpdateTaskStatus)
	g.POST("/tasks/:taskId/reassign", s.ReassignTask)
	g.DELETE("/tasks/:taskId", s.DeleteTask)

	g.GET("/staff/assignable/:stage", s.GetAssignableStaff)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "", "Invalid request body")
	}

	customerID, err := domainID("customerId", body.CustomerID)
	if err != nil {
		return s.fail(ctx, err)
	}
	serviceID, err := domainID("serviceId", body.ServiceID)
	if err != nil {
		return s.fail(ctx, err)
	}
	parentID, err := optionalDomainID("parentOrderId", body.ParentOrderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	paymentID, err := optionalDomainID("paymentId", body.PaymentID)
	if err != nil {
		return s.fail(ctx, err)
	}

	details := order.Details{
		CustomerID:   customerID,
		ServiceID:    serviceID,
		Category:     body.Category,
		Color:        body.Color,
		RawMaterial:  order.RawMaterial{Cloth: body.RawMaterial.Cloth, Lining: body.RawMaterial.Lining},
		Priority:     order.Priority(body.Priority),
		ExpectedDate: body.ExpectedDate.Time,
		PaymentID:    paymentID,
	}
	for _, m := range body.Measurements {
		details.Measurements = append(details.Measurements, order.Measurement{FieldName: m.FieldName, Value: m.Value})
	}

	cmd, err := commands.NewCreateOrderCommand(body.OrderNo, parentID, details)
	if err != nil {
		return s.fail(ctx, err)
	}
	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toOrder(created))
}

// GetOrdersWithItems handles GET /api/v1/orders/with-items.
func (s *Server) GetOrdersWithItems(ctx echo.Context) error {
	groups, err := s.h.GetOrdersWithItems.Handle(ctx.Request().Context(), queries.NewGetOrdersWithItemsQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]OrderWithItems, 0, len(groups))
	for _, g := range groups {
		items := make([]OrderSummary, 0, len(g.Items))
		for _, item := range g.Items {
			items = append(items, toOrderSummary(item))
		}
		response = append(response, OrderWithItems{MainOrder: toOrderSummary(g.Order), Items: items})
	}
	return ctx.JSON(http.StatusOK, response)
}

// SyncOrderStatus handles POST /api/v1/orders/{orderId}/sync.
func (s *Server) SyncOrderStatus(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewSyncOrderStatusCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	result, err := s.h.SyncOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toSyncResult(result))
}

// MarkOrderReady handles POST /api/v1/orders/{orderId}/ready.
func (s *Server) MarkOrderReady(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkOrderReadyCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.h.MarkOrderReady.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// MarkOrderDelivered handles POST /api/v1/orders/{orderId}/deliver.
func (s *Server) MarkOrderDelivered(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	o, err := s.h.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// AssignTask handles POST /api/v1/tasks.
func (s *Server) AssignTask(ctx echo.Context) error {
	caller, ok := callerID(ctx)
	if !ok {
		return badRequest(ctx, StaffIDHeader, StaffIDHeader+" header is required")
	}

	var body AssignTask
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "", "Invalid request body")
	}
	orderID, err := domainID("orderId", body.OrderID)
	if err != nil {
		return s.fail(ctx, err)
	}
	staffID, err := domainID("staffId", body.StaffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	stage, err := task.ParseStage(body.Stage)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewAssignTaskCommand(orderID, stage, staffID, caller, body.Deadline, body.Remarks, body.ForceReassign)
	if err != nil {
		return s.fail(ctx, err)
	}
	assigned, err := s.h.AssignTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toTask(assigned))
}

// ListTasks handles GET /api/v1/tasks?stage=&status=.
func (s *Server) ListTasks(ctx echo.Context) error {
	var rawStage, rawStatus *string
	if err := runtime.BindQueryParameter("form", true, false, "stage", ctx.QueryParams(), &rawStage); err != nil {
		return badRequest(ctx, "stage", err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &rawStatus); err != nil {
		return badRequest(ctx, "status", err.Error())
	}

	var (
		stage  *task.Stage
		status *task.Status
	)
	if rawStage != nil && *rawStage != "" {
		parsed, err := task.ParseStage(*rawStage)
		if err != nil {
			return s.fail(ctx, err)
		}
		stage = &parsed
	}
	if rawStatus != nil && *rawStatus != "" {
		parsed, err := task.ParseStatus(*rawStatus)
		if err != nil {
			return s.fail(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewListTasksQuery(stage, status)
	if err != nil {
		return s.fail(ctx, err)
	}
	views, err := s.h.ListTasks.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTaskSummaries(views))
}

// GetTasksForStaff handles GET /api/v1/tasks/staff/{staffId}.
func (s *Server) GetTasksForStaff(ctx echo.Context) error {
	staffID, err := pathID(ctx, "staffId")
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetTasksForStaffQuery(staffID)
	if err != nil {
		return s.fail(ctx, err)
	}
	board, err := s.h.GetTasksForStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, TaskBoard{
		Pending:    toTaskSummaries(board.Pending),
		InProgress: toTaskSummaries(board.InProgress),
		Done:       toTaskSummaries(board.Done),
		Reassigned: toTaskSummaries(board.Reassigned),
	})
}

// UpdateTaskStatus handles PUT /api/v1/tasks/{taskId}/status.
func (s *Server) UpdateTaskStatus(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body UpdateTaskStatus
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "", "Invalid request body")
	}
	status, err := task.ParseStatus(body.Status)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewUpdateTaskStatusCommand(taskID, status, body.Remarks)
	if err != nil {
		return s.fail(ctx, err)
	}
	updated, err := s.h.UpdateTaskStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTask(updated))
}

// ReassignTask handles POST /api/v1/tasks/{taskId}/reassign.
func (s *Server) ReassignTask(ctx echo.Context) error {
	caller, ok := callerID(ctx)
	if !ok {
		return badRequest(ctx, StaffIDHeader, StaffIDHeader+" header is required")
	}
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return s.fail(ctx, err)
	}
	var body ReassignTask
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "", "Invalid request body")
	}
	newStaffID, err := domainID("newStaffId", body.NewStaffID)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewReassignTaskCommand(taskID, newStaffID, caller, body.Note)
	if err != nil {
		return s.fail(ctx, err)
	}
	successor, err := s.h.ReassignTask.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, toTask(successor))
}

// DeleteTask handles DELETE /api/v1/tasks/{taskId}.
func (s *Server) DeleteTask(ctx echo.Context) error {
	taskID, err := pathID(ctx, "taskId")
	if err != nil {
		return s.fail(ctx, err)
	}
	cmd, err := commands.NewDeleteTaskCommand(taskID)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err := s.h.DeleteTask.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetAssignableStaff handles GET /api/v1/staff/assignable/{stage}.
func (s *Server) GetAssignableStaff(ctx echo.Context) error {
	var rawStage string
	if err := runtime.BindStyledParameterWithOptions("simple", "stage", ctx.Param("stage"), &rawStage,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return badRequest(ctx, "stage", err.Error())
	}
	stage, err := task.ParseStage(rawStage)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetAssignableStaffQuery(stage)
	if err != nil {
		return s.fail(ctx, err)
	}
	ranked, err := s.h.GetAssignableStaff.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]AssignableStaff, 0, len(ranked))
	for _, m := range ranked {
		response = append(response, AssignableStaff{
			ID:         wireID(m.ID),
			Name:       m.Name,
			Role:       m.Role.String(),
			Certified:  m.Certified,
			Experience: m.Experience,
		})
	}
	return ctx.JSON(http.StatusOK, response)
}

// pathID binds a uuid path parameter the way generated oapi-codegen servers do.
func pathID(ctx echo.Context, name string) (kernel.UUID, error) {
	var raw openapi_types.UUID
	if err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true}); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return domainID(name, raw)
}

func domainID(field string, raw openapi_types.UUID) (kernel.UUID, error) {
	id, err := kernel.UUIDFromGoogle(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(field, err)
	}
	return id, nil
}

func optionalDomainID(field string, raw *openapi_types.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := domainID(field, *raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
