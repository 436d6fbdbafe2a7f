package http

import (
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/task"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Request bodies.

type Measurement struct {
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

type RawMaterial struct {
	Cloth  bool `json:"cloth"`
	Lining bool `json:"lining"`
}

type NewOrder struct {
	OrderNo       string              `json:"orderNo"`
	ParentOrderID *openapi_types.UUID `json:"parentOrderId,omitempty"`
	CustomerID    openapi_types.UUID  `json:"customerId"`
	ServiceID     openapi_types.UUID  `json:"serviceId"`
	Category      string              `json:"category"`
	Measurements  []Measurement       `json:"measurements,omitempty"`
	Color         string              `json:"color,omitempty"`
	RawMaterial   RawMaterial         `json:"rawMaterial"`
	Priority      string              `json:"priority,omitempty"`
	ExpectedDate  openapi_types.Date  `json:"expectedDate"`
	PaymentID     *openapi_types.UUID `json:"paymentId,omitempty"`
}

type AssignTask struct {
	OrderID       openapi_types.UUID `json:"orderId"`
	Stage         string             `json:"stage"`
	StaffID       openapi_types.UUID `json:"staffId"`
	Deadline      *time.Time         `json:"deadline,omitempty"`
	Remarks       string             `json:"remarks,omitempty"`
	ForceReassign bool               `json:"forceReassign,omitempty"`
}

type UpdateTaskStatus struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks,omitempty"`
}

type ReassignTask struct {
	NewStaffID openapi_types.UUID `json:"newStaffId"`
	Note       string             `json:"note,omitempty"`
}

// Response bodies.

type Order struct {
	ID                 openapi_types.UUID   `json:"id"`
	OrderNo            string               `json:"orderNo"`
	ParentOrderID      *openapi_types.UUID  `json:"parentOrderId,omitempty"`
	CustomerID         openapi_types.UUID   `json:"customerId"`
	ServiceID          openapi_types.UUID   `json:"serviceId"`
	Category           string               `json:"category"`
	Measurements       []Measurement        `json:"measurements"`
	Color              string               `json:"color,omitempty"`
	RawMaterial        RawMaterial          `json:"rawMaterial"`
	Priority           string               `json:"priority"`
	Status             string               `json:"status"`
	TaskIDs            []openapi_types.UUID `json:"taskIds"`
	ExpectedDate       openapi_types.Date   `json:"expectedDate"`
	ActualDeliveryDate *time.Time           `json:"actualDeliveryDate,omitempty"`
	PaymentID          *openapi_types.UUID  `json:"paymentId,omitempty"`
	CreatedAt          time.Time            `json:"createdAt"`
	UpdatedAt          time.Time            `json:"updatedAt"`
}

type HistoryEntry struct {
	Action string              `json:"action"`
	From   *openapi_types.UUID `json:"from,omitempty"`
	To     *openapi_types.UUID `json:"to,omitempty"`
	Note   string              `json:"note,omitempty"`
	At     time.Time           `json:"at"`
}

type Task struct {
	ID           openapi_types.UUID `json:"id"`
	OrderID      openapi_types.UUID `json:"orderId"`
	Stage        string             `json:"stage"`
	AssignedTo   openapi_types.UUID `json:"assignedTo"`
	AssignedBy   openapi_types.UUID `json:"assignedBy"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
	Status       string             `json:"status"`
	Remarks      string             `json:"remarks,omitempty"`
	StartedAt    *time.Time         `json:"startedAt,omitempty"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	IsReassigned bool               `json:"isReassigned"`
	History      []HistoryEntry     `json:"history"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

// TaskSummary is a task row of a list or a worklist.
type TaskSummary struct {
	ID           openapi_types.UUID `json:"id"`
	OrderID      openapi_types.UUID `json:"orderId"`
	OrderNo      string             `json:"orderNo"`
	Stage        string             `json:"stage"`
	AssignedTo   openapi_types.UUID `json:"assignedTo"`
	AssignedBy   openapi_types.UUID `json:"assignedBy"`
	Status       string             `json:"status"`
	Deadline     *time.Time         `json:"deadline,omitempty"`
	Remarks      string             `json:"remarks,omitempty"`
	IsReassigned bool               `json:"isReassigned"`
	StartedAt    *time.Time         `json:"startedAt,omitempty"`
	CompletedAt  *time.Time         `json:"completedAt,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt"`
}

type TaskBoard struct {
	Pending    []TaskSummary `json:"pending"`
	InProgress []TaskSummary `json:"inProgress"`
	Done       []TaskSummary `json:"done"`
	Reassigned []TaskSummary `json:"reassigned"`
}

type ActiveTask struct {
	ID         openapi_types.UUID `json:"id"`
	Stage      string             `json:"stage"`
	AssignedTo openapi_types.UUID `json:"assignedTo"`
	Status     string             `json:"status"`
	Deadline   *time.Time         `json:"deadline,omitempty"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

type OrderSummary struct {
	ID                 openapi_types.UUID  `json:"id"`
	OrderNo            string              `json:"orderNo"`
	ParentOrderID      *openapi_types.UUID `json:"parentOrderId,omitempty"`
	Category           string              `json:"category"`
	Priority           string              `json:"priority"`
	Status             string              `json:"status"`
	ExpectedDate       openapi_types.Date  `json:"expectedDate"`
	ActualDeliveryDate *time.Time          `json:"actualDeliveryDate,omitempty"`
	CreatedAt          time.Time           `json:"createdAt"`
	ActiveTasks        []ActiveTask        `json:"activeTasks"`
}

type OrderWithItems struct {
	MainOrder OrderSummary   `json:"mainOrder"`
	Items     []OrderSummary `json:"items"`
}

type SyncResult struct {
	Previous string `json:"previous"`
	Current  string `json:"current"`
	Changed  bool   `json:"changed"`
	Skipped  bool   `json:"skipped"`
}

type AssignableStaff struct {
	ID         openapi_types.UUID `json:"id"`
	Name       string             `json:"name"`
	Role       string             `json:"role"`
	Certified  bool               `json:"certified"`
	Experience int                `json:"experience"`
}

func wireID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func wireIDPtr(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	v := wireID(*id)
	return &v
}

func wireDate(t time.Time) openapi_types.Date {
	return openapi_types.Date{Time: t}
}

func toOrder(o *order.Order) Order {
	d := o.Details()
	measurements := make([]Measurement, 0, len(d.Measurements))
	for _, m := range d.Measurements {
		measurements = append(measurements, Measurement{FieldName: m.FieldName, Value: m.Value})
	}
	taskIDs := make([]openapi_types.UUID, 0, len(o.TaskIDs()))
	for _, id := range o.TaskIDs() {
		taskIDs = append(taskIDs, wireID(id))
	}

	return Order{
		ID:                 wireID(o.ID()),
		OrderNo:            o.Number().String(),
		ParentOrderID:      wireIDPtr(o.ParentID()),
		CustomerID:         wireID(d.CustomerID),
		ServiceID:          wireID(d.ServiceID),
		Category:           d.Category,
		Measurements:       measurements,
		Color:              d.Color,
		RawMaterial:        RawMaterial{Cloth: d.RawMaterial.Cloth, Lining: d.RawMaterial.Lining},
		Priority:           string(d.Priority),
		Status:             o.Status().String(),
		TaskIDs:            taskIDs,
		ExpectedDate:       wireDate(d.ExpectedDate),
		ActualDeliveryDate: o.ActualDeliveryDate(),
		PaymentID:          wireIDPtr(d.PaymentID),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
}

func toTask(t *task.Task) Task {
	history := make([]HistoryEntry, 0, len(t.History()))
	for _, h := range t.History() {
		history = append(history, HistoryEntry{
			Action: string(h.Action()),
			From:   wireIDPtr(h.From()),
			To:     wireIDPtr(h.To()),
			Note:   h.Note(),
			At:     h.At(),
		})
	}

	return Task{
		ID:           wireID(t.ID()),
		OrderID:      wireID(t.OrderID()),
		Stage:        t.Stage().String(),
		AssignedTo:   wireID(t.AssignedTo()),
		AssignedBy:   wireID(t.AssignedBy()),
		Deadline:     t.Deadline(),
		Status:       t.Status().String(),
		Remarks:      t.Remarks(),
		StartedAt:    t.StartedAt(),
		CompletedAt:  t.CompletedAt(),
		IsReassigned: t.IsReassigned(),
		History:      history,
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func toTaskSummaries(views []queries.TaskView) []TaskSummary {
	out := make([]TaskSummary, 0, len(views))
	for _, v := range views {
		out = append(out, TaskSummary{
			ID:           wireID(v.ID),
			OrderID:      wireID(v.OrderID),
			OrderNo:      v.OrderNo,
			Stage:        v.Stage.String(),
			AssignedTo:   wireID(v.AssignedTo),
			AssignedBy:   wireID(v.AssignedBy),
			Status:       v.Status.String(),
			Deadline:     v.Deadline,
			Remarks:      v.Remarks,
			IsReassigned: v.IsReassigned,
			StartedAt:    v.StartedAt,
			CompletedAt:  v.CompletedAt,
			UpdatedAt:    v.UpdatedAt,
		})
	}
	return out
}

func toOrderSummary(v queries.OrderView) OrderSummary {
	active := make([]ActiveTask, 0, len(v.ActiveTasks))
	for _, t := range v.ActiveTasks {
		active = append(active, ActiveTask{
			ID:         wireID(t.ID),
			Stage:      t.Stage.String(),
			AssignedTo: wireID(t.AssignedTo),
			Status:     t.Status.String(),
			Deadline:   t.Deadline,
			UpdatedAt:  t.UpdatedAt,
		})
	}
	return OrderSummary{
		ID:                 wireID(v.ID),
		OrderNo:            v.OrderNo,
		ParentOrderID:      wireIDPtr(v.ParentID),
		Category:           v.Category,
		Priority:           string(v.Priority),
		Status:             v.Status.String(),
		ExpectedDate:       wireDate(v.ExpectedDate),
		ActualDeliveryDate: v.ActualDeliveryDate,
		CreatedAt:          v.CreatedAt,
		ActiveTasks:        active,
	}
}

func toSyncResult(r commands.SyncOrderStatusResult) SyncResult {
	return SyncResult{
		Previous: r.Previous.String(),
		Current:  r.Current.String(),
		Changed:  r.Changed,
		Skipped:  r.Skipped,
	}
}
