package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder, NewLineItem or RestoreOrder constructors.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIsDelivered is returned when mutating a delivered order.
	ErrOrderIsDelivered = errs.NewObjectConflictError("order", "is already delivered")
)

// Priority of an order on the shop floor.
type Priority string

const (
	Normal Priority = "Normal"
	Urgent Priority = "Urgent"
)

// Measurement is one named body measurement taken for an order.
type Measurement struct {
	FieldName string
	Value     string
}

// RawMaterial records which materials the customer supplied.
type RawMaterial struct {
	Cloth  bool
	Lining bool
}

// Details groups the descriptive attributes of an order. They are owned by
// order intake and carried through the workflow untouched.
type Details struct {
	CustomerID   kernel.UUID
	ServiceID    kernel.UUID
	Category     string
	Measurements []Measurement
	Color        string
	RawMaterial  RawMaterial
	Priority     Priority
	ExpectedDate time.Time
	PaymentID    *kernel.UUID
}

// Order is one production job. A line item is an Order whose parent is set.
//
// Order follows these invariants:
//   - id and number are set at creation and never change
//   - status is Placed until a task is saved for it
//   - taskIDs keep insertion order and contain no duplicates
type Order struct {
	id                 kernel.UUID
	number             kernel.OrderNumber
	parentID           *kernel.UUID
	details            Details
	status             Status
	taskIDs            []kernel.UUID
	actualDeliveryDate *time.Time
	createdAt          time.Time
	updatedAt          time.Time

	isConstructed bool
}

// NewOrder creates a main order in Placed status.
//
// Example:
//
//	number, _ := kernel.NewOrderNumber("ORD-100")
//	o, err := order.NewOrder(kernel.NewUUID(), number, order.Details{
//	    CustomerID:   customerID,
//	    ServiceID:    serviceID,
//	    Category:     "Sherwani",
//	    ExpectedDate: time.Now().AddDate(0, 0, 14),
//	}, time.Now())
func NewOrder(id kernel.UUID, number kernel.OrderNumber, details Details, now time.Time) (*Order, error) {
	o := &Order{
		status:        Placed,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// NewLineItem creates an item order under parent. The parent must be a main order.
func NewLineItem(id kernel.UUID, number kernel.OrderNumber, parent *Order, details Details, now time.Time) (*Order, error) {
	if err := parent.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("parentOrderId", err)
	}
	if parent.IsLineItem() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"parentOrderId",
			fmt.Errorf("order %s is itself a line item", parent.Number()),
		)
	}

	o, err := NewOrder(id, number, details, now)
	if err != nil {
		return nil, err
	}
	parentID := parent.ID()
	o.parentID = &parentID
	return o, nil
}

// RestoreOrder rebuilds an order from storage.
func RestoreOrder(
	id kernel.UUID,
	number kernel.OrderNumber,
	parentID *kernel.UUID,
	details Details,
	status Status,
	taskIDs []kernel.UUID,
	actualDeliveryDate *time.Time,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		parentID:           parentID,
		details:            details,
		status:             status,
		taskIDs:            append([]kernel.UUID(nil), taskIDs...),
		actualDeliveryDate: actualDeliveryDate,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
		isConstructed:      true,
	}
	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Number() kernel.OrderNumber { return o.number }
func (o *Order) Details() Details { return o.details }
func (o *Order) Status() Status { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// ParentID returns the parent order id, or nil for a main order.
func (o *Order) ParentID() *kernel.UUID {
	if o.parentID == nil {
		return nil
	}
	id := *o.parentID
	return &id
}

// IsLineItem reports whether the order belongs to a parent order.
func (o *Order) IsLineItem() bool {
	return o.parentID != nil
}

// TaskIDs returns task references in creation order.
func (o *Order) TaskIDs() []kernel.UUID {
	return append([]kernel.UUID(nil), o.taskIDs...)
}

// ActualDeliveryDate is set once the order is delivered.
func (o *Order) ActualDeliveryDate() *time.Time {
	if o.actualDeliveryDate == nil {
		return nil
	}
	d := *o.actualDeliveryDate
	return &d
}

// AttachTask appends a task reference. Attaching the same task twice is a no-op.
func (o *Order) AttachTask(taskID kernel.UUID, now time.Time) error {
	if err := taskID.Validate(); err != nil {
		return err
	}
	for _, id := range o.taskIDs {
		if id.IsEqual(taskID) {
			return nil
		}
	}
	o.taskIDs = append(o.taskIDs, taskID)
	o.updatedAt = now
	return nil
}

// DetachTask removes a task reference, keeping the order of the rest.
func (o *Order) DetachTask(taskID kernel.UUID, now time.Time) {
	kept := o.taskIDs[:0]
	for _, id := range o.taskIDs {
		if !id.IsEqual(taskID) {
			kept = append(kept, id)
		}
	}
	if len(kept) != len(o.taskIDs) {
		o.updatedAt = now
	}
	o.taskIDs = kept
}

// SyncStatus overwrites the status as decided by a status policy.
// It reports whether anything changed; writing the current status is a no-op
// so repeated synchronization leaves the order untouched.
func (o *Order) SyncStatus(status Status, now time.Time) (bool, error) {
	if err := status.Validate(); err != nil {
		return false, err
	}
	if o.status.IsTerminal() {
		return false, ErrOrderIsDelivered
	}
	if o.status == status {
		return false, nil
	}
	o.status = status
	o.updatedAt = now
	return true, nil
}

// MarkReady moves an order out of quality check.
func (o *Order) MarkReady(now time.Time) error {
	if o.status != QualityCheck {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to mark ready", o.status),
		)
	}
	o.status = ReadyToDeliver
	o.updatedAt = now
	return nil
}

// MarkDelivered closes the order and stamps the actual delivery date.
func (o *Order) MarkDelivered(now time.Time) error {
	if o.status != ReadyToDeliver {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", o.status),
		)
	}
	o.status = Delivered
	delivered := now
	o.actualDeliveryDate = &delivered
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number kernel.OrderNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setDetails(d Details) error {
	var problems []error
	if err := d.CustomerID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("customerId", err))
	}
	if err := d.ServiceID.Validate(); err != nil {
		problems = append(problems, errs.NewValueIsRequiredErrorWithCause("serviceId", err))
	}
	d.Category = strings.TrimSpace(d.Category)
	if d.Category == "" {
		problems = append(problems, errs.NewValueIsRequiredError("category"))
	}
	if d.ExpectedDate.IsZero() {
		problems = append(problems, errs.NewValueIsRequiredError("expectedDate"))
	}
	switch d.Priority {
	case "":
		d.Priority = Normal
	case Normal, Urgent:
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"priority", fmt.Errorf("%q is not a priority", d.Priority),
		))
	}
	for i, m := range d.Measurements {
		if strings.TrimSpace(m.FieldName) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(fmt.Sprintf("measurements[%d].fieldName", i)))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	d.Measurements = append([]Measurement(nil), d.Measurements...)
	o.details = d
	return nil
}
