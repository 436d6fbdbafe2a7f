// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items live in the same table and point to their parent through ParentID.
// Measurements, raw material and task references are stored as JSON documents.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	OrderNo            string         `gorm:"type:varchar(64);not null;uniqueIndex"`
	ParentID           *uuid.UUID     `gorm:"type:uuid;index"`
	CustomerID         uuid.UUID      `gorm:"type:uuid;not null"`
	ServiceID          uuid.UUID      `gorm:"type:uuid;not null"`
	Category           string         `gorm:"type:varchar(255);not null"`
	Measurements       datatypes.JSON `gorm:"not null"`
	Color              string         `gorm:"type:varchar(64)"`
	RawMaterial        datatypes.JSON `gorm:"not null"`
	Priority           string         `gorm:"type:varchar(16);not null"`
	ExpectedDate       time.Time      `gorm:"not null"`
	ActualDeliveryDate *time.Time     `gorm:"default:null"`
	PaymentID          *uuid.UUID     `gorm:"type:uuid"`
	Status             int            `gorm:"not null;index"`
	TaskIDs            datatypes.JSON `gorm:"not null"`
	CreatedAt          time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

type measurementDTO struct {
	FieldName string `json:"fieldName"`
	Value     string `json:"value"`
}

type rawMaterialDTO struct {
	Cloth  bool `json:"cloth"`
	Lining bool `json:"lining"`
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(o *order.Order) (OrderDTO, error) {
	d := o.Details()

	measurements := make([]measurementDTO, 0, len(d.Measurements))
	for _, m := range d.Measurements {
		measurements = append(measurements, measurementDTO{FieldName: m.FieldName, Value: m.Value})
	}
	measurementsJSON, err := json.Marshal(measurements)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode measurements: %w", err)
	}

	rawMaterialJSON, err := json.Marshal(rawMaterialDTO{Cloth: d.RawMaterial.Cloth, Lining: d.RawMaterial.Lining})
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode raw material: %w", err)
	}

	taskIDs := make([]string, 0, len(o.TaskIDs()))
	for _, id := range o.TaskIDs() {
		taskIDs = append(taskIDs, id.String())
	}
	taskIDsJSON, err := json.Marshal(taskIDs)
	if err != nil {
		return OrderDTO{}, fmt.Errorf("encode task ids: %w", err)
	}

	return OrderDTO{
		ID:                 o.ID().Bytes(),
		OrderNo:            o.Number().String(),
		ParentID:           rawID(o.ParentID()),
		CustomerID:         d.CustomerID.Bytes(),
		ServiceID:          d.ServiceID.Bytes(),
		Category:           d.Category,
		Measurements:       measurementsJSON,
		Color:              d.Color,
		RawMaterial:        rawMaterialJSON,
		Priority:           string(d.Priority),
		ExpectedDate:       d.ExpectedDate,
		ActualDeliveryDate: o.ActualDeliveryDate(),
		PaymentID:          rawID(d.PaymentID),
		Status:             int(o.Status()),
		TaskIDs:            taskIDsJSON,
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}, nil
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	number, err := kernel.NewOrderNumber(dto.OrderNo)
	if err != nil {
		return nil, err
	}
	parentID, err := domainID(dto.ParentID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromGoogle(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	serviceID, err := kernel.UUIDFromGoogle(dto.ServiceID)
	if err != nil {
		return nil, err
	}
	paymentID, err := domainID(dto.PaymentID)
	if err != nil {
		return nil, err
	}

	var measurements []measurementDTO
	if err := unmarshal(dto.Measurements, &measurements); err != nil {
		return nil, fmt.Errorf("decode measurements: %w", err)
	}
	var rawMaterial rawMaterialDTO
	if err := unmarshal(dto.RawMaterial, &rawMaterial); err != nil {
		return nil, fmt.Errorf("decode raw material: %w", err)
	}
	var rawTaskIDs []string
	if err := unmarshal(dto.TaskIDs, &rawTaskIDs); err != nil {
		return nil, fmt.Errorf("decode task ids: %w", err)
	}

	details := order.Details{
		CustomerID:   customerID,
		ServiceID:    serviceID,
		Category:     dto.Category,
		Measurements: make([]order.Measurement, 0, len(measurements)),
		Color:        dto.Color,
		RawMaterial:  order.RawMaterial{Cloth: rawMaterial.Cloth, Lining: rawMaterial.Lining},
		Priority:     order.Priority(dto.Priority),
		ExpectedDate: dto.ExpectedDate,
		PaymentID:    paymentID,
	}
	for _, m := range measurements {
		details.Measurements = append(details.Measurements, order.Measurement{FieldName: m.FieldName, Value: m.Value})
	}

	taskIDs := make([]kernel.UUID, 0, len(rawTaskIDs))
	for _, raw := range rawTaskIDs {
		taskID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		taskIDs = append(taskIDs, taskID)
	}

	return order.RestoreOrder(
		id, number, parentID, details, order.Status(dto.Status), taskIDs,
		dto.ActualDeliveryDate, dto.CreatedAt, dto.UpdatedAt,
	)
}

func unmarshal(raw datatypes.JSON, v any) error {
	if len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, v)
}

func rawID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func domainID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromGoogle(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
