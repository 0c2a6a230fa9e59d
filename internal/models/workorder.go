package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkOrderStatus represents the lifecycle state of a work order.
type WorkOrderStatus string

const (
	StatusPending    WorkOrderStatus = "pending"
	StatusInProgress WorkOrderStatus = "in_progress"
	StatusCompleted  WorkOrderStatus = "completed"
	StatusCancelled  WorkOrderStatus = "cancelled"
)

// WorkOrder represents a unit of billable repair work tied to one vehicle.
type WorkOrder struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID   string             `bson:"vehicle_id" json:"vehicle_id"`
	Description string             `bson:"description" json:"description"`
	Status      WorkOrderStatus    `bson:"status" json:"status"`
	TotalCost   *float64           `bson:"total_cost,omitempty" json:"total_cost,omitempty"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
	CompletedAt *time.Time         `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// CreateWorkOrderRequest represents the payload for opening a work order.
// New orders always start as pending.
type CreateWorkOrderRequest struct {
	VehicleID   string   `json:"vehicle_id"`
	Description string   `json:"description"`
	TotalCost   *float64 `json:"total_cost,omitempty"`
}

// UpdateStatusRequest represents a requested status transition.
type UpdateStatusRequest struct {
	Status WorkOrderStatus `json:"status"`
}

// IsValidStatus checks if a status value is one of the known states.
func IsValidStatus(status WorkOrderStatus) bool {
	switch status {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// allowedTransitions defines the work-order state machine. Completed and
// cancelled are terminal.
var allowedTransitions = map[WorkOrderStatus][]WorkOrderStatus{
	StatusPending:    {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether from -> to is an allowed status transition.
func CanTransition(from, to WorkOrderStatus) bool {
	allowed, ok := allowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// ErrInvalidTransition is returned when a status change is not in the
// transition table.
type ErrInvalidTransition struct {
	From WorkOrderStatus
	To   WorkOrderStatus
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid work order status transition: %s -> %s", e.From, e.To)
}

// ApplyTransition applies a status change to a work order, maintaining the
// completion timestamp. CompletedAt is set exactly once, when the order
// enters completed, and is never cleared afterwards.
func ApplyTransition(o *WorkOrder, to WorkOrderStatus, now time.Time) error {
	if o == nil {
		return fmt.Errorf("work order is nil")
	}
	if !CanTransition(o.Status, to) {
		return &ErrInvalidTransition{From: o.Status, To: to}
	}

	o.Status = to
	o.UpdatedAt = now
	if to == StatusCompleted && o.CompletedAt == nil {
		t := now
		o.CompletedAt = &t
	}
	return nil
}
