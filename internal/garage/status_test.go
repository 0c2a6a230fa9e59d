package garage

import (
	"testing"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"github.com/stretchr/testify/assert"
)

func order(vehicleID string, status models.WorkOrderStatus) models.WorkOrder {
	return models.WorkOrder{VehicleID: vehicleID, Status: status}
}

func TestResolveVehicleStatus_NoOrders(t *testing.T) {
	assert.Equal(t, LabelNoOrders, ResolveVehicleStatus("v1", nil))
	assert.Equal(t, LabelNoOrders, ResolveVehicleStatus("v1", []models.WorkOrder{}))

	// Orders for other vehicles do not count.
	orders := []models.WorkOrder{order("v2", models.StatusInProgress)}
	assert.Equal(t, LabelNoOrders, ResolveVehicleStatus("v1", orders))
}

func TestResolveVehicleStatus_Precedence(t *testing.T) {
	tests := []struct {
		name     string
		statuses []models.WorkOrderStatus
		expected StatusLabel
	}{
		{"in_progress wins over everything", []models.WorkOrderStatus{models.StatusCompleted, models.StatusPending, models.StatusInProgress}, LabelInProgress},
		{"pending wins over completed", []models.WorkOrderStatus{models.StatusCompleted, models.StatusPending}, LabelPending},
		{"completed only", []models.WorkOrderStatus{models.StatusCompleted}, LabelCompleted},
		{"single pending", []models.WorkOrderStatus{models.StatusPending}, LabelPending},
		{"in_progress with many pending", []models.WorkOrderStatus{models.StatusPending, models.StatusPending, models.StatusInProgress, models.StatusPending}, LabelInProgress},
		{"cancelled beside completed", []models.WorkOrderStatus{models.StatusCancelled, models.StatusCompleted}, LabelCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders := make([]models.WorkOrder, 0, len(tt.statuses))
			for _, s := range tt.statuses {
				orders = append(orders, order("v1", s))
			}
			assert.Equal(t, tt.expected, ResolveVehicleStatus("v1", orders))
		})
	}
}

func TestResolveVehicleStatus_CancelledOnlyIsDistinct(t *testing.T) {
	orders := []models.WorkOrder{
		order("v1", models.StatusCancelled),
		order("v1", models.StatusCancelled),
	}
	got := ResolveVehicleStatus("v1", orders)
	assert.Equal(t, LabelNoStatus, got)
	assert.NotEqual(t, ResolveVehicleStatus("v1", nil), got)
}

func TestResolveVehicleStatus_OrderIndependent(t *testing.T) {
	forward := []models.WorkOrder{
		order("v1", models.StatusCompleted),
		order("v1", models.StatusInProgress),
		order("v1", models.StatusPending),
	}
	backward := []models.WorkOrder{forward[2], forward[1], forward[0]}

	assert.Equal(t, ResolveVehicleStatus("v1", forward), ResolveVehicleStatus("v1", backward))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "bg-yellow-100 text-yellow-800", StatusColor(LabelPending))
	assert.Equal(t, "bg-blue-100 text-blue-800", StatusColor(LabelInProgress))
	assert.Equal(t, "bg-green-100 text-green-800", StatusColor(LabelCompleted))
	assert.Equal(t, "bg-gray-100 text-gray-500", StatusColor(LabelNoOrders))
	assert.Equal(t, "bg-gray-100 text-gray-500", StatusColor(LabelNoStatus))
}
