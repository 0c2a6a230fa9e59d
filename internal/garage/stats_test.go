package garage

import (
	"math"
	"testing"
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"github.com/stretchr/testify/assert"
)

func costPtr(v float64) *float64 { return &v }

func orderAt(vehicleID string, status models.WorkOrderStatus, cost *float64, created time.Time) models.WorkOrder {
	return models.WorkOrder{VehicleID: vehicleID, Status: status, TotalCost: cost, CreatedAt: created}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil, nil, time.Now())

	assert.Equal(t, 0, stats.ActiveVehicleCount)
	assert.Equal(t, 0, stats.PendingOrderCount)
	assert.Equal(t, 0, stats.MonthlyInvoiceCount)
	assert.Equal(t, 0.0, stats.TotalBilled)
	assert.Equal(t, 0.0, stats.MonthlyBilled)
	assert.Equal(t, 0.0, stats.AverageCompletedCost)
}

func TestComputeStats_ActiveVehicleCount(t *testing.T) {
	vehicles := []models.Vehicle{
		{Brand: "Toyota", Archived: false},
		{Brand: "Honda", Archived: true},
		{Brand: "Ford"},
	}
	stats := ComputeStats(vehicles, nil, time.Now())
	assert.Equal(t, 2, stats.ActiveVehicleCount)
}

func TestComputeStats_TotalBilledTreatsNilAsZero(t *testing.T) {
	ref := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	orders := []models.WorkOrder{
		orderAt("v1", models.StatusPending, costPtr(10), ref),
		orderAt("v1", models.StatusCompleted, nil, ref),
		orderAt("v2", models.StatusCancelled, costPtr(5.50), ref),
	}
	stats := ComputeStats(nil, orders, ref)
	assert.Equal(t, 15.50, stats.TotalBilled)
}

func TestComputeStats_MonthlyBucketing(t *testing.T) {
	ref := time.Date(2024, time.February, 10, 12, 0, 0, 0, time.UTC)
	orders := []models.WorkOrder{
		orderAt("v1", models.StatusPending, costPtr(100), time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)),
		orderAt("v1", models.StatusCompleted, costPtr(50), time.Date(2024, time.February, 29, 23, 59, 59, 0, time.UTC)),
		// Same month number, previous year: excluded.
		orderAt("v2", models.StatusCompleted, costPtr(30), time.Date(2023, time.February, 10, 0, 0, 0, 0, time.UTC)),
		// Following month: excluded.
		orderAt("v2", models.StatusPending, costPtr(20), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)),
	}

	stats := ComputeStats(nil, orders, ref)
	assert.Equal(t, 2, stats.MonthlyInvoiceCount)
	assert.Len(t, stats.MonthlyOrders, 2)
	assert.Equal(t, 150.0, stats.MonthlyBilled)
	assert.Equal(t, 200.0, stats.TotalBilled)
}

func TestComputeStats_MonthlyBucketingIsUTC(t *testing.T) {
	// 23:30 on March 31 in UTC-3 is already April 1 in UTC. The dashboard
	// and the invoice projection must place the order in the same month.
	buenosAires := time.FixedZone("UTC-3", -3*60*60)
	order := orderAt("v1", models.StatusCompleted, costPtr(60), time.Date(2024, time.March, 31, 23, 30, 0, 0, buenosAires))
	ref := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	stats := ComputeStats(nil, []models.WorkOrder{order}, ref)
	assert.Equal(t, 1, stats.MonthlyInvoiceCount)
	assert.Equal(t, 60.0, stats.MonthlyBilled)

	march := ComputeStats(nil, []models.WorkOrder{order}, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 0, march.MonthlyInvoiceCount)

	invoices, err := ProjectInvoices([]models.WorkOrder{order}, nil, "2024-04", true)
	assert.NoError(t, err)
	assert.Len(t, invoices, 1)
}

func TestComputeStats_OrdersByStatus(t *testing.T) {
	ref := time.Now()
	orders := []models.WorkOrder{
		orderAt("v1", models.StatusPending, nil, ref),
		orderAt("v1", models.StatusPending, nil, ref),
		orderAt("v2", models.StatusInProgress, nil, ref),
		orderAt("v2", models.StatusCompleted, nil, ref),
		orderAt("v3", models.StatusCancelled, nil, ref),
	}
	stats := ComputeStats(nil, orders, ref)

	assert.Equal(t, OrdersByStatus{Pending: 2, InProgress: 1, Completed: 1, Cancelled: 1}, stats.OrdersByStatus)
	assert.Equal(t, 2, stats.PendingOrderCount)
}

func TestComputeStats_ReorderInvariant(t *testing.T) {
	ref := time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC)
	vehicles := []models.Vehicle{
		{Brand: "Seat", Archived: false},
		{Brand: "Renault", Archived: true},
	}
	orders := []models.WorkOrder{
		orderAt("v1", models.StatusPending, costPtr(12.5), ref),
		orderAt("v2", models.StatusCompleted, costPtr(99), ref.AddDate(0, -1, 0)),
		orderAt("v3", models.StatusCancelled, nil, ref),
	}

	forward := ComputeStats(vehicles, orders, ref)
	reversedVehicles := []models.Vehicle{vehicles[1], vehicles[0]}
	reversedOrders := []models.WorkOrder{orders[2], orders[1], orders[0]}
	backward := ComputeStats(reversedVehicles, reversedOrders, ref)

	assert.Equal(t, forward.ActiveVehicleCount, backward.ActiveVehicleCount)
	assert.Equal(t, forward.OrdersByStatus, backward.OrdersByStatus)
	assert.Equal(t, forward.TotalBilled, backward.TotalBilled)
	assert.Equal(t, forward.MonthlyBilled, backward.MonthlyBilled)
	assert.Equal(t, forward.MonthlyInvoiceCount, backward.MonthlyInvoiceCount)
	assert.Equal(t, forward.AverageCompletedCost, backward.AverageCompletedCost)
}

func TestComputeStats_AverageCompletedCost(t *testing.T) {
	ref := time.Now()

	t.Run("no completed orders yields zero", func(t *testing.T) {
		orders := []models.WorkOrder{
			orderAt("v1", models.StatusPending, costPtr(40), ref),
		}
		stats := ComputeStats(nil, orders, ref)
		assert.Equal(t, 0.0, stats.AverageCompletedCost)
		assert.False(t, math.IsNaN(stats.AverageCompletedCost))
		assert.False(t, math.IsInf(stats.AverageCompletedCost, 0))
	})

	t.Run("averages only completed orders", func(t *testing.T) {
		orders := []models.WorkOrder{
			orderAt("v1", models.StatusCompleted, costPtr(100), ref),
			orderAt("v1", models.StatusCompleted, costPtr(50), ref),
			orderAt("v1", models.StatusPending, costPtr(999), ref),
		}
		stats := ComputeStats(nil, orders, ref)
		assert.Equal(t, 75.0, stats.AverageCompletedCost)
	})
}
