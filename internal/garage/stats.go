package garage

import (
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// OrdersByStatus breaks down all work orders by lifecycle status.
type OrdersByStatus struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Cancelled  int `json:"cancelled"`
}

// Stats holds the dashboard aggregates derived from the current vehicle and
// work-order snapshots.
type Stats struct {
	ActiveVehicleCount   int                `json:"active_vehicle_count"`
	PendingOrderCount    int                `json:"pending_order_count"`
	OrdersByStatus       OrdersByStatus     `json:"orders_by_status"`
	MonthlyOrders        []models.WorkOrder `json:"monthly_orders"`
	MonthlyInvoiceCount  int                `json:"monthly_invoice_count"`
	TotalBilled          float64            `json:"total_billed"`
	MonthlyBilled        float64            `json:"monthly_billed"`
	AverageCompletedCost float64            `json:"average_completed_cost"`
}

// ComputeStats reduces the vehicle and work-order collections into dashboard
// aggregates. Monthly figures use calendar month/year equality against
// referenceDate, not a rolling 30-day window; both sides are bucketed in
// UTC so the dashboard and the invoice projection agree on which month an
// order belongs to. The reduction performs no I/O and is invariant under
// reordering of its inputs.
func ComputeStats(vehicles []models.Vehicle, orders []models.WorkOrder, referenceDate time.Time) Stats {
	stats := Stats{}

	for _, v := range vehicles {
		if !v.Archived {
			stats.ActiveVehicleCount++
		}
	}

	refYear, refMonth, _ := referenceDate.UTC().Date()

	var completedCount int
	var completedBilled float64
	for _, order := range orders {
		switch order.Status {
		case models.StatusPending:
			stats.OrdersByStatus.Pending++
		case models.StatusInProgress:
			stats.OrdersByStatus.InProgress++
		case models.StatusCompleted:
			stats.OrdersByStatus.Completed++
		case models.StatusCancelled:
			stats.OrdersByStatus.Cancelled++
		}

		cost := CostOrZero(order)
		stats.TotalBilled += cost
		if order.Status == models.StatusCompleted {
			completedCount++
			completedBilled += cost
		}

		year, month, _ := order.CreatedAt.UTC().Date()
		if year == refYear && month == refMonth {
			stats.MonthlyOrders = append(stats.MonthlyOrders, order)
			stats.MonthlyBilled += cost
		}
	}

	stats.PendingOrderCount = stats.OrdersByStatus.Pending
	stats.MonthlyInvoiceCount = len(stats.MonthlyOrders)
	// Guard the division: zero completed orders yields 0, never NaN or Inf.
	if completedCount > 0 {
		stats.AverageCompletedCost = completedBilled / float64(completedCount)
	}

	return stats
}

// CostOrZero returns the order's total cost, treating an absent cost as 0.
func CostOrZero(order models.WorkOrder) float64 {
	if order.TotalCost == nil {
		return 0
	}
	return *order.TotalCost
}
