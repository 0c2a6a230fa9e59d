package garage

import (
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// CanArchive reports whether a vehicle is eligible to be archived: it must
// have at least one completed work order.
func CanArchive(vehicleOrders []models.WorkOrder) bool {
	for _, order := range vehicleOrders {
		if order.Status == models.StatusCompleted {
			return true
		}
	}
	return false
}

// IsArchivedVisible reports whether a vehicle belongs in the current list
// view: archived vehicles when showArchived is set, active ones otherwise.
func IsArchivedVisible(vehicle models.Vehicle, showArchived bool) bool {
	return vehicle.Archived == showArchived
}

// FilterVehicles returns the vehicles visible for the requested view.
// Filtering is idempotent: applying it twice with the same flag yields the
// same set.
func FilterVehicles(vehicles []models.Vehicle, showArchived bool) []models.Vehicle {
	filtered := []models.Vehicle{}
	for _, v := range vehicles {
		if IsArchivedVisible(v, showArchived) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// OrdersForVehicle filters the full work-order set down to one vehicle.
func OrdersForVehicle(vehicleID string, allOrders []models.WorkOrder) []models.WorkOrder {
	orders := []models.WorkOrder{}
	for _, order := range allOrders {
		if order.VehicleID == vehicleID {
			orders = append(orders, order)
		}
	}
	return orders
}
