package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/garage"
)

// DashboardHandler serves the workshop dashboard aggregates.
type DashboardHandler struct {
	vehicles db.VehicleCollection
	orders   db.WorkOrderCollection
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(vehicles db.VehicleCollection, orders db.WorkOrderCollection) *DashboardHandler {
	return &DashboardHandler{vehicles: vehicles, orders: orders}
}

// Stats recomputes the dashboard aggregates from the current snapshots,
// using the request time as the reference month.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	vehicles, err := h.vehicles.FindVehicles(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	orders, err := h.orders.FindWorkOrders(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
		return
	}

	stats := garage.ComputeStats(vehicles, orders, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}
