package handlers

import (
	"fmt"
	"net/http"

	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/export"
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// ExportHandler serves bulk snapshots of vehicles and work orders as
// downloadable CSV or JSON files.
type ExportHandler struct {
	vehicles db.VehicleCollection
	orders   db.WorkOrderCollection
}

// NewExportHandler creates a new export handler
func NewExportHandler(vehicles db.VehicleCollection, orders db.WorkOrderCollection) *ExportHandler {
	return &ExportHandler{vehicles: vehicles, orders: orders}
}

// Download streams the requested snapshot. Both data sets are included by
// default; ?vehicles=false or ?workorders=false narrows the selection,
// ?format=json switches from CSV.
func (h *ExportHandler) Download(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	format := query.Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		http.Error(w, "Unsupported format, expected csv or json", http.StatusBadRequest)
		return
	}

	includeVehicles := query.Get("vehicles") != "false"
	includeOrders := query.Get("workorders") != "false"
	if !includeVehicles && !includeOrders {
		http.Error(w, "Select at least one data set to export", http.StatusBadRequest)
		return
	}

	// Vehicles are fetched even for an orders-only export so the orders
	// section can label each row "Brand Model (Plate)" instead of an ID.
	snapshot := export.Snapshot{}
	vehicles, err := h.vehicles.FindVehicles(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}
	if includeVehicles {
		snapshot.Vehicles = vehicles
	} else {
		snapshot.VehicleIndex = vehicles
	}
	if includeOrders {
		orders, err := h.orders.FindWorkOrders(r.Context(), nil)
		if err != nil {
			http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
			return
		}
		if orders == nil {
			orders = []models.WorkOrder{}
		}
		snapshot.WorkOrders = orders
	}

	var content, filename string
	if format == "csv" {
		content, filename, err = export.CSV(snapshot)
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	} else {
		content, filename, err = export.JSON(snapshot)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	if err != nil {
		http.Error(w, "Failed to export data", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(content))
}
