package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/middleware"
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// WorkOrderHandler handles work-order listing, creation and status changes.
type WorkOrderHandler struct {
	orders   db.WorkOrderCollection
	vehicles db.VehicleCollection
}

// NewWorkOrderHandler creates a new work-order handler
func NewWorkOrderHandler(orders db.WorkOrderCollection, vehicles db.VehicleCollection) *WorkOrderHandler {
	return &WorkOrderHandler{orders: orders, vehicles: vehicles}
}

// List returns all work orders, optionally filtered to one vehicle with
// ?vehicle_id=.
func (h *WorkOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := h.orders.FindWorkOrders(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
		return
	}

	if vehicleID := r.URL.Query().Get("vehicle_id"); vehicleID != "" {
		filtered := []models.WorkOrder{}
		for _, order := range orders {
			if order.VehicleID == vehicleID {
				filtered = append(filtered, order)
			}
		}
		orders = filtered
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(orders)
}

// Create opens a new work order against an existing vehicle. Orders always
// start as pending. Inserting against a nonexistent vehicle is a distinct
// referential failure, and a regular user may only open orders for vehicles
// they own.
func (h *WorkOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.CreateWorkOrderRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.VehicleID == "" {
		http.Error(w, "Vehicle ID is required", http.StatusBadRequest)
		return
	}
	if req.Description == "" {
		http.Error(w, "Description is required", http.StatusBadRequest)
		return
	}
	if req.TotalCost != nil && *req.TotalCost < 0 {
		http.Error(w, "Total cost cannot be negative", http.StatusBadRequest)
		return
	}

	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), req.VehicleID)
	if err != nil {
		if errors.Is(err, db.ErrVehicleNotFound) {
			http.Error(w, "The selected vehicle does not exist", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to verify vehicle", http.StatusInternalServerError)
		return
	}

	if !claims.IsAdmin() && vehicle.OwnerID != claims.UserID {
		http.Error(w, "You do not have permission to add orders to this vehicle", http.StatusForbidden)
		return
	}

	order := models.WorkOrder{
		VehicleID:   req.VehicleID,
		Description: req.Description,
		TotalCost:   req.TotalCost,
	}

	created, err := h.orders.InsertWorkOrder(r.Context(), order)
	if err != nil {
		http.Error(w, "Failed to create work order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// UpdateStatus applies a status transition to a work order. Transitions not
// in the state machine are rejected with a conflict carrying the offending
// pair; cancelling in-progress work is an admin operation.
func (h *WorkOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var req models.UpdateStatusRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if !models.IsValidStatus(req.Status) {
		http.Error(w, "Unknown work order status", http.StatusBadRequest)
		return
	}

	id := r.PathValue("id")

	if req.Status == models.StatusCancelled && !claims.IsAdmin() {
		order, err := h.orders.FindWorkOrderByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, db.ErrWorkOrderNotFound) {
				http.Error(w, "Work order does not exist", http.StatusNotFound)
				return
			}
			http.Error(w, "Failed to fetch work order", http.StatusInternalServerError)
			return
		}
		if order.Status == models.StatusInProgress {
			http.Error(w, "Only administrators can cancel work in progress", http.StatusForbidden)
			return
		}
	}

	updated, err := h.orders.UpdateWorkOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		var invalid *models.ErrInvalidTransition
		switch {
		case errors.As(err, &invalid):
			http.Error(w, invalid.Error(), http.StatusConflict)
		case errors.Is(err, db.ErrWorkOrderNotFound):
			http.Error(w, "Work order does not exist", http.StatusNotFound)
		default:
			http.Error(w, "Failed to update work order", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(updated)
}
