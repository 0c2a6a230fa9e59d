package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/garage"
	"github.com/LuisBatalla/auto-admin-portal/internal/middleware"
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// VehicleHandler handles vehicle listing, creation and archival.
type VehicleHandler struct {
	vehicles db.VehicleCollection
	orders   db.WorkOrderCollection
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection, orders db.WorkOrderCollection) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles, orders: orders}
}

// VehicleView is a vehicle with its derived display status attached.
type VehicleView struct {
	models.Vehicle
	Status      garage.StatusLabel `json:"status"`
	StatusColor string             `json:"status_color"`
}

// List returns the vehicles for the requested view (active by default,
// archived with ?archived=true), each with its derived status.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	showArchived := r.URL.Query().Get("archived") == "true"

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

	views := []VehicleView{}
	for _, v := range garage.FilterVehicles(vehicles, showArchived) {
		status := garage.ResolveVehicleStatus(v.ID.Hex(), orders)
		views = append(views, VehicleView{
			Vehicle:     v,
			Status:      status,
			StatusColor: garage.StatusColor(status),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(views)
}

// Create registers a new vehicle.
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req models.CreateVehicleRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if req.Brand == "" || req.Model == "" || req.Plate == "" {
		http.Error(w, "Brand, model and plate are required", http.StatusBadRequest)
		return
	}
	if req.Year != nil && *req.Year <= 0 {
		http.Error(w, "Year must be a positive number", http.StatusBadRequest)
		return
	}

	// Regular users own the vehicles they register; only admins may set a
	// different owner.
	ownerID := claims.UserID
	if req.OwnerID != "" {
		if !claims.IsAdmin() {
			http.Error(w, "Only administrators can assign vehicle owners", http.StatusForbidden)
			return
		}
		ownerID = req.OwnerID
	}

	vehicle := models.Vehicle{
		Brand:   req.Brand,
		Model:   req.Model,
		Plate:   req.Plate,
		Year:    req.Year,
		OwnerID: ownerID,
	}

	created, err := h.vehicles.InsertVehicle(r.Context(), vehicle)
	if err != nil {
		http.Error(w, "Failed to create vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(created)
}

// Get returns a single vehicle with its work orders and derived status.
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	id := r.PathValue("id")
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrVehicleNotFound) {
			http.Error(w, "Vehicle does not exist", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
		return
	}

	orders, err := h.orders.FindWorkOrders(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
		return
	}
	vehicleOrders := garage.OrdersForVehicle(id, orders)
	status := garage.ResolveVehicleStatus(id, orders)

	response := struct {
		VehicleView
		WorkOrders []models.WorkOrder `json:"work_orders"`
		CanArchive bool               `json:"can_archive"`
	}{
		VehicleView: VehicleView{
			Vehicle:     *vehicle,
			Status:      status,
			StatusColor: garage.StatusColor(status),
		},
		WorkOrders: vehicleOrders,
		CanArchive: garage.CanArchive(vehicleOrders),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Archive flags a vehicle as archived. A vehicle is only eligible once at
// least one of its work orders has been completed. The updated vehicle is
// returned so the client list can reflect the new state immediately.
func (h *VehicleHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, true)
}

// Unarchive returns a vehicle to the active list.
func (h *VehicleHandler) Unarchive(w http.ResponseWriter, r *http.Request) {
	h.setArchived(w, r, false)
}

func (h *VehicleHandler) setArchived(w http.ResponseWriter, r *http.Request, archived bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	claims, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, "User context not found", http.StatusUnauthorized)
		return
	}
	if !claims.IsAdmin() {
		http.Error(w, "Only administrators can archive vehicles", http.StatusForbidden)
		return
	}

	id := r.PathValue("id")
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrVehicleNotFound) {
			http.Error(w, "Vehicle does not exist", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to fetch vehicle", http.StatusInternalServerError)
		return
	}

	if archived {
		orders, err := h.orders.FindWorkOrders(r.Context(), nil)
		if err != nil {
			http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
			return
		}
		if !garage.CanArchive(garage.OrdersForVehicle(id, orders)) {
			http.Error(w, "Vehicle has no completed work orders", http.StatusConflict)
			return
		}
	}

	if err := h.vehicles.SetVehicleArchived(r.Context(), id, archived); err != nil {
		if errors.Is(err, db.ErrVehicleNotFound) {
			http.Error(w, "Vehicle does not exist", http.StatusNotFound)
			return
		}
		http.Error(w, "Failed to update vehicle", http.StatusInternalServerError)
		return
	}

	vehicle.Archived = archived
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}
