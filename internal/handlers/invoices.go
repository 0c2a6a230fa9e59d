package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/db"
	"github.com/LuisBatalla/auto-admin-portal/internal/garage"
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// InvoiceHandler serves the derived billing report. Invoices are projected
// from work orders on every request and never stored.
type InvoiceHandler struct {
	orders   db.WorkOrderCollection
	vehicles db.VehicleCollection
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(orders db.WorkOrderCollection, vehicles db.VehicleCollection) *InvoiceHandler {
	return &InvoiceHandler{orders: orders, vehicles: vehicles}
}

// InvoiceReport is the billing view for one selected month.
type InvoiceReport struct {
	Month      string               `json:"month"`
	MonthLabel string               `json:"month_label"`
	Invoices   []models.Invoice     `json:"invoices"`
	Totals     garage.InvoiceTotals `json:"totals"`
}

// List projects the selected month's work orders into invoices. The month
// defaults to the current one; archived invoices are excluded unless
// ?include_archived=true.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	month := r.URL.Query().Get("month")
	if month == "" {
		month = garage.MonthKey(time.Now())
	}
	includeArchived := r.URL.Query().Get("include_archived") == "true"

	if _, _, err := garage.MonthInterval(month); err != nil {
		http.Error(w, "Invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	orders, err := h.orders.FindWorkOrders(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch work orders", http.StatusInternalServerError)
		return
	}
	vehicles, err := h.vehicles.FindVehicles(r.Context(), nil)
	if err != nil {
		http.Error(w, "Failed to fetch vehicles", http.StatusInternalServerError)
		return
	}

	vehiclesByID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		vehiclesByID[v.ID.Hex()] = v
	}

	invoices, err := garage.ProjectInvoices(orders, vehiclesByID, month, includeArchived)
	if err != nil {
		http.Error(w, "Invalid month, expected YYYY-MM", http.StatusBadRequest)
		return
	}

	report := InvoiceReport{
		Month:      month,
		MonthLabel: garage.FormatMonthYear(month),
		Invoices:   invoices,
		Totals:     garage.SummarizeInvoices(invoices),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Months returns the selectable last twelve months, newest first.
func (h *InvoiceHandler) Months(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(garage.MonthList(time.Now(), 12))
}
