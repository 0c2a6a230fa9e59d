package models

import "time"

// InvoiceStatus classifies a derived invoice for billing reports.
type InvoiceStatus string

const (
	InvoiceActive   InvoiceStatus = "active"
	InvoiceArchived InvoiceStatus = "archived"
)

// Invoice is a read-only projection of a work order into billing-report
// form. Invoices are recomputed on every read and never persisted.
type Invoice struct {
	ID           string        `json:"id"`
	WorkOrderID  string        `json:"work_order_id"`
	VehicleID    string        `json:"vehicle_id"`
	Total        float64       `json:"total"`
	Status       InvoiceStatus `json:"status"`
	Month        int           `json:"month"`
	Year         int           `json:"year"`
	Date         time.Time     `json:"date"`
	VehicleBrand string        `json:"vehicle_brand,omitempty"`
	VehicleModel string        `json:"vehicle_model,omitempty"`
	VehiclePlate string        `json:"vehicle_plate,omitempty"`
}
