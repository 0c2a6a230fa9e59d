// Package garage holds the derivation core of the workshop: vehicle status
// resolution, dashboard aggregates, invoice projection and archival rules.
// Everything in this package is a pure function over already-fetched
// snapshots; no I/O happens here.
package garage

import (
	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// StatusLabel is the display status derived for a vehicle from its work
// orders. Labels are the Spanish strings shown in the UI and are never
// persisted.
type StatusLabel string

const (
	LabelNoOrders   StatusLabel = "Sin órdenes"
	LabelInProgress StatusLabel = "En progreso"
	LabelPending    StatusLabel = "Pendiente"
	LabelCompleted  StatusLabel = "Completado"
	LabelNoStatus   StatusLabel = "Sin estado"
)

// ResolveVehicleStatus maps a vehicle's work orders to a single display
// status. Precedence is fixed and independent of recency:
// in_progress > pending > completed. An empty order set yields
// "Sin órdenes"; a set containing only cancelled orders yields
// "Sin estado", deliberately distinct from having no orders at all.
func ResolveVehicleStatus(vehicleID string, allOrders []models.WorkOrder) StatusLabel {
	var hasPending, hasInProgress, hasCompleted, hasAny bool
	for _, order := range allOrders {
		if order.VehicleID != vehicleID {
			continue
		}
		hasAny = true
		switch order.Status {
		case models.StatusInProgress:
			hasInProgress = true
		case models.StatusPending:
			hasPending = true
		case models.StatusCompleted:
			hasCompleted = true
		}
	}

	switch {
	case hasInProgress:
		return LabelInProgress
	case hasPending:
		return LabelPending
	case hasCompleted:
		return LabelCompleted
	case !hasAny:
		return LabelNoOrders
	default:
		return LabelNoStatus
	}
}

// StatusColor returns the badge color classes used by the UI for a derived
// status label.
func StatusColor(label StatusLabel) string {
	switch label {
	case LabelPending:
		return "bg-yellow-100 text-yellow-800"
	case LabelInProgress:
		return "bg-blue-100 text-blue-800"
	case LabelCompleted:
		return "bg-green-100 text-green-800"
	default:
		return "bg-gray-100 text-gray-500"
	}
}
