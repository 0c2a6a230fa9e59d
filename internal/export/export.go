// Package export serializes bulk snapshots of vehicles and work orders for
// file download, as CSV or JSON.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// Snapshot is the exportable subset of the datastore.
type Snapshot struct {
	Vehicles   []models.Vehicle   `json:"vehicles,omitempty"`
	WorkOrders []models.WorkOrder `json:"workOrders,omitempty"`

	// VehicleIndex resolves the vehicle column of an orders-only export.
	// It never becomes an output section and is excluded from JSON.
	VehicleIndex []models.Vehicle `json:"-"`
}

// TranslateStatus renders a work-order status in Spanish for export files.
func TranslateStatus(status models.WorkOrderStatus) string {
	switch status {
	case models.StatusPending:
		return "Pendiente"
	case models.StatusInProgress:
		return "En Progreso"
	case models.StatusCompleted:
		return "Completado"
	case models.StatusCancelled:
		return "Cancelado"
	default:
		return string(status)
	}
}

const exportTimeLayout = "02/01/2006 15:04"

// VehicleRows builds the CSV rows for the vehicle table, headers first.
func VehicleRows(vehicles []models.Vehicle) [][]string {
	rows := [][]string{{"ID", "Marca", "Modelo", "Placa", "Año", "Archivado"}}
	for _, v := range vehicles {
		year := ""
		if v.Year != nil {
			year = fmt.Sprintf("%d", *v.Year)
		}
		archived := "No"
		if v.Archived {
			archived = "Sí"
		}
		rows = append(rows, []string{v.ID.Hex(), v.Brand, v.Model, v.Plate, year, archived})
	}
	return rows
}

// WorkOrderRows builds the CSV rows for the work-order table, headers first.
// The vehicle column shows "Brand Model (Plate)" when the vehicle is known
// and falls back to the raw vehicle ID otherwise.
func WorkOrderRows(orders []models.WorkOrder, vehicles []models.Vehicle) [][]string {
	byID := make(map[string]models.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID.Hex()] = v
	}

	rows := [][]string{{"ID", "ID Vehículo", "Descripción", "Estado", "Costo Total", "Fecha Creación", "Fecha Completado"}}
	for _, order := range orders {
		vehicleInfo := order.VehicleID
		if v, ok := byID[order.VehicleID]; ok {
			vehicleInfo = fmt.Sprintf("%s %s (%s)", v.Brand, v.Model, v.Plate)
		}

		cost := "0"
		if order.TotalCost != nil {
			cost = fmt.Sprintf("%.2f", *order.TotalCost)
		}
		completedAt := ""
		if order.CompletedAt != nil {
			completedAt = order.CompletedAt.Format(exportTimeLayout)
		}

		rows = append(rows, []string{
			order.ID.Hex(),
			vehicleInfo,
			order.Description,
			TranslateStatus(order.Status),
			cost,
			order.CreatedAt.Format(exportTimeLayout),
			completedAt,
		})
	}
	return rows
}

func writeCSV(rows [][]string) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CSV renders the snapshot as delimited text. When both tables are present
// they are emitted as titled sections in one file.
func CSV(snapshot Snapshot) (content string, filename string, err error) {
	hasVehicles := snapshot.Vehicles != nil
	hasOrders := snapshot.WorkOrders != nil

	switch {
	case hasVehicles && hasOrders:
		vehiclesCSV, err := writeCSV(VehicleRows(snapshot.Vehicles))
		if err != nil {
			return "", "", err
		}
		ordersCSV, err := writeCSV(WorkOrderRows(snapshot.WorkOrders, snapshot.Vehicles))
		if err != nil {
			return "", "", err
		}
		content = fmt.Sprintf("VEHÍCULOS\n%s\nÓRDENES DE TRABAJO\n%s", vehiclesCSV, ordersCSV)
		return content, "taller_datos_completos.csv", nil
	case hasVehicles:
		content, err = writeCSV(VehicleRows(snapshot.Vehicles))
		return content, "taller_vehiculos.csv", err
	case hasOrders:
		content, err = writeCSV(WorkOrderRows(snapshot.WorkOrders, snapshot.VehicleIndex))
		return content, "taller_ordenes.csv", err
	default:
		return "", "", fmt.Errorf("nothing selected for export")
	}
}

// JSON renders the snapshot as indented JSON.
func JSON(snapshot Snapshot) (content string, filename string, err error) {
	if snapshot.Vehicles == nil && snapshot.WorkOrders == nil {
		return "", "", fmt.Errorf("nothing selected for export")
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", "", err
	}
	return string(data), "taller_datos.json", nil
}
