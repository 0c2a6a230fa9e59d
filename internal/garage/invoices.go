package garage

import (
	"fmt"
	"time"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
)

// spanishMonths maps time.Month to the lowercase Spanish month names used in
// invoice labels.
var spanishMonths = [...]string{
	time.January:   "enero",
	time.February:  "febrero",
	time.March:     "marzo",
	time.April:     "abril",
	time.May:       "mayo",
	time.June:      "junio",
	time.July:      "julio",
	time.August:    "agosto",
	time.September: "septiembre",
	time.October:   "octubre",
	time.November:  "noviembre",
	time.December:  "diciembre",
}

// MonthKey formats a point in time as the stable YYYY-MM key used to select
// invoice months.
func MonthKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthInterval parses a YYYY-MM key into the half-open interval
// [month-01, nextMonth-01). December rolls the year over.
func MonthInterval(key string) (start, end time.Time, err error) {
	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	start = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end, nil
}

// ProjectInvoices transforms work orders into derived invoice records for
// the selected month. Only orders whose creation time falls within the
// month's half-open interval are included. An invoice is active iff its
// source order is completed, archived otherwise. Vehicle brand/model/plate
// are attached when the vehicle is known; an unknown vehicle leaves those
// fields empty rather than failing. When includeArchived is false the
// result is filtered to active invoices after projection. Ordering is the
// caller's responsibility.
func ProjectInvoices(orders []models.WorkOrder, vehiclesByID map[string]models.Vehicle, selectedMonth string, includeArchived bool) ([]models.Invoice, error) {
	start, end, err := MonthInterval(selectedMonth)
	if err != nil {
		return nil, err
	}

	invoices := []models.Invoice{}
	for _, order := range orders {
		created := order.CreatedAt.UTC()
		if created.Before(start) || !created.Before(end) {
			continue
		}

		status := models.InvoiceArchived
		if order.Status == models.StatusCompleted {
			status = models.InvoiceActive
		}
		if !includeArchived && status != models.InvoiceActive {
			continue
		}

		inv := models.Invoice{
			ID:          order.ID.Hex(),
			WorkOrderID: order.ID.Hex(),
			VehicleID:   order.VehicleID,
			Total:       CostOrZero(order),
			Status:      status,
			Month:       int(created.Month()),
			Year:        created.Year(),
			Date:        order.CreatedAt,
		}
		if vehicle, ok := vehiclesByID[order.VehicleID]; ok {
			inv.VehicleBrand = vehicle.Brand
			inv.VehicleModel = vehicle.Model
			inv.VehiclePlate = vehicle.Plate
		}
		invoices = append(invoices, inv)
	}

	return invoices, nil
}

// InvoiceTotals summarizes a projected invoice list. The totals are computed
// over exactly the invoices the projector returned.
type InvoiceTotals struct {
	TotalAmount    float64 `json:"total_amount"`
	CompletedCount int     `json:"completed_count"`
	ArchivedCount  int     `json:"archived_count"`
}

// SummarizeInvoices computes billing totals over a projected invoice list.
func SummarizeInvoices(invoices []models.Invoice) InvoiceTotals {
	totals := InvoiceTotals{}
	for _, inv := range invoices {
		totals.TotalAmount += inv.Total
		if inv.Status == models.InvoiceActive {
			totals.CompletedCount++
		} else {
			totals.ArchivedCount++
		}
	}
	return totals
}

// MonthOption is a selectable month with its stable key and Spanish display
// label.
type MonthOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MonthList produces n consecutive calendar months ending at now's month,
// most recent first. The same input date always yields the same list.
func MonthList(now time.Time, n int) []MonthOption {
	months := make([]MonthOption, 0, n)
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		date := first.AddDate(0, -i, 0)
		months = append(months, MonthOption{
			Value: MonthKey(date),
			Label: fmt.Sprintf("%s %d", spanishMonths[date.Month()], date.Year()),
		})
	}
	return months
}

// FormatMonthYear renders a YYYY-MM key as a Spanish report title, e.g.
// "enero de 2024". Invalid keys are returned unchanged.
func FormatMonthYear(key string) string {
	parsed, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return fmt.Sprintf("%s de %d", spanishMonths[parsed.Month()], parsed.Year())
}
