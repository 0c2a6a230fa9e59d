package garage

import (
	"testing"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCanArchive(t *testing.T) {
	orders := []models.WorkOrder{
		order("v1", models.StatusPending),
		order("v1", models.StatusInProgress),
	}
	assert.False(t, CanArchive(orders))
	assert.False(t, CanArchive(nil))

	// Once one order completes the vehicle becomes eligible.
	orders[1].Status = models.StatusCompleted
	assert.True(t, CanArchive(orders))

	assert.False(t, CanArchive([]models.WorkOrder{order("v1", models.StatusCancelled)}))
}

func TestIsArchivedVisible(t *testing.T) {
	active := models.Vehicle{Brand: "Toyota"}
	archived := models.Vehicle{Brand: "Honda", Archived: true}

	assert.True(t, IsArchivedVisible(active, false))
	assert.False(t, IsArchivedVisible(active, true))
	assert.True(t, IsArchivedVisible(archived, true))
	assert.False(t, IsArchivedVisible(archived, false))
}

func TestFilterVehicles_Idempotent(t *testing.T) {
	vehicles := []models.Vehicle{
		{Brand: "Toyota"},
		{Brand: "Honda", Archived: true},
		{Brand: "Ford"},
	}

	once := FilterVehicles(vehicles, false)
	twice := FilterVehicles(once, false)
	assert.Equal(t, once, twice)
	assert.Len(t, once, 2)

	archivedOnce := FilterVehicles(vehicles, true)
	archivedTwice := FilterVehicles(archivedOnce, true)
	assert.Equal(t, archivedOnce, archivedTwice)
	assert.Len(t, archivedOnce, 1)
	assert.Equal(t, "Honda", archivedOnce[0].Brand)
}

func TestOrdersForVehicle(t *testing.T) {
	orders := []models.WorkOrder{
		order("v1", models.StatusPending),
		order("v2", models.StatusCompleted),
		order("v1", models.StatusCancelled),
	}
	assert.Len(t, OrdersForVehicle("v1", orders), 2)
	assert.Len(t, OrdersForVehicle("v2", orders), 1)
	assert.Empty(t, OrdersForVehicle("v3", orders))
}
