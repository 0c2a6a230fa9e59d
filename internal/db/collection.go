package db

import (
	"context"

	"github.com/LuisBatalla/auto-admin-portal/internal/models"
	"go.mongodb.org/mongo-driver/bson"
)

// VehicleCollection defines the interface for vehicle data operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (*models.Vehicle, error)
	FindVehicles(ctx context.Context, filter bson.M) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	SetVehicleArchived(ctx context.Context, id string, archived bool) error
}

// WorkOrderCollection defines the interface for work-order data operations.
type WorkOrderCollection interface {
	InsertWorkOrder(ctx context.Context, order models.WorkOrder) (*models.WorkOrder, error)
	FindWorkOrders(ctx context.Context, filter bson.M) ([]models.WorkOrder, error)
	FindWorkOrderByID(ctx context.Context, id string) (*models.WorkOrder, error)
	UpdateWorkOrderStatus(ctx context.Context, id string, status models.WorkOrderStatus) (*models.WorkOrder, error)
}

// UserCollection defines the interface for user database operations
type UserCollection interface {
	InsertUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, id string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, id string, user models.User) error
	UpdateLastLogin(ctx context.Context, id string) error
}
