package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Vehicle represents a customer vehicle registered in the workshop.
type Vehicle struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Brand     string             `bson:"brand" json:"brand"`
	Model     string             `bson:"model" json:"model"`
	Plate     string             `bson:"plate" json:"plate"`
	Year      *int               `bson:"year,omitempty" json:"year,omitempty"`
	Archived  bool               `bson:"archived" json:"archived"`
	OwnerID   string             `bson:"owner_id,omitempty" json:"owner_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// CreateVehicleRequest represents the payload for registering a vehicle.
type CreateVehicleRequest struct {
	Brand   string `json:"brand"`
	Model   string `json:"model"`
	Plate   string `json:"plate"`
	Year    *int   `json:"year,omitempty"`
	OwnerID string `json:"owner_id,omitempty"`
}
