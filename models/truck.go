package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Truck holds the structure for the trucks collection in mongo
type Truck struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Registration string             `json:"registration" bson:"registration"`
	Make         string             `json:"make" bson:"make"`
	Model        string             `json:"model" bson:"model"`
	Year         int                `json:"year" bson:"year"`
	Status       string             `json:"status" bson:"status"` // "active" or "inactive"
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}
