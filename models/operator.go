package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Operator holds the structure for the operators collection in mongo. An
// operator is a back-office user allowed to manage fleet records and run
// reports.
type Operator struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"`
	Name      string             `json:"name" bson:"name"`
	Password  string             `json:"-" bson:"password"`
	Roles     []string           `json:"roles" bson:"roles"`
	Active    bool               `json:"active" bson:"active"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
