package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FuelEvent holds the structure for the fuelEvents collection in mongo.
// TotalCost and EfficiencyKmPerL are derived once at creation time from the
// dispensed liters, cost per liter and distance covered.
type FuelEvent struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TruckID          string             `json:"truckId" bson:"truckId"`
	Date             time.Time          `json:"date" bson:"date"`
	Liters           float64            `json:"liters" bson:"liters"`
	CostPerLiter     float64            `json:"costPerLiter" bson:"costPerLiter"`
	TotalCost        float64            `json:"totalCost" bson:"totalCost"`
	DistanceKm       float64            `json:"distanceKm" bson:"distanceKm"`
	EfficiencyKmPerL float64            `json:"efficiencyKmPerL" bson:"efficiencyKmPerL"`
	Route            string             `json:"route" bson:"route"`
	Attendant        string             `json:"attendant" bson:"attendant"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
}
