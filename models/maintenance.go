package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaintenanceEvent holds the structure for the maintenanceEvents collection in mongo
type MaintenanceEvent struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TruckID     string             `json:"truckId" bson:"truckId"`
	ServiceDate time.Time          `json:"serviceDate" bson:"serviceDate"`
	Category    string             `json:"category" bson:"category"` // "preventive", "corrective", "emergency"
	Type        string             `json:"type" bson:"type"`         // "maintenance" or "service"
	Description string             `json:"description" bson:"description"`
	LaborCost   float64            `json:"laborCost" bson:"laborCost"`
	Vendor      string             `json:"vendor" bson:"vendor"`
	Technician  string             `json:"technician" bson:"technician"`
	SpareParts  []SparePartLine    `json:"spareParts" bson:"spareParts"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}

// SparePartLine is a single spare-part line item attached to a maintenance
// event. TotalPrice is computed when the event is recorded and trusted
// downstream, the report engine never recomputes it.
type SparePartLine struct {
	Name                 string  `json:"name" bson:"name"`
	Quantity             int     `json:"quantity" bson:"quantity"`
	UnitPrice            float64 `json:"unitPrice" bson:"unitPrice"`
	TotalPrice           float64 `json:"totalPrice" bson:"totalPrice"`
	PartNumber           string  `json:"partNumber,omitempty" bson:"partNumber,omitempty"`
	InstallationLocation string  `json:"installationLocation,omitempty" bson:"installationLocation,omitempty"`
}
