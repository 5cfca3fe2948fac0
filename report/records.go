package report

import (
	"time"

	"github.com/fleetworks/fleet-manager-api/models"
)

// Record builders turn fetched entities into the dynamic Records the
// projector walks. Each builder attaches the joined truck as a nested record
// so paths like truck.registration resolve uniformly across entity types; a
// missing truck simply leaves the step unresolved and the projector degrades
// to the sentinel.

func truckSubrecord(truck *models.Truck) Record {
	if truck == nil {
		return nil
	}
	return Record{
		"id":           truck.ID.Hex(),
		"registration": truck.Registration,
		"make":         truck.Make,
		"model":        truck.Model,
	}
}

// TruckRecord builds the projector view of a truck.
func TruckRecord(truck models.Truck) Record {
	return Record{
		"id":           truck.ID.Hex(),
		"registration": truck.Registration,
		"make":         truck.Make,
		"model":        truck.Model,
		"year":         truck.Year,
		"status":       truck.Status,
	}
}

// FuelRecord builds the projector view of a fuel event joined with its truck.
func FuelRecord(event models.FuelEvent, truck *models.Truck) Record {
	rec := Record{
		"date":             event.Date,
		"liters":           event.Liters,
		"costPerLiter":     event.CostPerLiter,
		"totalCost":        event.TotalCost,
		"distanceKm":       event.DistanceKm,
		"efficiencyKmPerL": event.EfficiencyKmPerL,
		"route":            event.Route,
		"attendant":        event.Attendant,
	}
	if sub := truckSubrecord(truck); sub != nil {
		rec["truck"] = sub
	}
	return rec
}

// MaintenanceRecord builds the projector view of a maintenance event. The
// spare-part lines are passed through raw; the projector aggregates them.
// The event's total cost is derived here: labor plus the parts rollup.
func MaintenanceRecord(event models.MaintenanceEvent, truck *models.Truck) Record {
	rec := Record{
		"serviceDate": event.ServiceDate,
		"category":    event.Category,
		"type":        event.Type,
		"description": event.Description,
		"laborCost":   event.LaborCost,
		"vendor":      event.Vendor,
		"technician":  event.Technician,
		"spareParts":  event.SpareParts,
		"totalCost":   event.LaborCost + AggregateSpareParts(event.SpareParts).TotalCost,
	}
	if sub := truckSubrecord(truck); sub != nil {
		rec["truck"] = sub
	}
	return rec
}

// ComplianceRecord builds the projector view of a compliance document. Status
// and days-to-expiry are recomputed from the expiry date at call time; the
// stored values are never trusted here.
func ComplianceRecord(doc models.ComplianceDocument, truck *models.Truck, now time.Time) Record {
	days := models.DaysToExpiry(doc.ExpiryDate, now)
	rec := Record{
		"documentType":      doc.DocumentType,
		"certificateNumber": doc.CertificateNumber,
		"issueDate":         doc.IssueDate,
		"expiryDate":        doc.ExpiryDate,
		"issuingAuthority":  doc.IssuingAuthority,
		"cost":              doc.Cost,
		"status":            models.ComplianceStatusForDays(days),
		"daysToExpiry":      days,
	}
	if sub := truckSubrecord(truck); sub != nil {
		rec["truck"] = sub
	}
	return rec
}
