package report

import (
	"math"
	"time"

	"github.com/fleetworks/fleet-manager-api/models"
)

// Analytics carries the per-entity summary numbers the dashboard cards read.
// Analytics are computed from the fetched records, independent of the column
// selection, so they are available even when an entity has zero columns
// selected.
type Analytics struct {
	RecordCount int `json:"recordCount"`

	TotalCost float64 `json:"totalCost"`

	// fuel
	TotalLiters     float64 `json:"totalLiters,omitempty"`
	TotalDistanceKm float64 `json:"totalDistanceKm,omitempty"`
	AvgEfficiency   float64 `json:"avgEfficiency,omitempty"`

	// maintenance
	TotalLaborCost      float64 `json:"totalLaborCost,omitempty"`
	TotalSparePartsCost float64 `json:"totalSparePartsCost,omitempty"`
	SparePartsShare     float64 `json:"sparePartsShare"`

	// compliance
	StatusCounts map[string]int `json:"statusCounts,omitempty"`
	PercentValid float64        `json:"percentValid"`
}

func round2(n float64) float64 {
	return math.Round(n*100) / 100
}

// TruckAnalytics summarises a truck list.
func TruckAnalytics(trucks []models.Truck) Analytics {
	return Analytics{RecordCount: len(trucks)}
}

// FuelAnalytics rolls up dispensed liters, spend, distance and the fleet's
// average efficiency over the fetched fuel events.
func FuelAnalytics(events []models.FuelEvent) Analytics {
	a := Analytics{RecordCount: len(events)}
	var liters, cost, distance float64
	for _, e := range events {
		liters += e.Liters
		cost += e.TotalCost
		distance += e.DistanceKm
	}
	a.TotalLiters = round2(liters)
	a.TotalCost = round2(cost)
	a.TotalDistanceKm = round2(distance)
	if liters > 0 {
		a.AvgEfficiency = round2(distance / liters)
	}
	return a
}

// MaintenanceAnalytics splits maintenance spend into labor and spare parts
// and reports the parts share of the total as a percentage.
func MaintenanceAnalytics(events []models.MaintenanceEvent) Analytics {
	a := Analytics{RecordCount: len(events)}
	var labor, parts float64
	for _, e := range events {
		labor += e.LaborCost
		parts += AggregateSpareParts(e.SpareParts).TotalCost
	}
	total := labor + parts
	a.TotalLaborCost = round2(labor)
	a.TotalSparePartsCost = round2(parts)
	a.TotalCost = round2(total)
	if total > 0 {
		a.SparePartsShare = round2(parts / total * 100)
	}
	return a
}

// ComplianceAnalytics recomputes every document's status at call time and
// reports the breakdown plus the share of valid documents.
func ComplianceAnalytics(docs []models.ComplianceDocument, now time.Time) Analytics {
	a := Analytics{RecordCount: len(docs)}
	if len(docs) == 0 {
		return a
	}
	counts := map[string]int{
		models.ComplianceStatusValid:    0,
		models.ComplianceStatusExpiring: 0,
		models.ComplianceStatusExpired:  0,
	}
	var cost float64
	for _, d := range docs {
		status := models.ComplianceStatusForDays(models.DaysToExpiry(d.ExpiryDate, now))
		counts[status]++
		cost += d.Cost
	}
	a.StatusCounts = counts
	a.TotalCost = round2(cost)
	a.PercentValid = round2(float64(counts[models.ComplianceStatusValid]) / float64(len(docs)) * 100)
	return a
}
