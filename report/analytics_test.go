package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fleetworks/fleet-manager-api/models"
)

func TestFuelAnalytics(t *testing.T) {
	events := []models.FuelEvent{
		{Liters: 100, TotalCost: 15000, DistanceKm: 250},
		{Liters: 150, TotalCost: 22500, DistanceKm: 375},
	}

	a := FuelAnalytics(events)

	assert.Equal(t, 2, a.RecordCount)
	assert.Equal(t, 250.0, a.TotalLiters)
	assert.Equal(t, 37500.0, a.TotalCost)
	assert.Equal(t, 625.0, a.TotalDistanceKm)
	assert.Equal(t, 2.5, a.AvgEfficiency)
}

func TestFuelAnalyticsEmpty(t *testing.T) {
	a := FuelAnalytics(nil)
	assert.Equal(t, 0, a.RecordCount)
	assert.Zero(t, a.AvgEfficiency)
}

func TestMaintenanceAnalyticsShares(t *testing.T) {
	events := []models.MaintenanceEvent{
		{
			LaborCost: 3000,
			SpareParts: []models.SparePartLine{
				{Name: "Filter", TotalPrice: 500},
				{Name: "Oil", TotalPrice: 500},
			},
		},
		{LaborCost: 1000},
	}

	a := MaintenanceAnalytics(events)

	assert.Equal(t, 2, a.RecordCount)
	assert.Equal(t, 4000.0, a.TotalLaborCost)
	assert.Equal(t, 1000.0, a.TotalSparePartsCost)
	assert.Equal(t, 5000.0, a.TotalCost)
	assert.Equal(t, 20.0, a.SparePartsShare)
}

func TestComplianceAnalyticsRecomputesStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	docs := []models.ComplianceDocument{
		// stored status is stale on purpose: the rollup must recompute
		{ExpiryDate: now.AddDate(0, 0, -5), Status: models.ComplianceStatusValid, Cost: 100},
		{ExpiryDate: now.AddDate(0, 0, 10), Status: models.ComplianceStatusValid, Cost: 200},
		{ExpiryDate: now.AddDate(0, 0, 90), Status: models.ComplianceStatusExpired, Cost: 300},
		{ExpiryDate: now.AddDate(0, 0, 120), Status: models.ComplianceStatusExpired, Cost: 400},
	}

	a := ComplianceAnalytics(docs, now)

	assert.Equal(t, 4, a.RecordCount)
	assert.Equal(t, 1, a.StatusCounts[models.ComplianceStatusExpired])
	assert.Equal(t, 1, a.StatusCounts[models.ComplianceStatusExpiring])
	assert.Equal(t, 2, a.StatusCounts[models.ComplianceStatusValid])
	assert.Equal(t, 50.0, a.PercentValid)
	assert.Equal(t, 1000.0, a.TotalCost)
}

func TestComplianceAnalyticsJSONKeepsZeroPercentValid(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	docs := []models.ComplianceDocument{
		{ExpiryDate: now.AddDate(0, 0, -5), Cost: 100},
		{ExpiryDate: now.AddDate(0, 0, -30), Cost: 200},
	}

	a := ComplianceAnalytics(docs, now)
	assert.Equal(t, 0.0, a.PercentValid)

	b, err := json.Marshal(a)
	assert.NoError(t, err)
	assert.Contains(t, string(b), `"percentValid":0`)
	assert.Contains(t, string(b), `"totalCost":300`)
}

func TestComplianceRecordDerivesStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	doc := models.ComplianceDocument{
		DocumentType: models.DocumentTypeInsurance,
		ExpiryDate:   now.AddDate(0, 0, -5),
		// persisted values are stale on purpose
		Status:       models.ComplianceStatusValid,
		DaysToExpiry: 99,
	}

	rec := ComplianceRecord(doc, nil, now)

	assert.Equal(t, models.ComplianceStatusExpired, rec["status"])
	assert.Equal(t, -5, rec["daysToExpiry"])
}
