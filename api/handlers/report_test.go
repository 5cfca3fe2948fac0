package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetworks/fleet-manager-api/api/handlers"
	"github.com/fleetworks/fleet-manager-api/databases/mocks"
	"github.com/fleetworks/fleet-manager-api/models"
	"github.com/fleetworks/fleet-manager-api/report"
)

func reportHandler(t *testing.T, trucks []models.Truck, fuel []models.FuelEvent, fuelErr error) handlers.Report {
	trucksDB := mocks.NewTruckDatabase(t)
	trucksDB.On("Find", mock.Anything, mock.Anything).Return(trucks, nil).Maybe()
	fuelDB := mocks.NewFuelDatabase(t)
	fuelDB.On("Find", mock.Anything, mock.Anything).Return(fuel, fuelErr).Maybe()

	return handlers.Report{Assembler: &report.Assembler{
		Trucks: trucksDB,
		Fuel:   fuelDB,
		Now:    func() time.Time { return time.Date(2025, 6, 15, 8, 0, 0, 0, time.UTC) },
	}}
}

func TestReport_GenerateReportHandlerValidationError(t *testing.T) {
	rep := reportHandler(t, nil, nil, nil)

	body := []byte(`{"entities": [], "truckScope": "all", "columns": {}}`)
	req, err := http.NewRequest("POST", "/api/v1/reports/generate", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.GenerateReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "entities")
}

func TestReport_GenerateReportHandlerSuccess(t *testing.T) {
	truckID := primitive.NewObjectID()
	trucks := []models.Truck{{ID: truckID, Registration: "KBZ 123A", Make: "Isuzu"}}
	fuel := []models.FuelEvent{{
		TruckID:   truckID.Hex(),
		Date:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Liters:    100,
		TotalCost: 15000,
	}}
	rep := reportHandler(t, trucks, fuel, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"entities":   []string{"truck", "fuel"},
		"truckScope": "all",
		"reportType": "operational",
		"columns": map[string][]string{
			"truck": {"Truck Number (Registration Plate)", "Make"},
			"fuel":  {"Date of Fueling", "Total Cost"},
		},
	})
	req, err := http.NewRequest("POST", "/api/v1/reports/generate", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")
	req.Header.Set("X-Operator", "ops@fleetworks.io")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.GenerateReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var bundle report.Bundle
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bundle))
	assert.Equal(t, "operational", bundle.Metadata.ReportType)
	assert.Equal(t, "ops@fleetworks.io", bundle.Metadata.GeneratedBy)
	assert.Contains(t, rr.Body.String(), "KES 15,000")
	assert.Contains(t, rr.Body.String(), "Jun 01, 2025")
}

func TestReport_GenerateReportHandlerPartialFailure(t *testing.T) {
	trucks := []models.Truck{{ID: primitive.NewObjectID(), Registration: "KBZ 123A"}}
	rep := reportHandler(t, trucks, nil, errors.New("mocked-error"))

	body, _ := json.Marshal(map[string]interface{}{
		"entities":   []string{"truck", "fuel"},
		"truckScope": "all",
		"columns": map[string][]string{
			"truck": {"Truck Number (Registration Plate)"},
			"fuel":  {"Total Cost"},
		},
	})
	req, err := http.NewRequest("POST", "/api/v1/reports/generate", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.GenerateReportHandler)

	handler.ServeHTTP(rr, req)

	// partial bundles still come back 200 with the failure recorded inline
	assert.Equal(t, http.StatusOK, rr.Code)

	var bundle report.Bundle
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &bundle))
	assert.Len(t, bundle.Errors, 1)
	assert.Equal(t, report.EntityFuel, bundle.Errors[0].Entity)
}

func TestReport_ExportReportHandlerCSV(t *testing.T) {
	trucks := []models.Truck{{ID: primitive.NewObjectID(), Registration: "KBZ 123A"}}
	rep := reportHandler(t, trucks, nil, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"entities":   []string{"truck"},
		"truckScope": "all",
		"reportType": "operational",
		"columns": map[string][]string{
			"truck": {"Truck Number (Registration Plate)"},
		},
	})
	req, err := http.NewRequest("POST", "/api/v1/reports/export?format=csv", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.ExportReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/csv", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "fleet-report-operational-2025-06-15.csv")
	assert.Contains(t, rr.Body.String(), "KBZ 123A")
}

func TestReport_ExportReportHandlerUnsupportedFormat(t *testing.T) {
	rep := reportHandler(t, []models.Truck{}, nil, nil)

	body := []byte(`{"entities": ["truck"], "truckScope": "all", "columns": {"truck": ["Make"]}}`)
	req, err := http.NewRequest("POST", "/api/v1/reports/export?format=pdf", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.ExportReportHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestReport_PresetsHandler(t *testing.T) {
	rep := handlers.Report{}

	req, err := http.NewRequest("GET", "/api/v1/reports/presets", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.PresetsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var presets map[string]map[string][]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &presets))
	assert.Contains(t, presets, "comprehensive")
	assert.Contains(t, presets, "compliance")
	assert.Contains(t, presets["comprehensive"]["maintenance"], "Spare Parts Used")
}

func TestReport_ColumnsHandler(t *testing.T) {
	rep := handlers.Report{}

	req, err := http.NewRequest("GET", "/api/v1/reports/columns", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rep.ColumnsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var columns map[string][]string
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &columns))
	assert.Contains(t, columns["fuel"], "Fuel Efficiency (km/L)")
	assert.Contains(t, columns["compliance"], "Days to Expiry")
}
