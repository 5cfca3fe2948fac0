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

	"github.com/fleetworks/fleet-manager-api/api/handlers"
	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/databases/mocks"
	"github.com/fleetworks/fleet-manager-api/models"
)

func TestCompliance_CreateComplianceHandlerDerivesStatus(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{
		"truckId":           "5fc51f58c72ff10004dca382",
		"documentType":      models.DocumentTypeInsurance,
		"certificateNumber": "INS-2025-001",
		"expiryDate":        time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
	})
	req, err := http.NewRequest("POST", "/api/v1/compliance", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertOneResult := &mocks.InsertOneResultHelper{}

	var inserted models.ComplianceDocument
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertOneResult, nil).Run(func(args mock.Arguments) {
		inserted = args.Get(1).(models.ComplianceDocument)
	})
	db.On("Collection", "complianceDocuments").Return(conn)

	complianceDatabase := databases.NewComplianceDatabase(db)
	u := handlers.Compliance{
		DB: complianceDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateComplianceHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), models.ComplianceStatusExpiring)
	assert.Equal(t, models.ComplianceStatusExpiring, inserted.Status)
	assert.Equal(t, 10, inserted.DaysToExpiry)
}

func TestCompliance_CreateComplianceHandlerFailedInsert(t *testing.T) {
	body, _ := json.Marshal(map[string]interface{}{
		"truckId":      "5fc51f58c72ff10004dca382",
		"documentType": models.DocumentTypeInsurance,
		"expiryDate":   time.Now().AddDate(0, 0, 10).Format(time.RFC3339),
	})
	req, err := http.NewRequest("POST", "/api/v1/compliance", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "complianceDocuments").Return(conn)

	complianceDatabase := databases.NewComplianceDatabase(db)
	u := handlers.Compliance{
		DB: complianceDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateComplianceHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, `{"response": "failed to create compliance document, mocked-error"}`, rr.Body.String())
}

func TestCompliance_CreateComplianceHandlerMissingExpiry(t *testing.T) {
	body := bytes.NewReader([]byte(`{"truckId": "5fc51f58c72ff10004dca382"}`))
	req, err := http.NewRequest("POST", "/api/v1/compliance", body)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	complianceDatabase := databases.NewComplianceDatabase(db)
	u := handlers.Compliance{
		DB: complianceDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.CreateComplianceHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompliance_ExpiringComplianceHandler(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/compliance-documents/expiring?days=14", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &MockDatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursorHelper := &mocks.CursorHelper{}

	cursorHelper.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.ComplianceDocument)
		*arg = []models.ComplianceDocument{
			{DocumentType: models.DocumentTypeInspection, CertificateNumber: "NTSA-991"},
		}
	})
	conn.On("Find", mock.Anything, mock.Anything, mock.Anything).Return(cursorHelper)
	db.On("Collection", "complianceDocuments").Return(conn)

	complianceDatabase := databases.NewComplianceDatabase(db)
	u := handlers.Compliance{
		DB: complianceDatabase,
	}

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(u.ExpiringComplianceHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "NTSA-991")
}
