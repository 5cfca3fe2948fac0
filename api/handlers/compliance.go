package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/fleetworks/fleet-manager-api/config"
	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/models"
)

// Compliance exported for testing purposes
type Compliance struct {
	DB databases.ComplianceDatabase
}

// ComplianceHandler returns all compliance documents sorted by expiry date
func (c Compliance) ComplianceHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if docType := r.URL.Query().Get("documentType"); docType != "" {
		filter["documentType"] = docType
	}

	dbResp, err := c.DB.Find(context.TODO(), filter, &options.FindOptions{
		Limit: &limit64,
		Skip:  &skip64,
		Sort:  bson.D{{Key: "expiryDate", Value: 1}},
	})
	if err != nil {
		config.ErrorStatus("failed to get compliance documents", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.ComplianceDocument{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ComplianceByIDHandler returns a compliance document by ID
func (c Compliance) ComplianceByIDHandler(w http.ResponseWriter, r *http.Request) {
	complianceID := mux.Vars(r)["compliance_id"]

	cID, err := primitive.ObjectIDFromHex(complianceID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := c.DB.FindOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to get compliance document by ID", http.StatusNotFound, w, err)
		return
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ComplianceByTruckIDHandler returns all compliance documents for the given truck
func (c Compliance) ComplianceByTruckIDHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]

	zap.S().Debugf("truck_id: '%v'", truckID)

	dbResp, err := c.DB.Find(context.TODO(), bson.M{
		"truckId": truckID,
	}, options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}}))
	if err != nil {
		config.ErrorStatus("failed to get compliance documents by truck id", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.ComplianceDocument{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// ExpiringComplianceHandler returns the documents expiring within the given
// window (default 30 days), plus everything already expired
func (c Compliance) ExpiringComplianceHandler(w http.ResponseWriter, r *http.Request) {
	days, err := strconv.Atoi(r.URL.Query().Get("days"))
	if err != nil || days <= 0 {
		days = 30
	}

	cutoff := time.Now().AddDate(0, 0, days)
	dbResp, err := c.DB.Find(context.TODO(), bson.M{
		"expiryDate": bson.M{"$lte": cutoff},
	}, options.Find().SetSort(bson.D{{Key: "expiryDate", Value: 1}}))
	if err != nil {
		config.ErrorStatus("failed to get expiring compliance documents", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.ComplianceDocument{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateComplianceHandler creates a compliance document. Status and
// days-to-expiry are derived from the expiry date at creation time.
func (c Compliance) CreateComplianceHandler(w http.ResponseWriter, r *http.Request) {
	var doc models.ComplianceDocument
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if doc.TruckID == "" {
		config.ErrorStatus("truckId is required", http.StatusBadRequest, w, fmt.Errorf("empty truckId"))
		return
	}
	if doc.ExpiryDate.IsZero() {
		config.ErrorStatus("expiryDate is required", http.StatusBadRequest, w, fmt.Errorf("empty expiryDate"))
		return
	}

	doc.ID = primitive.NewObjectID()
	doc.DaysToExpiry = models.DaysToExpiry(doc.ExpiryDate, time.Now())
	doc.Status = models.ComplianceStatusForDays(doc.DaysToExpiry)
	doc.CreatedAt = time.Now()

	_, err := c.DB.InsertOne(context.Background(), doc)
	if err != nil {
		config.ErrorStatus("failed to create compliance document", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Compliance document created successfully",
		"id":      doc.ID.Hex(),
		"status":  doc.Status,
	})
}

// DeleteComplianceHandler deletes a compliance document by ID
func (c Compliance) DeleteComplianceHandler(w http.ResponseWriter, r *http.Request) {
	complianceID := mux.Vars(r)["compliance_id"]

	cID, err := primitive.ObjectIDFromHex(complianceID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = c.DB.DeleteOne(context.Background(), bson.M{"_id": cID})
	if err != nil {
		config.ErrorStatus("failed to delete compliance document", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Compliance document deleted successfully",
	})
}
