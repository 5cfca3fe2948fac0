package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
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

// Maintenance exported for testing purposes
type Maintenance struct {
	DB databases.MaintenanceDatabase
}

// MaintenanceHandler returns all maintenance events
func (m Maintenance) MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	dbResp, err := m.DB.Find(context.TODO(), filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get maintenance events", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.MaintenanceEvent{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// MaintenanceByIDHandler returns a maintenance event by ID
func (m Maintenance) MaintenanceByIDHandler(w http.ResponseWriter, r *http.Request) {
	maintenanceID := mux.Vars(r)["maintenance_id"]

	mID, err := primitive.ObjectIDFromHex(maintenanceID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := m.DB.FindOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to get maintenance event by ID", http.StatusNotFound, w, err)
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

// MaintenanceByTruckIDHandler returns all maintenance events for the given truck
func (m Maintenance) MaintenanceByTruckIDHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v", Limit|10))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	zap.S().Debugf("truck_id: '%v'", truckID)

	dbResp, err := m.DB.Find(context.TODO(), bson.M{
		"truckId": truckID,
	}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get maintenance events by truck id", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.MaintenanceEvent{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateMaintenanceHandler creates a maintenance event. Each spare-part line's
// total price is computed here from its quantity and unit price; downstream
// consumers trust the stored value.
func (m Maintenance) CreateMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	var event models.MaintenanceEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if event.TruckID == "" {
		config.ErrorStatus("truckId is required", http.StatusBadRequest, w, fmt.Errorf("empty truckId"))
		return
	}

	event.ID = primitive.NewObjectID()
	if event.ServiceDate.IsZero() {
		event.ServiceDate = time.Now()
	}
	for i := range event.SpareParts {
		part := &event.SpareParts[i]
		if part.Quantity <= 0 {
			part.Quantity = 1
		}
		part.TotalPrice = math.Round(float64(part.Quantity)*part.UnitPrice*100) / 100
	}
	event.CreatedAt = time.Now()

	_, err := m.DB.InsertOne(context.Background(), event)
	if err != nil {
		config.ErrorStatus("failed to create maintenance event", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Maintenance event created successfully",
		"id":      event.ID.Hex(),
	})
}

// DeleteMaintenanceHandler deletes a maintenance event by ID
func (m Maintenance) DeleteMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	maintenanceID := mux.Vars(r)["maintenance_id"]

	mID, err := primitive.ObjectIDFromHex(maintenanceID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = m.DB.DeleteOne(context.Background(), bson.M{"_id": mID})
	if err != nil {
		config.ErrorStatus("failed to delete maintenance event", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Maintenance event deleted successfully",
	})
}
