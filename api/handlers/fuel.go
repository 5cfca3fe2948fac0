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

// Fuel exported for testing purposes
type Fuel struct {
	DB databases.FuelDatabase
}

// FuelHandler returns all fuel events
func (f Fuel) FuelHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	dbResp, err := f.DB.Find(context.TODO(), bson.M{}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get fuel events", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.FuelEvent{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// FuelByIDHandler returns a fuel event by ID
func (f Fuel) FuelByIDHandler(w http.ResponseWriter, r *http.Request) {
	fuelID := mux.Vars(r)["fuel_id"]

	fID, err := primitive.ObjectIDFromHex(fuelID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := f.DB.FindOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to get fuel event by ID", http.StatusNotFound, w, err)
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

// FuelByTruckIDHandler returns all fuel events for the given truck
func (f Fuel) FuelByTruckIDHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v", Limit|10))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	zap.S().Debugf("truck_id: '%v'", truckID)

	dbResp, err := f.DB.Find(context.TODO(), bson.M{
		"truckId": truckID,
	}, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get fuel events by truck id", http.StatusNotFound, w, err)
		return
	}

	if len(dbResp) == 0 {
		dbResp = []models.FuelEvent{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// CreateFuelHandler creates a fuel event. Total cost and fuel efficiency are
// derived here from the dispensed liters, cost per liter and distance covered.
func (f Fuel) CreateFuelHandler(w http.ResponseWriter, r *http.Request) {
	var event models.FuelEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if event.TruckID == "" {
		config.ErrorStatus("truckId is required", http.StatusBadRequest, w, fmt.Errorf("empty truckId"))
		return
	}
	if event.Liters <= 0 {
		config.ErrorStatus("liters must be positive", http.StatusBadRequest, w, fmt.Errorf("liters: %v", event.Liters))
		return
	}

	event.ID = primitive.NewObjectID()
	event.TotalCost = math.Round(event.Liters*event.CostPerLiter*100) / 100
	if event.DistanceKm > 0 {
		event.EfficiencyKmPerL = math.Round(event.DistanceKm/event.Liters*100) / 100
	}
	if event.Date.IsZero() {
		event.Date = time.Now()
	}
	event.CreatedAt = time.Now()

	_, err := f.DB.InsertOne(context.Background(), event)
	if err != nil {
		config.ErrorStatus("failed to create fuel event", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Fuel event created successfully",
		"id":      event.ID.Hex(),
	})
}

// DeleteFuelHandler deletes a fuel event by ID
func (f Fuel) DeleteFuelHandler(w http.ResponseWriter, r *http.Request) {
	fuelID := mux.Vars(r)["fuel_id"]

	fID, err := primitive.ObjectIDFromHex(fuelID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = f.DB.DeleteOne(context.Background(), bson.M{"_id": fID})
	if err != nil {
		config.ErrorStatus("failed to delete fuel event", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Fuel event deleted successfully",
	})
}
