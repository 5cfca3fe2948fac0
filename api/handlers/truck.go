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

var (
	// Page denotes the starting Page for pagination results
	Page = 0
)

// Truck exported for testing purposes
type Truck struct {
	DB databases.TruckDatabase
}

// TruckHandler returns all trucks
func (t Truck) TruckHandler(w http.ResponseWriter, r *http.Request) {
	Limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		zap.S().Warnf(fmt.Sprintf("limit not set, using default of %v, err: %v", Limit|10, err))
	}
	limit64 := int64(Limit)
	Page = getPage(Page, r)
	skip64 := int64(Page * Limit)

	filter := bson.M{}
	if status := r.URL.Query().Get("status"); status != "" {
		filter["status"] = status
	}

	dbResp, err := t.DB.Find(context.TODO(), filter, &options.FindOptions{Limit: &limit64, Skip: &skip64})
	if err != nil {
		config.ErrorStatus("failed to get trucks", http.StatusNotFound, w, err)
		return
	}
	// Because the frontend requires that the data elements inside models.Truck
	// exist, if len == 0 then we will just return an empty data object
	if len(dbResp) == 0 {
		dbResp = []models.Truck{}
	}
	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// TruckByIDHandler returns a truck by ID
func (t Truck) TruckByIDHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]

	zap.S().Debugf("truck_id: %v", truckID)

	tID, err := primitive.ObjectIDFromHex(truckID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	dbResp, err := t.DB.FindOne(context.Background(), bson.M{"_id": tID})
	if err != nil {
		config.ErrorStatus("failed to get truck by ID", http.StatusNotFound, w, err)
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

// CreateTruckHandler creates a truck
func (t Truck) CreateTruckHandler(w http.ResponseWriter, r *http.Request) {
	var truck models.Truck
	if err := json.NewDecoder(r.Body).Decode(&truck); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	if truck.Registration == "" {
		config.ErrorStatus("registration is required", http.StatusBadRequest, w, fmt.Errorf("empty registration"))
		return
	}
	if truck.Status == "" {
		truck.Status = "active"
	}

	truck.ID = primitive.NewObjectID()
	truck.CreatedAt = time.Now()
	truck.UpdatedAt = truck.CreatedAt

	_, err := t.DB.InsertOne(context.Background(), truck)
	if err != nil {
		config.ErrorStatus("failed to create truck", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Truck created successfully",
		"id":      truck.ID.Hex(),
	})
}

// UpdateTruckHandler updates a truck's details
func (t Truck) UpdateTruckHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]

	tID, err := primitive.ObjectIDFromHex(truckID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	var truck models.Truck
	if err := json.NewDecoder(r.Body).Decode(&truck); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	truck.UpdatedAt = time.Now()

	err = t.DB.UpdateOne(context.Background(), bson.M{"_id": tID}, bson.M{"$set": bson.M{
		"registration": truck.Registration,
		"make":         truck.Make,
		"model":        truck.Model,
		"year":         truck.Year,
		"status":       truck.Status,
		"updatedAt":    truck.UpdatedAt,
	}})
	if err != nil {
		config.ErrorStatus("failed to update truck", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Truck updated successfully",
	})
}

// DeleteTruckHandler deletes a truck by ID
func (t Truck) DeleteTruckHandler(w http.ResponseWriter, r *http.Request) {
	truckID := mux.Vars(r)["truck_id"]

	tID, err := primitive.ObjectIDFromHex(truckID)
	if err != nil {
		config.ErrorStatus("failed to get objectID from Hex", http.StatusBadRequest, w, err)
		return
	}

	err = t.DB.DeleteOne(context.Background(), bson.M{"_id": tID})
	if err != nil {
		config.ErrorStatus("failed to delete truck", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "Truck deleted successfully",
	})
}

func getPage(Page int, r *http.Request) int {
	if r.URL.Query().Get("page") == "" {
		zap.S().Warnf("page not set, using default of %v", Page)
	} else {
		var err error
		Page, err = strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil {
			zap.S().Errorf(fmt.Sprintf("error parsing page number: %v", err))
		}
		if Page < 0 {
			zap.S().Warnf(fmt.Sprintf("cannot process page number less than 1. Got: %v", Page))
			return 0
		}
	}
	return Page
}
