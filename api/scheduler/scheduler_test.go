package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetworks/fleet-manager-api/databases/mocks"
	"github.com/fleetworks/fleet-manager-api/models"
)

func TestRefreshComplianceStatusesUpdatesStaleDocuments(t *testing.T) {
	now := time.Now().UTC()
	staleID := primitive.NewObjectID()

	docs := []models.ComplianceDocument{
		// expired five days ago but still stored as VALID
		{
			ID:           staleID,
			ExpiryDate:   now.AddDate(0, 0, -5),
			Status:       models.ComplianceStatusValid,
			DaysToExpiry: 10,
		},
		// already correct, must not be written again
		{
			ExpiryDate:   now.AddDate(0, 0, 90),
			Status:       models.ComplianceStatusValid,
			DaysToExpiry: 90,
		},
	}

	cDB := mocks.NewComplianceDatabase(t)
	cDB.On("Find", mock.Anything, mock.Anything).Return(docs, nil)
	cDB.On("UpdateOne", mock.Anything, bson.M{"_id": staleID}, mock.Anything).Return(nil).Once()

	s := NewScheduler(cDB)
	s.refreshComplianceStatuses()

	cDB.AssertNumberOfCalls(t, "UpdateOne", 1)
}

func TestRefreshComplianceStatusesFetchError(t *testing.T) {
	cDB := mocks.NewComplianceDatabase(t)
	cDB.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	s := NewScheduler(cDB)
	// must not panic or attempt any updates
	s.refreshComplianceStatuses()

	cDB.AssertNotCalled(t, "UpdateOne")
}
