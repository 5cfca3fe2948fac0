package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/fleetworks/fleet-manager-api/config"
	"github.com/fleetworks/fleet-manager-api/databases"
	"github.com/fleetworks/fleet-manager-api/databases/mocks"
	"github.com/fleetworks/fleet-manager-api/models"
)

func TestNewTruckDatabase(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	truckDB := databases.NewTruckDatabase(db)

	assert.NotEmpty(t, truckDB)
}

func TestTruckDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Truck)
		(*arg).Registration = "KDD-001T"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "trucks").Return(collectionHelper)

	truckDba := databases.NewTruckDatabase(dbHelper)

	truck, err := truckDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, truck)
	assert.EqualError(t, err, "mocked-error")

	truck, err = truckDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, "KDD-001T", truck.Registration)
	assert.NoError(t, err)
}

func TestTruckDatabase_Find(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var curHelperErr databases.CursorHelper
	var curHelperCorrect databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	curHelperErr = &mocks.CursorHelper{}
	curHelperCorrect = &mocks.CursorHelper{}

	curHelperErr.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	curHelperCorrect.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.Truck)
		*arg = []models.Truck{{Registration: "KDD-001T"}, {Registration: "KDE-442B"}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": true}).
		Return(curHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.M{"error": false}).
		Return(curHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "trucks").Return(collectionHelper)

	truckDba := databases.NewTruckDatabase(dbHelper)

	trucks, err := truckDba.Find(context.Background(), bson.M{"error": true})

	assert.Empty(t, trucks)
	assert.EqualError(t, err, "mocked-error")

	trucks, err = truckDba.Find(context.Background(), bson.M{"error": false})

	assert.Len(t, trucks, 2)
	assert.Equal(t, "KDD-001T", trucks[0].Registration)
	assert.NoError(t, err)
}

func TestTruckDatabase_UpdateOne(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(), bson.M{"error": true}, mock.Anything).
		Return(int64(0), errors.New("mocked-error"))

	collectionHelper.(*mocks.CollectionHelper).
		On("UpdateOne", context.Background(), bson.M{"error": false}, mock.Anything).
		Return(int64(1), nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "trucks").Return(collectionHelper)

	truckDba := databases.NewTruckDatabase(dbHelper)

	err := truckDba.UpdateOne(context.Background(), bson.M{"error": true}, bson.M{"$set": bson.M{"status": "inactive"}})
	assert.EqualError(t, err, "mocked-error")

	err = truckDba.UpdateOne(context.Background(), bson.M{"error": false}, bson.M{"$set": bson.M{"status": "inactive"}})
	assert.NoError(t, err)
}
