package databases

//go generate: mockery --name FuelDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetworks/fleet-manager-api/models"
)

const fuelName = "fuelEvents"

// FuelDatabase contains the methods to use with the fuel event database
type FuelDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.FuelEvent, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FuelEvent, error)
	InsertOne(ctx context.Context, event models.FuelEvent, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type fuelDatabase struct {
	db DatabaseHelper
}

// NewFuelDatabase initializes a new instance of fuel database with the provided db connection
func NewFuelDatabase(db DatabaseHelper) FuelDatabase {
	return &fuelDatabase{
		db: db,
	}
}

func (c *fuelDatabase) FindOne(ctx context.Context, filter interface{}) (*models.FuelEvent, error) {
	event := &models.FuelEvent{}
	err := c.db.Collection(fuelName).FindOne(ctx, filter).Decode(&event)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (c *fuelDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.FuelEvent, error) {
	var events []models.FuelEvent
	err := c.db.Collection(fuelName).Find(ctx, filter, opts...).Decode(&events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *fuelDatabase) InsertOne(ctx context.Context, event models.FuelEvent, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(fuelName).InsertOne(ctx, event, opts...)
}

func (c *fuelDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(fuelName).DeleteOne(ctx, filter, opts...)
}
