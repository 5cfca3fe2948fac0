package databases

//go generate: mockery --name TruckDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetworks/fleet-manager-api/models"
)

const truckName = "trucks"

// TruckDatabase contains the methods to use with the truck database
type TruckDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.Truck, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Truck, error)
	InsertOne(ctx context.Context, truck models.Truck, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type truckDatabase struct {
	db DatabaseHelper
}

// NewTruckDatabase initializes a new instance of truck database with the provided db connection
func NewTruckDatabase(db DatabaseHelper) TruckDatabase {
	return &truckDatabase{
		db: db,
	}
}

func (c *truckDatabase) FindOne(ctx context.Context, filter interface{}) (*models.Truck, error) {
	truck := &models.Truck{}
	err := c.db.Collection(truckName).FindOne(ctx, filter).Decode(&truck)
	if err != nil {
		return nil, err
	}
	return truck, nil
}

func (c *truckDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Truck, error) {
	var trucks []models.Truck
	err := c.db.Collection(truckName).Find(ctx, filter, opts...).Decode(&trucks)
	if err != nil {
		return nil, err
	}
	return trucks, nil
}

func (c *truckDatabase) InsertOne(ctx context.Context, truck models.Truck, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(truckName).InsertOne(ctx, truck, opts...)
}

func (c *truckDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(truckName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *truckDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(truckName).DeleteOne(ctx, filter, opts...)
}
