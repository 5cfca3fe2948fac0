package databases

//go generate: mockery --name MaintenanceDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetworks/fleet-manager-api/models"
)

const maintenanceName = "maintenanceEvents"

// MaintenanceDatabase contains the methods to use with the maintenance event database
type MaintenanceDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.MaintenanceEvent, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MaintenanceEvent, error)
	InsertOne(ctx context.Context, event models.MaintenanceEvent, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type maintenanceDatabase struct {
	db DatabaseHelper
}

// NewMaintenanceDatabase initializes a new instance of maintenance database with the provided db connection
func NewMaintenanceDatabase(db DatabaseHelper) MaintenanceDatabase {
	return &maintenanceDatabase{
		db: db,
	}
}

func (c *maintenanceDatabase) FindOne(ctx context.Context, filter interface{}) (*models.MaintenanceEvent, error) {
	event := &models.MaintenanceEvent{}
	err := c.db.Collection(maintenanceName).FindOne(ctx, filter).Decode(&event)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (c *maintenanceDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.MaintenanceEvent, error) {
	var events []models.MaintenanceEvent
	err := c.db.Collection(maintenanceName).Find(ctx, filter, opts...).Decode(&events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (c *maintenanceDatabase) InsertOne(ctx context.Context, event models.MaintenanceEvent, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(maintenanceName).InsertOne(ctx, event, opts...)
}

func (c *maintenanceDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(maintenanceName).DeleteOne(ctx, filter, opts...)
}
