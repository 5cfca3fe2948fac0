package databases

//go generate: mockery --name ComplianceDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetworks/fleet-manager-api/models"
)

const complianceName = "complianceDocuments"

// ComplianceDatabase contains the methods to use with the compliance document database
type ComplianceDatabase interface {
	FindOne(ctx context.Context, filter interface{}) (*models.ComplianceDocument, error)
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ComplianceDocument, error)
	InsertOne(ctx context.Context, doc models.ComplianceDocument, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error
	DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error
}

type complianceDatabase struct {
	db DatabaseHelper
}

// NewComplianceDatabase initializes a new instance of compliance database with the provided db connection
func NewComplianceDatabase(db DatabaseHelper) ComplianceDatabase {
	return &complianceDatabase{
		db: db,
	}
}

func (c *complianceDatabase) FindOne(ctx context.Context, filter interface{}) (*models.ComplianceDocument, error) {
	doc := &models.ComplianceDocument{}
	err := c.db.Collection(complianceName).FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *complianceDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.ComplianceDocument, error) {
	var docs []models.ComplianceDocument
	err := c.db.Collection(complianceName).Find(ctx, filter, opts...).Decode(&docs)
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (c *complianceDatabase) InsertOne(ctx context.Context, doc models.ComplianceDocument, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(complianceName).InsertOne(ctx, doc, opts...)
}

func (c *complianceDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) error {
	_, err := c.db.Collection(complianceName).UpdateOne(ctx, filter, update, opts...)
	return err
}

func (c *complianceDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) error {
	return c.db.Collection(complianceName).DeleteOne(ctx, filter, opts...)
}
