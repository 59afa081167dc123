package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ServiceRepository gives read access to the treatment catalog.
type ServiceRepository interface {
	// GetAll returns the full catalog in storage order.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetSummaries returns only id and name of every service.
	GetSummaries(ctx context.Context) ([]models.ServiceSummary, error)
}

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &MongoServiceRepo{coll: db.Collection(database.ServicesCollection)}
}

// naturalOrder keeps the catalog in insertion order.
var naturalOrder = bson.D{{Key: "_id", Value: 1}}

func (r *MongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(naturalOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) GetSummaries(ctx context.Context) ([]models.ServiceSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(naturalOrder).SetProjection(bson.M{"id": 1, "name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	summaries := []models.ServiceSummary{}
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode services: %w", err)
	}
	return summaries, nil
}

// SeedIfEmpty inserts services, in order, when the catalog collection has no documents.
// It returns the number of inserted services.
func SeedIfEmpty(ctx context.Context, db *mongo.Database, services []models.Service) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	coll := db.Collection(database.ServicesCollection)
	n, err := coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	if n > 0 || len(services) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(services))
	for i, svc := range services {
		docs[i] = svc
	}
	if _, err := coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		return 0, fmt.Errorf("failed to seed services: %w", err)
	}
	return len(services), nil
}
