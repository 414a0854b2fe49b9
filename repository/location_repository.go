package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"InOut-Attendance-Backend/config"
	"InOut-Attendance-Backend/models"
)

type LocationRepository interface {
	CreateLocation(ctx context.Context, loc *models.CompanyConfig) error
	FindLocationByID(ctx context.Context, id string) (*models.CompanyConfig, error)
	FindAllLocations(ctx context.Context) ([]models.CompanyConfig, error)
	UpdateLocation(ctx context.Context, id string, updateData bson.M) (*mongo.UpdateResult, error)
	DeleteLocation(ctx context.Context, id string) (*mongo.DeleteResult, error)
}

type locationRepository struct {
	collection *mongo.Collection
}

func NewLocationRepository() LocationRepository {
	return &locationRepository{
		collection: config.GetCollection(config.LocationCollection),
	}
}

func (r *locationRepository) CreateLocation(ctx context.Context, loc *models.CompanyConfig) error {
	loc.CreatedAt = time.Now()
	loc.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, loc)
	if err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *locationRepository) FindLocationByID(ctx context.Context, id string) (*models.CompanyConfig, error) {
	var loc models.CompanyConfig

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&loc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find location: %w", err)
	}
	return &loc, nil
}

func (r *locationRepository) FindAllLocations(ctx context.Context) ([]models.CompanyConfig, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	defer cursor.Close(ctx)

	var locations []models.CompanyConfig
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, fmt.Errorf("failed to decode locations: %w", err)
	}
	return locations, nil
}

func (r *locationRepository) UpdateLocation(ctx context.Context, id string, updateData bson.M) (*mongo.UpdateResult, error) {
	updateData["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": updateData})
	if err != nil {
		return nil, fmt.Errorf("failed to update location: %w", err)
	}
	return result, nil
}

func (r *locationRepository) DeleteLocation(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete location: %w", err)
	}
	return result, nil
}
