package repositories

import (
	"context"
	"errors"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatecrm/config"
	"estatecrm/models"
)

type LocationRepository struct {
	collection *mongo.Collection
}

func NewLocationRepository() *LocationRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_LOCATIONS")
	if collectionName == "" {
		collectionName = "locations"
	}
	return &LocationRepository{collection: config.GetCollection(collectionName)}
}

func (r *LocationRepository) Create(ctx context.Context, location *models.Location) error {
	_, err := r.collection.InsertOne(ctx, location)
	return err
}

func (r *LocationRepository) FindByID(ctx context.Context, id string) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&location)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) FindBySlug(ctx context.Context, slug string) (*models.Location, error) {
	var location models.Location
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&location)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Location, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *LocationRepository) Update(ctx context.Context, id string, fields bson.M) (*models.Location, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var location models.Location
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&location)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

// IncrementPropertyCount adjusts the denormalized counter; delta may be
// negative.
func (r *LocationRepository) IncrementPropertyCount(ctx context.Context, id string, delta int) error {
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"propertyCount": delta}})
	return err
}
