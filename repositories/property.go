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

type PropertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository() *PropertyRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROPERTIES")
	if collectionName == "" {
		collectionName = "properties"
	}
	return &PropertyRepository{collection: config.GetCollection(collectionName)}
}

func (r *PropertyRepository) Create(ctx context.Context, property *models.Property) error {
	_, err := r.collection.InsertOne(ctx, property)
	return err
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Property, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

// Update applies a partial $set merge and returns the updated document,
// or nil when no document matched.
func (r *PropertyRepository) Update(ctx context.Context, id string, fields bson.M) (*models.Property, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var property models.Property
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}

func (r *PropertyRepository) ExistsByListingID(ctx context.Context, listingID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"listingId": listingID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementViews bumps the view counter server-side in a single atomic
// operation and returns the updated document. Concurrent fetches never
// lose an increment.
func (r *PropertyRepository) IncrementViews(ctx context.Context, id string) (*models.Property, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var property models.Property
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"views": 1}}, opts).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"locationId": locationID})
}
