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

type DeveloperRepository struct {
	collection *mongo.Collection
}

func NewDeveloperRepository() *DeveloperRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_DEVELOPERS")
	if collectionName == "" {
		collectionName = "developers"
	}
	return &DeveloperRepository{collection: config.GetCollection(collectionName)}
}

func (r *DeveloperRepository) Create(ctx context.Context, developer *models.Developer) error {
	_, err := r.collection.InsertOne(ctx, developer)
	return err
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id string) (*models.Developer, error) {
	var developer models.Developer
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&developer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &developer, nil
}

func (r *DeveloperRepository) Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Developer, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var developers []models.Developer
	if err := cursor.All(ctx, &developers); err != nil {
		return nil, err
	}
	return developers, nil
}

func (r *DeveloperRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *DeveloperRepository) Update(ctx context.Context, id string, fields bson.M) (*models.Developer, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var developer models.Developer
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&developer)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &developer, nil
}

func (r *DeveloperRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
