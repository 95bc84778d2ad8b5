package repositories

import (
	"context"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatecrm/config"
	"estatecrm/models"
)

type FavoriteRepository struct {
	collection *mongo.Collection
}

func NewFavoriteRepository() *FavoriteRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_FAVORITES")
	if collectionName == "" {
		collectionName = "favorites"
	}
	return &FavoriteRepository{collection: config.GetCollection(collectionName)}
}

func (r *FavoriteRepository) Create(ctx context.Context, favorite *models.Favorite) error {
	result, err := r.collection.InsertOne(ctx, favorite)
	if err != nil {
		return err
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		favorite.ID = oid
	}
	return nil
}

func (r *FavoriteRepository) Exists(ctx context.Context, userID primitive.ObjectID, propertyID string) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FavoriteRepository) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Favorite, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var favorites []models.Favorite
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, err
	}
	return favorites, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, userID primitive.ObjectID, propertyID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"userId": userID, "propertyId": propertyID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
