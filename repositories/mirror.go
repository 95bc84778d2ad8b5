package repositories

import (
	"context"
	"errors"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"estatecrm/config"
	"estatecrm/models"
)

// MirrorRepository stores legacy property payloads verbatim. No schema is
// applied on either side of the wire.
type MirrorRepository struct {
	collection *mongo.Collection
}

func NewMirrorRepository() *MirrorRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_MIRROR_PROPERTIES")
	if collectionName == "" {
		collectionName = "mirror_properties"
	}
	return &MirrorRepository{collection: config.GetCollection(collectionName)}
}

func (r *MirrorRepository) Create(ctx context.Context, doc models.MirrorProperty) error {
	_, err := r.collection.InsertOne(ctx, bson.M(doc))
	return err
}

func (r *MirrorRepository) FindByID(ctx context.Context, id string) (models.MirrorProperty, error) {
	var doc models.MirrorProperty
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *MirrorRepository) Find(ctx context.Context, filter bson.M, skip, limit int64) ([]models.MirrorProperty, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []models.MirrorProperty
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *MirrorRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}
