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

type ProjectRepository struct {
	collection *mongo.Collection
}

func NewProjectRepository() *ProjectRepository {
	collectionName := os.Getenv("MONGODB_COLLECTION_PROJECTS")
	if collectionName == "" {
		collectionName = "projects"
	}
	return &ProjectRepository{collection: config.GetCollection(collectionName)}
}

func (r *ProjectRepository) Create(ctx context.Context, project *models.PropertyProject) error {
	_, err := r.collection.InsertOne(ctx, project)
	return err
}

func (r *ProjectRepository) CreateMany(ctx context.Context, projects []models.PropertyProject) error {
	docs := make([]interface{}, 0, len(projects))
	for i := range projects {
		docs = append(docs, projects[i])
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*models.PropertyProject, error) {
	var project models.PropertyProject
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.PropertyProject, error) {
	opts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(sort)
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.PropertyProject
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (r *ProjectRepository) Count(ctx context.Context, filter bson.M) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *ProjectRepository) Update(ctx context.Context, id string, fields bson.M) (*models.PropertyProject, error) {
	fields["updatedAt"] = time.Now()
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var project models.PropertyProject
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
