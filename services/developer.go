package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/utils"
)

type DeveloperStore interface {
	Create(ctx context.Context, developer *models.Developer) error
	FindByID(ctx context.Context, id string) (*models.Developer, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Developer, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.Developer, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type DeveloperService struct {
	store DeveloperStore
}

func NewDeveloperService(store DeveloperStore) *DeveloperService {
	return &DeveloperService{store: store}
}

type DeveloperQuery struct {
	Search    string
	MinRating string
	Active    string
	Page      string
	Limit     string
	Sort      string
}

func (s *DeveloperService) List(ctx context.Context, q DeveloperQuery) (*query.Page[models.Developer], error) {
	filter := bson.M{}
	if q.Search != "" {
		for k, v := range query.Search(q.Search, "developer_name", "reputation") {
			filter[k] = v
		}
	}
	if active := query.ParseBool(q.Active); active != nil {
		filter["active"] = *active
	}

	ratingRange, err := query.Range("rating", q.MinRating, "")
	if err != nil {
		return nil, err
	}
	if ratingRange != nil {
		filter["developer_rating"] = ratingRange
	}

	p := query.ParsePagination(q.Page, q.Limit, query.DefaultLimit, query.SearchMaxLimit)
	sort := query.Sort(q.Sort, "developer_name", 1)

	items, err := s.store.Find(ctx, filter, p.Skip(), int64(p.Limit), sort)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return query.NewPage(items, total, p), nil
}

func (s *DeveloperService) Get(ctx context.Context, id string) (*models.Developer, error) {
	developer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if developer == nil {
		return nil, utils.NewNotFound("Developer not found")
	}
	return developer, nil
}

func (s *DeveloperService) Create(ctx context.Context, req *models.CreateDeveloperRequest) (*models.Developer, error) {
	now := time.Now()
	developer := &models.Developer{
		ID:                 uuid.New().String(),
		Name:               req.Name,
		Rating:             req.Rating,
		Reputation:         req.Reputation,
		ESGComplianceScore: req.ESGComplianceScore,
		ProjectIDs:         req.ProjectIDs,
		PropertyIDs:        req.PropertyIDs,
		Active:             true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if developer.ProjectIDs == nil {
		developer.ProjectIDs = []string{}
	}
	if developer.PropertyIDs == nil {
		developer.PropertyIDs = []string{}
	}

	if err := s.store.Create(ctx, developer); err != nil {
		return nil, utils.NewInternal(err)
	}
	return developer, nil
}

func (s *DeveloperService) Update(ctx context.Context, id string, req *models.UpdateDeveloperRequest) (*models.Developer, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["developer_name"] = *req.Name
	}
	if req.Rating != nil {
		fields["developer_rating"] = *req.Rating
	}
	if req.Reputation != nil {
		fields["reputation"] = *req.Reputation
	}
	if req.ESGComplianceScore != nil {
		fields["esgComplianceScore"] = *req.ESGComplianceScore
	}
	if req.ProjectIDs != nil {
		fields["projectIds"] = req.ProjectIDs
	}
	if req.PropertyIDs != nil {
		fields["propertyIds"] = req.PropertyIDs
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	developer, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if developer == nil {
		return nil, utils.NewNotFound("Developer not found")
	}
	return developer, nil
}

func (s *DeveloperService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Developer not found")
	}
	return nil
}
