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

type ProjectStore interface {
	Create(ctx context.Context, project *models.PropertyProject) error
	CreateMany(ctx context.Context, projects []models.PropertyProject) error
	FindByID(ctx context.Context, id string) (*models.PropertyProject, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.PropertyProject, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.PropertyProject, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ProjectService struct {
	store ProjectStore
}

func NewProjectService(store ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

type ProjectQuery struct {
	Search      string
	Status      string
	DeveloperID string
	LocationID  string
	Featured    string
	Active      string
	MinPrice    string
	MaxPrice    string
	Page        string
	Limit       string
	Sort        string
}

func (s *ProjectService) List(ctx context.Context, q ProjectQuery) (*query.Page[models.PropertyProject], error) {
	filter := bson.M{}
	if q.Search != "" {
		for k, v := range query.Search(q.Search, "name") {
			filter[k] = v
		}
	}
	if q.Status != "" {
		filter["project_status"] = q.Status
	}
	if q.DeveloperID != "" {
		filter["developerId"] = q.DeveloperID
	}
	if q.LocationID != "" {
		filter["locationId"] = q.LocationID
	}
	if featured := query.ParseBool(q.Featured); featured != nil {
		filter["featured"] = *featured
	}
	if active := query.ParseBool(q.Active); active != nil {
		filter["active"] = *active
	}

	priceRange, err := query.Range("price", q.MinPrice, q.MaxPrice)
	if err != nil {
		return nil, err
	}
	if priceRange != nil {
		filter["pricing.min"] = priceRange
	}

	p := query.ParsePagination(q.Page, q.Limit, query.DefaultLimit, query.SearchMaxLimit)
	sort := query.Sort(q.Sort, "createdAt", -1)

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

func (s *ProjectService) Get(ctx context.Context, id string) (*models.PropertyProject, error) {
	project, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if project == nil {
		return nil, utils.NewNotFound("Project not found")
	}
	return project, nil
}

func buildProject(req *models.CreateProjectRequest, now time.Time) models.PropertyProject {
	return models.PropertyProject{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Slug:           utils.Slugify(req.Name),
		DeveloperID:    req.DeveloperID,
		LocationID:     req.LocationID,
		Status:         models.ProjectStatus(req.Status),
		Pricing:        req.Pricing,
		Compliance:     req.Compliance,
		Amenities:      req.Amenities,
		Sustainability: req.Sustainability,
		Infrastructure: req.Infrastructure,
		Security:       req.Security,
		Inventory:      req.Inventory,
		Media:          req.Media,
		Maintenance:    req.Maintenance,
		Governance:     req.Governance,
		TotalUnits:     req.TotalUnits,
		AvailableUnits: req.AvailableUnits,
		Featured:       req.Featured,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (s *ProjectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.PropertyProject, error) {
	project := buildProject(req, time.Now())
	if err := s.store.Create(ctx, &project); err != nil {
		return nil, utils.NewInternal(err)
	}
	return &project, nil
}

func (s *ProjectService) BulkCreate(ctx context.Context, req *models.BulkCreateProjectsRequest) ([]models.PropertyProject, error) {
	now := time.Now()
	projects := make([]models.PropertyProject, 0, len(req.Projects))
	for i := range req.Projects {
		projects = append(projects, buildProject(&req.Projects[i], now))
	}
	if err := s.store.CreateMany(ctx, projects); err != nil {
		return nil, utils.NewInternal(err)
	}
	return projects, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.PropertyProject, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
		fields["slug"] = utils.Slugify(*req.Name)
	}
	if req.DeveloperID != nil {
		fields["developerId"] = *req.DeveloperID
	}
	if req.LocationID != nil {
		fields["locationId"] = *req.LocationID
	}
	if req.Status != nil {
		fields["project_status"] = *req.Status
	}
	if req.Pricing != nil {
		fields["pricing"] = *req.Pricing
	}
	if req.Compliance != nil {
		fields["compliance"] = *req.Compliance
	}
	if req.Amenities != nil {
		fields["amenities"] = *req.Amenities
	}
	if req.Sustainability != nil {
		fields["sustainability"] = *req.Sustainability
	}
	if req.Infrastructure != nil {
		fields["infrastructure"] = *req.Infrastructure
	}
	if req.Security != nil {
		fields["security"] = *req.Security
	}
	if req.Inventory != nil {
		fields["inventory"] = req.Inventory
	}
	if req.Media != nil {
		fields["media"] = req.Media
	}
	if req.Maintenance != nil {
		fields["maintenance"] = req.Maintenance
	}
	if req.Governance != nil {
		fields["governance"] = req.Governance
	}
	if req.TotalUnits != nil {
		fields["totalUnits"] = *req.TotalUnits
	}
	if req.AvailableUnits != nil {
		fields["availableUnits"] = *req.AvailableUnits
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	project, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if project == nil {
		return nil, utils.NewNotFound("Project not found")
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Project not found")
	}
	return nil
}
