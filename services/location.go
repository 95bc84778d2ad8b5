package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/utils"
)

type LocationStore interface {
	Create(ctx context.Context, location *models.Location) error
	FindByID(ctx context.Context, id string) (*models.Location, error)
	FindBySlug(ctx context.Context, slug string) (*models.Location, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Location, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.Location, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// PropertyCounter answers how many properties reference a location.
type PropertyCounter interface {
	CountByLocation(ctx context.Context, locationID string) (int64, error)
}

type LocationService struct {
	store      LocationStore
	properties PropertyCounter
}

func NewLocationService(store LocationStore, properties PropertyCounter) *LocationService {
	return &LocationService{store: store, properties: properties}
}

type LocationQuery struct {
	Search   string
	Featured string
	Active   string
	Page     string
	Limit    string
	Sort     string
}

func (s *LocationService) List(ctx context.Context, q LocationQuery) (*query.Page[models.Location], error) {
	filter := bson.M{}
	if q.Search != "" {
		for k, v := range query.Search(q.Search, "name", "description") {
			filter[k] = v
		}
	}
	if featured := query.ParseBool(q.Featured); featured != nil {
		filter["featured"] = *featured
	}
	if active := query.ParseBool(q.Active); active != nil {
		filter["active"] = *active
	}

	p := query.ParsePagination(q.Page, q.Limit, query.DefaultLimit, query.SearchMaxLimit)
	sort := query.Sort(q.Sort, "name", 1)

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

// SearchCities looks locations up by name. An empty or whitespace-only term
// short-circuits to an empty result without touching the store.
func (s *LocationService) SearchCities(ctx context.Context, term, limitRaw string) (*models.LocationSearchResult, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return &models.LocationSearchResult{Cities: []models.Location{}, Count: 0, SearchTerm: ""}, nil
	}

	cacheKey := utils.GenerateQueryCacheKey("locations:search", map[string]string{"q": trimmed, "limit": limitRaw})
	var cached models.LocationSearchResult
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	p := query.ParsePagination("", limitRaw, query.DefaultLimit, query.SearchMaxLimit)
	filter := query.Search(trimmed, "name")
	filter["active"] = true

	cities, err := s.store.Find(ctx, filter, 0, int64(p.Limit), bson.D{{Key: "name", Value: 1}})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if cities == nil {
		cities = []models.Location{}
	}

	result := &models.LocationSearchResult{Cities: cities, Count: len(cities), SearchTerm: trimmed}
	_ = utils.SetCached(ctx, cacheKey, result, 5*time.Minute)
	return result, nil
}

func (s *LocationService) Get(ctx context.Context, id string) (*models.Location, error) {
	location, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if location == nil {
		return nil, utils.NewNotFound("Location not found")
	}
	return location, nil
}

func (s *LocationService) Create(ctx context.Context, req *models.CreateLocationRequest) (*models.Location, error) {
	slug := utils.Slugify(req.Name)

	existing, err := s.store.FindBySlug(ctx, slug)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if existing != nil {
		return nil, utils.NewConflict("Location with this name already exists")
	}

	now := time.Now()
	location := &models.Location{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Coordinates: req.Coordinates,
		Highlights:  req.Highlights,
		Amenities:   req.Amenities,
		Featured:    req.Featured,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.Create(ctx, location); err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflict("Location with this name already exists")
		}
		return nil, utils.NewInternal(err)
	}
	return location, nil
}

func (s *LocationService) Update(ctx context.Context, id string, req *models.UpdateLocationRequest) (*models.Location, error) {
	fields := bson.M{}
	if req.Name != nil {
		fields["name"] = *req.Name
		fields["slug"] = utils.Slugify(*req.Name)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Coordinates != nil {
		fields["coordinates"] = *req.Coordinates
	}
	if req.Highlights != nil {
		fields["highlights"] = req.Highlights
	}
	if req.Amenities != nil {
		fields["amenities"] = req.Amenities
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	location, err := s.store.Update(ctx, id, fields)
	if err != nil {
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflict("Location with this name already exists")
		}
		return nil, utils.NewInternal(err)
	}
	if location == nil {
		return nil, utils.NewNotFound("Location not found")
	}
	return location, nil
}

// Delete refuses to remove a location while any property still references
// it.
func (s *LocationService) Delete(ctx context.Context, id string) error {
	location, err := s.store.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if location == nil {
		return utils.NewNotFound("Location not found")
	}

	referencing, err := s.properties.CountByLocation(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if referencing > 0 {
		return utils.NewConflict(fmt.Sprintf("Location is referenced by %d properties and cannot be deleted", referencing))
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Location not found")
	}
	return nil
}
