package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/utils"
)

// PropertyStore is the slice of the property repository the service needs.
type PropertyStore interface {
	Create(ctx context.Context, property *models.Property) error
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Property, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id string, fields bson.M) (*models.Property, error)
	Delete(ctx context.Context, id string) (bool, error)
	ExistsByListingID(ctx context.Context, listingID string) (bool, error)
	IncrementViews(ctx context.Context, id string) (*models.Property, error)
}

type LocationCounter interface {
	IncrementPropertyCount(ctx context.Context, id string, delta int) error
}

type PropertyService struct {
	store     PropertyStore
	locations LocationCounter
}

func NewPropertyService(store PropertyStore, locations LocationCounter) *PropertyService {
	return &PropertyService{store: store, locations: locations}
}

// PropertyQuery carries the raw query-string parameters of a list request.
type PropertyQuery struct {
	Search      string
	Type        string
	Status      string
	LocationID  string
	DeveloperID string
	Featured    string
	Active      string
	MinPrice    string
	MaxPrice    string
	MinArea     string
	MaxArea     string
	Page        string
	Limit       string
	Sort        string
}

func (s *PropertyService) buildFilter(q PropertyQuery) (bson.M, error) {
	filter := bson.M{}

	if q.Search != "" {
		for k, v := range query.Search(q.Search, "title", "description") {
			filter[k] = v
		}
	}
	if q.Type != "" {
		filter["propertyType"] = q.Type
	}
	if q.Status != "" {
		filter["status"] = q.Status
	}
	if q.LocationID != "" {
		filter["locationId"] = q.LocationID
	}
	if q.DeveloperID != "" {
		filter["developerId"] = q.DeveloperID
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
		filter["price"] = priceRange
	}

	areaRange, err := query.Range("area", q.MinArea, q.MaxArea)
	if err != nil {
		return nil, err
	}
	if areaRange != nil {
		filter["areaSqFt"] = areaRange
	}

	return filter, nil
}

func (s *PropertyService) List(ctx context.Context, q PropertyQuery) (*query.Page[models.Property], error) {
	filter, err := s.buildFilter(q)
	if err != nil {
		return nil, err
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

// Featured returns the top featured+active properties, newest first.
// Results are cached briefly since the set changes rarely.
func (s *PropertyService) Featured(ctx context.Context, limitRaw string) ([]models.Property, error) {
	p := query.ParsePagination("", limitRaw, query.DefaultLimit, query.SearchMaxLimit)

	cacheKey := utils.GenerateQueryCacheKey("properties:featured", map[string]string{"limit": limitRaw})
	var cached []models.Property
	if hit, err := utils.GetCached(ctx, cacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	filter := bson.M{"featured": true, "active": true}
	items, err := s.store.Find(ctx, filter, 0, int64(p.Limit), bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if items == nil {
		items = []models.Property{}
	}

	_ = utils.SetCached(ctx, cacheKey, items, 5*time.Minute)
	return items, nil
}

// Search is the free-text variant; the handler guarantees term is present.
func (s *PropertyService) Search(ctx context.Context, term, pageRaw, limitRaw string) (*query.Page[models.Property], error) {
	filter := query.Search(strings.TrimSpace(term), "title", "description", "tags")
	filter["active"] = true

	p := query.ParsePagination(pageRaw, limitRaw, query.DefaultLimit, query.SearchMaxLimit)

	items, err := s.store.Find(ctx, filter, p.Skip(), int64(p.Limit), bson.D{{Key: "createdAt", Value: -1}})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	return query.NewPage(items, total, p), nil
}

// Get fetches a property and bumps its view counter in the same atomic
// operation.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	// The store reports a missing property as (nil, nil), not as an error.
	property, err := s.store.IncrementViews(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if property == nil {
		return nil, utils.NewNotFound("Property not found")
	}
	return property, nil
}

func (s *PropertyService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.Property, error) {
	exists, err := s.store.ExistsByListingID(ctx, req.ListingID)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if exists {
		return nil, utils.NewConflict("Property with this listing_id already exists")
	}

	status := models.PropertyStatus(req.Status)
	if status == "" {
		status = models.PropertyStatusAvailable
	}

	now := time.Now()
	property := &models.Property{
		ID:           uuid.New().String(),
		ListingID:    req.ListingID,
		Title:        req.Title,
		Slug:         utils.Slugify(req.Title),
		Description:  req.Description,
		Price:        req.Price,
		AreaSqFt:     req.AreaSqFt,
		LocationID:   req.LocationID,
		DeveloperID:  req.DeveloperID,
		PropertyType: models.PropertyType(req.PropertyType),
		Status:       status,
		Coordinates:  req.Coordinates,
		Amenities:    req.Amenities,
		Features:     req.Features,
		Tags:         req.Tags,
		Images:       req.Images,
		Featured:     req.Featured,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, property); err != nil {
		// The pre-check above races against concurrent inserts; the unique
		// index on listingId is the real guard.
		if utils.IsDuplicateKey(err) {
			return nil, utils.NewConflict("Property with this listing_id already exists")
		}
		return nil, utils.NewInternal(err)
	}

	if s.locations != nil && property.LocationID != "" {
		_ = s.locations.IncrementPropertyCount(ctx, property.LocationID, 1)
	}

	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, id string, req *models.UpdatePropertyRequest) (*models.Property, error) {
	fields := bson.M{}
	if req.Title != nil {
		fields["title"] = *req.Title
		fields["slug"] = utils.Slugify(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.AreaSqFt != nil {
		fields["areaSqFt"] = *req.AreaSqFt
	}
	if req.LocationID != nil {
		fields["locationId"] = *req.LocationID
	}
	if req.DeveloperID != nil {
		fields["developerId"] = *req.DeveloperID
	}
	if req.PropertyType != nil {
		fields["propertyType"] = *req.PropertyType
	}
	if req.Status != nil {
		fields["status"] = *req.Status
	}
	if req.Coordinates != nil {
		fields["coordinates"] = *req.Coordinates
	}
	if req.Amenities != nil {
		fields["amenities"] = req.Amenities
	}
	if req.Features != nil {
		fields["features"] = req.Features
	}
	if req.Tags != nil {
		fields["tags"] = req.Tags
	}
	if req.Images != nil {
		fields["images"] = req.Images
	}
	if req.Featured != nil {
		fields["featured"] = *req.Featured
	}
	if req.Active != nil {
		fields["active"] = *req.Active
	}

	property, err := s.store.Update(ctx, id, fields)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if property == nil {
		return nil, utils.NewNotFound("Property not found")
	}
	return property, nil
}

func (s *PropertyService) Delete(ctx context.Context, id string) error {
	property, err := s.store.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if property == nil {
		return utils.NewNotFound("Property not found")
	}

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return utils.NewInternal(err)
	}
	if !deleted {
		return utils.NewNotFound("Property not found")
	}

	if s.locations != nil && property.LocationID != "" {
		_ = s.locations.IncrementPropertyCount(ctx, property.LocationID, -1)
	}
	return nil
}
