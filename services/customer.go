package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatecrm/models"
	"estatecrm/query"
	"estatecrm/utils"
)

// CustomerReader is the read/patch surface of the customer repository;
// customers are only ever created through lead conversion.
type CustomerReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	Find(ctx context.Context, filter bson.M, skip, limit int64, sort bson.D) ([]models.Customer, error)
	Count(ctx context.Context, filter bson.M) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Customer, error)
}

type CustomerService struct {
	store CustomerReader
}

func NewCustomerService(store CustomerReader) *CustomerService {
	return &CustomerService{store: store}
}

type CustomerQuery struct {
	Search string
	Status string
	Page   string
	Limit  string
	Sort   string
}

func (s *CustomerService) List(ctx context.Context, q CustomerQuery) (*query.Page[models.Customer], error) {
	filter := bson.M{}
	if q.Search != "" {
		for k, v := range query.Search(q.Search, "identity.fullName", "identity.email", "identity.phone") {
			filter[k] = v
		}
	}
	if q.Status != "" {
		if !models.CustomerStatus(q.Status).Valid() {
			return nil, utils.NewValidationError(utils.FieldError{
				Path:    "status",
				Message: "unknown customer status",
			})
		}
		filter["system.status"] = q.Status
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

func (s *CustomerService) Get(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	customer, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if customer == nil {
		return nil, utils.NewNotFound("Customer not found")
	}
	return customer, nil
}

func (s *CustomerService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.CustomerStatus) (*models.Customer, error) {
	if !status.Valid() {
		return nil, utils.NewValidationError(utils.FieldError{
			Path:    "status",
			Message: "unknown customer status",
		})
	}

	customer, err := s.store.Update(ctx, id, bson.M{"system.status": status})
	if err != nil {
		return nil, utils.NewInternal(err)
	}
	if customer == nil {
		return nil, utils.NewNotFound("Customer not found")
	}
	return customer, nil
}
